package constants_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/toolshelf/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	dir, err := os.MkdirTemp("", "toolshelf-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, constants.DefaultCatalogPath)
	if err := os.WriteFile(file, []byte("[]\n"), constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created %s with %o permissions\n", constants.DefaultCatalogPath, constants.FilePermissions)
	// Output:
	// Created tools.json with 644 permissions
}

// Example_markers shows the default document markers
func Example_markers() {
	fmt.Println(constants.StartMarker)
	fmt.Println(constants.EndMarker)
	// Output:
	// <!-- toolshelf:start -->
	// <!-- toolshelf:end -->
}
