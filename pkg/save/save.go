package save

import (
	"os"
	"path/filepath"

	"github.com/agentstation/toolshelf/pkg/errors"
)

// Write stores data at the configured destination.
func Write(data []byte, opts ...Option) error {
	o := Defaults().Apply(opts...)

	if o.writer != nil {
		if _, err := o.writer.Write(data); err != nil {
			return errors.WrapIO("write", o.path, err)
		}
		return nil
	}
	if o.path == "" {
		return &errors.ValidationError{Field: "path", Message: "no path or writer to save to"}
	}
	return writeFile(o.path, data, o.perm)
}

// writeFile replaces path with data through a temporary file in the same
// directory. When path is a symlink the file it points to is replaced and
// the link is kept.
func writeFile(path string, data []byte, perm os.FileMode) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return errors.WrapIO("chmod", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
