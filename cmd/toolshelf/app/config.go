package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/toolshelf/pkg/constants"
)

// EnvPrefix is prepended to every configuration key read from the environment.
const EnvPrefix = "TOOLSHELF"

// Config holds the application configuration loaded from config files,
// environment variables and .env files. Command-line flags are bound
// directly onto it.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog and document
	CatalogPath  string
	DocumentPath string
	StartMarker  string
	EndMarker    string

	// Rendering
	RenderMode  string
	RenderTags  bool
	RenderNotes bool
	SortOrder   string

	// Logging configuration. LogLevel is the --log-level flag; EnvLogLevel
	// is LOG_LEVEL from the environment, which ranks below -v and -q.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (TOOLSHELF_CATALOG, TOOLSHELF_RENDER_MODE, ...)
// 3. .env files
// 4. Config file (./.toolshelf.yaml or ~/.toolshelf.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), "")
}

// LoadConfigFile is LoadConfig with an explicit config file.
func LoadConfigFile(path string) (*Config, error) {
	return loadConfig(viper.New(), path)
}

func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".toolshelf")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine unless the user named one explicitly
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, err
		}
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		CatalogPath:  v.GetString("catalog"),
		DocumentPath: v.GetString("document"),
		StartMarker:  v.GetString("markers.start"),
		EndMarker:    v.GetString("markers.end"),

		RenderMode:  v.GetString("render.mode"),
		RenderTags:  v.GetBool("render.tags"),
		RenderNotes: v.GetBool("render.notes"),
		SortOrder:   v.GetString("sort.order"),

		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog", constants.DefaultCatalogPath)
	v.SetDefault("document", constants.DefaultDocumentPath)
	v.SetDefault("markers.start", constants.StartMarker)
	v.SetDefault("markers.end", constants.EndMarker)
	v.SetDefault("render.mode", constants.RenderModeTable)
	v.SetDefault("render.tags", false)
	v.SetDefault("render.notes", false)
	v.SetDefault("sort.order", "asc")
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values win over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
