// Package config loads CLI configuration from file, environment and
// flags with koanf.
package config

// Default configuration values.
const (
	DefaultDataPath   = ".algopascal/users.db"
	DefaultListenAddr = ":8087"
	DefaultLanguage   = "en"
	DefaultAlgoName   = "Calcul"
	DefaultPascalName = "Calcul"
	DefaultOutput     = "auto" // TTY: text, otherwise markdown
)

// Config holds all CLI configuration options.
type Config struct {
	DataPath     string  `koanf:"data_path"`
	ListenAddr   string  `koanf:"listen_addr"`
	LocalesDir   string  `koanf:"locales_dir"`
	Watch        bool    `koanf:"watch"`
	Language     string  `koanf:"language"`
	AlgoName     string  `koanf:"algo_name"`
	PascalName   string  `koanf:"pascal_name"`
	Verbose      bool    `koanf:"verbose"`
	OutputFormat string  `koanf:"output"`
	AdminIDs     []int64 `koanf:"admin_ids"`
}

// Defaults returns the built-in configuration.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"data_path":   DefaultDataPath,
		"listen_addr": DefaultListenAddr,
		"language":    DefaultLanguage,
		"algo_name":   DefaultAlgoName,
		"pascal_name": DefaultPascalName,
		"output":      DefaultOutput,
		"verbose":     false,
		"watch":       false,
	}
}
