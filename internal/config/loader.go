package config

import (
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/rpattn/txnimport/internal/db"
)

// Config aggregates everything the server needs at startup.
type Config struct {
	Database db.Config
	Server   ServerConfig
	Import   ImportConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// ImportConfig controls import pipeline behavior.
type ImportConfig struct {
	// CSVHeaderRow selects the CSV header policy: when true the first row is
	// treated as a header and skipped, otherwise columns are positional.
	CSVHeaderRow bool
	// MaxUploadBytes caps the accepted upload size.
	MaxUploadBytes int64
}

// Defaults returns the configuration used when no config file or environment
// overrides are present.
func Defaults() Config {
	return Config{
		Database: db.DefaultConfig(),
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Import: ImportConfig{
			CSVHeaderRow:   false,
			MaxUploadBytes: 1 << 20, // 1 MB
		},
	}
}

// Load reads config.yaml from configPath and applies environment overrides.
func Load(configPath string, logger zerolog.Logger) (Config, error) {
	cfg := Defaults()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()      // allow environment overrides
	v.SetEnvPrefix("TXN") // map env vars like TXN_DATABASE.HOST

	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")
	v.BindEnv("server.addr")
	v.BindEnv("import.csv_header_row")
	v.BindEnv("import.max_upload_bytes")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Use defaults + env
		logger.Info().Msg("no config.yaml found, using defaults and env vars")
	} else {
		logger.Info().Str("file", v.ConfigFileUsed()).Msg("loaded config.yaml")
	}

	// Override defaults if values exist
	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.allowed_origins") {
		cfg.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")
	}
	if v.IsSet("import.csv_header_row") {
		cfg.Import.CSVHeaderRow = v.GetBool("import.csv_header_row")
	}
	if v.IsSet("import.max_upload_bytes") {
		cfg.Import.MaxUploadBytes = v.GetInt64("import.max_upload_bytes")
	}

	return cfg, nil
}
