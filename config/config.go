package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Gemini   Gemini
	CORS     CORS
	LogLevel string
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Host         string
	Port         string
	User         string
	Password     string `json:"-"`
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type Gemini struct {
	ApiKey  string `json:"-"`
	Model   string
	Timeout time.Duration
}

type CORS struct {
	AllowOrigins []string
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GEMINI_TIMEOUT", "30s")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.MaxOpenConns = viper.GetInt("DATABASE_MAX_OPEN_CONNS")
	config.Database.MaxIdleConns = viper.GetInt("DATABASE_MAX_IDLE_CONNS")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Gemini.Timeout = viper.GetDuration("GEMINI_TIMEOUT")

	config.CORS.AllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

// DSN builds the Postgres connection string.
func (d Database) DSN() string {
	return "host=" + d.Host +
		" user=" + d.User +
		" password=" + d.Password +
		" dbname=" + d.Name +
		" port=" + d.Port +
		" sslmode=" + d.SSLMode +
		" TimeZone=UTC"
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
