package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Runtime flags set from command-line arguments, not the config file.
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ScoringConfig carries the tunable engine constants. The level cut points
// and the low-urgency cutoff are product-tuned values kept out of code so
// they can change without a release; the config watcher hot-reloads them.
type ScoringConfig struct {
	LevelCoreMin     float64 `mapstructure:"level_core_min"`
	LevelAdvancedMin float64 `mapstructure:"level_advanced_min"`
	LowScoreCutoff   float64 `mapstructure:"low_score_cutoff"`
	CacheTTLMinutes  int     `mapstructure:"cache_ttl_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("DIGICHECK")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyScoringDefaults(&cfg.Scoring)

	if err := validateScoring(&cfg.Scoring); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyScoringDefaults(s *ScoringConfig) {
	if s.LevelCoreMin == 0 {
		s.LevelCoreMin = 2.0
	}
	if s.LevelAdvancedMin == 0 {
		s.LevelAdvancedMin = 4.0
	}
	if s.LowScoreCutoff == 0 {
		s.LowScoreCutoff = 2.5
	}
	if s.CacheTTLMinutes == 0 {
		s.CacheTTLMinutes = 10
	}
}

func validateScoring(s *ScoringConfig) error {
	if s.LevelCoreMin < 0 || s.LevelAdvancedMin > 5 || s.LevelCoreMin >= s.LevelAdvancedMin {
		return fmt.Errorf("invalid level thresholds: core_min=%v advanced_min=%v", s.LevelCoreMin, s.LevelAdvancedMin)
	}
	if s.LowScoreCutoff < 0 || s.LowScoreCutoff > 5 {
		return fmt.Errorf("low_score_cutoff %v outside [0,5]", s.LowScoreCutoff)
	}
	return nil
}
