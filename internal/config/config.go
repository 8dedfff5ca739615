package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// AppConfig は学習セッションと統計の設定
type AppConfig struct {
	DefaultStudyLimit     int `mapstructure:"default_study_limit"`
	MaxStudyLimit         int `mapstructure:"max_study_limit"`
	DuePoolLimit          int `mapstructure:"due_pool_limit"` // セッション組み立て時に読み込む復習候補の上限
	DailyGoal             int `mapstructure:"daily_goal"`
	StatsDays             int `mapstructure:"stats_days"`
	DefaultResponseTimeMs int `mapstructure:"default_response_time_ms"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppConfig      `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 例: APP_DATABASE_URL, APP_SERVER_PORT
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("database.url", "DATABASE_URL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	cfg.normalize()
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Study Limit: default=%d max=%d", Cfg.App.DefaultStudyLimit, Cfg.App.MaxStudyLimit)

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.url", DefaultDatabaseURL)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "X-Learner-ID"})
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("app.default_study_limit", DefaultStudyLimit)
	v.SetDefault("app.max_study_limit", DefaultMaxStudyLimit)
	v.SetDefault("app.due_pool_limit", DefaultDuePoolLimit)
	v.SetDefault("app.daily_goal", DefaultDailyGoal)
	v.SetDefault("app.stats_days", DefaultStatsDays)
	v.SetDefault("app.default_response_time_ms", DefaultResponseTimeMs)
}

// normalize は不正な値をデフォルトに戻す
func (c *Config) normalize() {
	if c.App.MaxStudyLimit <= 0 {
		log.Printf("App max study limit invalid, using default '%d'", DefaultMaxStudyLimit)
		c.App.MaxStudyLimit = DefaultMaxStudyLimit
	}
	if c.App.DefaultStudyLimit <= 0 || c.App.DefaultStudyLimit > c.App.MaxStudyLimit {
		log.Printf("App default study limit invalid, using default '%d'", DefaultStudyLimit)
		c.App.DefaultStudyLimit = min(DefaultStudyLimit, c.App.MaxStudyLimit)
	}
	if c.App.DuePoolLimit < c.App.MaxStudyLimit {
		c.App.DuePoolLimit = max(DefaultDuePoolLimit, c.App.MaxStudyLimit)
	}
	if c.App.StatsDays <= 0 {
		c.App.StatsDays = DefaultStatsDays
	}
	if c.App.DailyGoal < 0 {
		c.App.DailyGoal = DefaultDailyGoal
	}
	if c.App.DefaultResponseTimeMs < 0 {
		c.App.DefaultResponseTimeMs = DefaultResponseTimeMs
	}
}

// Default はファイルを読まずにデフォルト値だけで組み立てた設定を返す (テスト・seed 用)
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	cfg.normalize()
	return cfg
}
