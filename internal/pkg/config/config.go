package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	LLM      LLMConfig
	Weather  WeatherConfig
	Schedule ScheduleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Shanghai"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Shanghai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"168h"`
}

// LLMConfig points at an OpenAI-compatible chat-completions endpoint.
type LLMConfig struct {
	BaseURL string        `envconfig:"LLM_BASE_URL" required:"true"`
	APIKey  string        `envconfig:"LLM_API_KEY" required:"true"`
	Model   string        `envconfig:"LLM_MODEL" default:"qwen-plus"`
	Timeout time.Duration `envconfig:"LLM_TIMEOUT" default:"30s"`
}

type WeatherConfig struct {
	BaseURL string        `envconfig:"WEATHER_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"WEATHER_TIMEOUT" default:"10s"`
}

// ScheduleConfig carries the daily wall-clock trigger times for each push kind.
type ScheduleConfig struct {
	TimeZone        string        `envconfig:"SCHEDULE_TIMEZONE" default:"Asia/Shanghai"`
	RestTimes       []string      `envconfig:"SCHEDULE_REST_TIMES" default:"07:00,13:00,23:00"`
	MealTimes       []string      `envconfig:"SCHEDULE_MEAL_TIMES" default:"07:30,12:00,18:00"`
	WeatherTime     string        `envconfig:"SCHEDULE_WEATHER_TIME" default:"07:10"`
	HealthTipTime   string        `envconfig:"SCHEDULE_HEALTH_TIP_TIME" default:"09:00"`
	Workers         int           `envconfig:"SCHEDULE_WORKERS" default:"4"`
	DispatchTimeout time.Duration `envconfig:"SCHEDULE_DISPATCH_TIMEOUT" default:"45s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Shanghai",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Shanghai",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		LLM: LLMConfig{
			BaseURL: "http://localhost:18080/v1",
			APIKey:  "test-key",
			Model:   "qwen-plus",
			Timeout: 30 * time.Second,
		},
		Weather: WeatherConfig{
			BaseURL: "http://localhost:18081",
			Timeout: 10 * time.Second,
		},
		Schedule: ScheduleConfig{
			TimeZone:        "Asia/Shanghai",
			RestTimes:       []string{"07:00", "13:00", "23:00"},
			MealTimes:       []string{"07:30", "12:00", "18:00"},
			WeatherTime:     "07:10",
			HealthTipTime:   "09:00",
			Workers:         4,
			DispatchTimeout: 45 * time.Second,
		},
	}
}
