package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "bite"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App         AppConfig
	DB          DBConfig
	Redis       RedisConfig
	OpenAI      OpenAIConfig
	Weather     WeatherConfig
	AIRateLimit AIRateLimitConfig
	CORS        CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BITE_APP_ENV" default:"development"`
	Port         string `envconfig:"BITE_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"BITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BITE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig selects the storage backend. When DSN is empty the service
// runs on the in-memory store and state is discarded on restart.
type DBConfig struct {
	DSN             string        `envconfig:"BITE_DB_DSN"`
	AutoMigrate     bool          `envconfig:"BITE_DB_AUTO_MIGRATE" default:"true"`
	MaxOpenConns    int           `envconfig:"BITE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BITE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BITE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BITE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) Persistent() bool {
	return strings.TrimSpace(db.DSN) != ""
}

// RedisConfig is optional; rate limiting on the AI routes is disabled
// when URL is empty.
type RedisConfig struct {
	URL          string        `envconfig:"BITE_REDIS_URL"`
	DialTimeout  time.Duration `envconfig:"BITE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BITE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BITE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type OpenAIConfig struct {
	APIKey string `envconfig:"BITE_OPENAI_API_KEY"`
	Model  string `envconfig:"BITE_OPENAI_MODEL" default:"gpt-4o"`
}

type WeatherConfig struct {
	APIKey   string `envconfig:"BITE_OPENWEATHER_API_KEY"`
	Location string `envconfig:"BITE_WEATHER_LOCATION" default:"Green Hills, CA"`
}

type AIRateLimitConfig struct {
	Window time.Duration `envconfig:"BITE_AI_RATE_LIMIT_WINDOW" default:"1m"`
	Limit  int           `envconfig:"BITE_AI_RATE_LIMIT_PER_IP" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BITE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
