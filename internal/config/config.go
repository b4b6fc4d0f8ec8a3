package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Mongo
		UI
		Global
		RateLimit
		Genres
		CSRF
	}

	HTTP struct {
		Port int32
		Host string
	}
	Mongo struct {
		URI    string
		DBName string
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	// RateLimit applies to the JSON API routes only; the rendered pages
	// are not limited.
	RateLimit struct {
		MaxRequests int
		Window      time.Duration
	}
	Genres struct {
		// UniqueIndex makes the database enforce genre-name uniqueness
		// with a unique collated index. Off by default: the application
		// level check-then-act lookup is then the only guard.
		UniqueIndex bool
	}
	CSRF struct {
		// Secret enables CSRF protection on the create forms when set.
		Secret string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("mongo_uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("db_name", "local_library")
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("api_rate_limit", 100)
	v.SetDefault("api_rate_window", "15m")
	v.SetDefault("genre_unique_index", false)
	v.SetDefault("csrf_secret", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Mongo: Mongo{
			URI:    v.GetString("MONGO_URI"),
			DBName: v.GetString("DB_NAME"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		RateLimit: RateLimit{
			MaxRequests: v.GetInt("API_RATE_LIMIT"),
			Window:      v.GetDuration("API_RATE_WINDOW"),
		},
		Genres: Genres{
			UniqueIndex: v.GetBool("GENRE_UNIQUE_INDEX"),
		},
		CSRF: CSRF{
			Secret: v.GetString("CSRF_SECRET"),
		},
	}
}
