package config

import (
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                int     `env:"PORT" envDefault:"8080"`
	Dsn                 string  `env:"DSN" envDefault:"postgres://localhost:5432/civitrack"`
	JwtSecret           string  `env:"JWT_SECRET"`
	JwtExpires          string  `env:"JWT_EXPIRES" envDefault:"15m"`
	RefreshSecret       string  `env:"REFRESH_SECRET"`
	RefreshExpiry       string  `env:"REFRESH_EXPIRY" envDefault:"168h"`
	AlertThreshold      float64 `env:"ALERT_THRESHOLD" envDefault:"50"`
	CloudinaryCloudName string  `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string  `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string  `env:"CLOUDINARY_API_SECRET"`
	GoogleClientID      string  `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret  string  `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL   string  `env:"GOOGLE_REDIRECT_URL"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
