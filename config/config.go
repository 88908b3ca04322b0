package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env          string `env:"APP_ENV" env-default:"development"`
	Port         string `env:"PORT" env-default:"5000"`
	ClientDomain string `env:"CLIENT_DOMAIN" env-default:"http://localhost:5173"`

	Mongo    MongoConfig
	Checkout CheckoutConfig
	Identity IdentityConfig

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" env-default:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" env-default:"100"`
}

type MongoConfig struct {
	URI          string `env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
	DatabaseName string `env:"MONGODB_DATABASE_NAME" env-default:"ClubSphere"`
}

// CheckoutConfig points at the external checkout provider. APIURL is
// overridable so tests can target a local stub.
type CheckoutConfig struct {
	SecretKey string `env:"STRIPE_SECRET_KEY"`
	APIURL    string `env:"STRIPE_API_URL" env-default:"https://api.stripe.com/v1"`
}

type IdentityConfig struct {
	// Audience the ID token must be issued for (OAuth client id).
	Audience string `env:"GOOGLE_CLIENT_ID"`
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
