package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`

	UploadDir    string `envconfig:"UPLOAD_DIR" default:"./uploads/photos"`
	UploadPrefix string `envconfig:"UPLOAD_PREFIX" default:"/uploads/photos"`

	// MaxPhotoKB caps each uploaded photo's size, in kilobytes.
	MaxPhotoKB int64 `envconfig:"MAX_PHOTO_KB" default:"400"`

	// Bootstrap admin account, created at startup when missing.
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
}

// Load reads .env when present, then populates the config from the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	return &cfg, nil
}
