package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string
	JWTExpiry time.Duration

	CORSOrigin string

	AWSRegion     string
	S3Bucket      string
	CloudFrontURL string
	SESEmail      string
	ContactEmail  string
}

// Load reads the environment into a Config. A .env file is loaded first
// outside production so local runs need no exported variables.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Port:          getenv("PORT", "5000"),
		Env:           getenv("APP_ENV", "development"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getenv("DB_PORT", "5432"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiry:     72 * time.Hour,
		CORSOrigin:    getenv("CORS_ORIGIN", "http://localhost:5173"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),
		SESEmail:      os.Getenv("SES_EMAIL"),
		ContactEmail:  os.Getenv("CONTACT_EMAIL"),
	}

	if v := os.Getenv("JWT_EXPIRE_HOURS"); v != "" {
		d, err := time.ParseDuration(v + "h")
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRE_HOURS: %v", err)
		}
		cfg.JWTExpiry = d
	}

	for _, k := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET"} {
		if os.Getenv(k) == "" {
			return nil, fmt.Errorf("missing env var: %s", k)
		}
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
