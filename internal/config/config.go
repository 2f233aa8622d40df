package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort             string // Application port
	DBUser              string // Database user
	DBPassword          string // Database password
	DBHost              string // Database host
	DBPort              string // Database port
	DBName              string // Database name
	JWTSecret           string // JWT secret key
	CloudinaryCloudName string // Cloudinary cloud name
	CloudinaryAPIKey    string // Cloudinary API key
	CloudinaryAPISecret string // Cloudinary API secret
	IsProd              bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:             os.Getenv("APP_PORT"),              // Application port
		DBUser:              os.Getenv("DB_USER"),               // Database user
		DBPassword:          os.Getenv("DB_PASSWORD"),           // Database password
		DBHost:              os.Getenv("DB_HOST"),               // Database host
		DBPort:              os.Getenv("DB_PORT"),               // Database port
		DBName:              os.Getenv("DB_NAME"),               // Database name
		JWTSecret:           os.Getenv("JWT_SECRET"),            // JWT secret key
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"), // Cloudinary cloud name
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),    // Cloudinary API key
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"), // Cloudinary API secret
		IsProd:              os.Getenv("IS_PROD") == "true",     // Is production environment
	}
}

// DSN builds the MySQL data source name from the database settings
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
