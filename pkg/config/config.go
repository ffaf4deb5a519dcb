package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	DriverFirestore = "firestore"
	DriverMongo     = "mongo"
	DriverMemory    = "memory"

	ImageDriverGCS  = "gcs"
	ImageDriverBlob = "blob"
)

type Config struct {
	ServerPort      string
	Environment     string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	DatabaseDriver string

	FirebaseProject         string
	FirebaseCredentialsJSON string
	FirebaseCredentialsPath string

	MongoURI      string
	MongoDatabase string

	ImageStoreDriver   string
	StorageBucket      string
	ImageBucketURL     string
	ImagePublicBaseURL string
	ImageFolder        string
	MaxImageSize       int64

	PaymentGatewayKey string
	PaymentCurrency   string

	AuthEnabled bool

	SearchLocation *time.Location

	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", getEnv("PORT", "5000")),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		DatabaseDriver: strings.ToLower(getEnv("DATABASE_DRIVER", DriverMemory)),

		FirebaseProject:         getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		FirebaseCredentialsPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "bazarBD"),

		ImageStoreDriver:   strings.ToLower(getEnv("IMAGE_STORE_DRIVER", ImageDriverBlob)),
		StorageBucket:      getEnv("STORAGE_BUCKET", ""),
		ImageBucketURL:     getEnv("IMAGE_BUCKET_URL", "mem://"),
		ImagePublicBaseURL: strings.TrimRight(getEnv("IMAGE_PUBLIC_BASE_URL", "http://localhost:5000/images"), "/"),
		ImageFolder:        getEnv("IMAGE_FOLDER", "bazarbd"),
		MaxImageSize:       getEnvAsInt64("MAX_IMAGE_SIZE", 5*1024*1024),

		PaymentGatewayKey: getEnv("PAYMENT_GATEWAY_KEY", ""),
		PaymentCurrency:   strings.ToLower(getEnv("PAYMENT_CURRENCY", "bdt")),

		AuthEnabled: getEnvAsBool("AUTH_ENABLED", false),

		RateLimitRequests: int(getEnvAsInt64("RATE_LIMIT_REQUESTS", 30)),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	loc, err := time.LoadLocation(getEnv("SEARCH_TIMEZONE", "UTC"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid SEARCH_TIMEZONE")
	}
	config.SearchLocation = loc

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// NeedsFirebase reports whether a Firebase app has to be initialized.
func (c *Config) NeedsFirebase() bool {
	return c.DatabaseDriver == DriverFirestore || c.AuthEnabled
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case DriverFirestore:
		if c.FirebaseProject == "" {
			return errors.New("FIREBASE_PROJECT_ID is required for the firestore driver")
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required for the mongo driver")
		}
	case DriverMemory:
	default:
		return errors.Errorf("unknown DATABASE_DRIVER: %s", c.DatabaseDriver)
	}

	switch c.ImageStoreDriver {
	case ImageDriverGCS:
		if c.StorageBucket == "" {
			return errors.New("STORAGE_BUCKET is required for the gcs image store")
		}
	case ImageDriverBlob:
		if c.ImageBucketURL == "" {
			return errors.New("IMAGE_BUCKET_URL is required for the blob image store")
		}
	default:
		return errors.Errorf("unknown IMAGE_STORE_DRIVER: %s", c.ImageStoreDriver)
	}

	if c.AuthEnabled && c.FirebaseProject == "" {
		return errors.New("FIREBASE_PROJECT_ID is required when AUTH_ENABLED is set")
	}

	if c.RateLimitRequests <= 0 {
		return errors.New("RATE_LIMIT_REQUESTS must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
