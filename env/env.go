package env

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

var ErrMongoURLMissing = errors.New("Need a MONGO_URL")

type Env struct {
	App     AppConfig
	Server  ServerConfig
	MongoDB MongoDBConfig
}

type AppConfig struct {
	Environment string
}

type ServerConfig struct {
	Addr string
}

type MongoDBConfig struct {
	URL string
	DB  string
}

var setupEnv = false
var env = Env{}

// GetEnv reads the configuration once. A .env file in the working directory is
// loaded first, variables already set in the process take precedence.
func GetEnv() (*Env, error) {

	if !setupEnv {

		_ = godotenv.Load()

		loaded, err := load()
		if err != nil {
			return nil, err
		}

		env = loaded
		setupEnv = true
	}

	return &env, nil
}

func load() (Env, error) {

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return Env{}, ErrMongoURLMissing
	}

	return Env{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":3000"),
		},
		MongoDB: MongoDBConfig{
			URL: mongoURL,
			DB:  getEnv("MONGO_DB", "ParcialDB"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
