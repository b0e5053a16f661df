package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/config"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/console"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/management"
)

var configuration *config.Config

func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Wire collections, services and the session gate
	facade := management.NewInMemory(management.Options{
		SessionSecret: configuration.SessionSecret,
		SessionTTL:    configuration.SessionTTL,
		PasswordCost:  configuration.PasswordCost,
	})

	log.Info("Starting restaurant back office console")
	menu := console.New(facade, os.Stdin, os.Stdout, configuration.SlotRetryLimit)
	checkPanicErr(menu.Run())
	log.Info("Console closed")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// LOG_LEVEL, when set, overrides the environment default.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stderr)
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			log.WithError(err).Warn("Ignoring invalid LOG_LEVEL")
			return
		}
		log.SetLevel(parsed)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}
