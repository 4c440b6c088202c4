package config

import (
	"time"

	"github.com/spf13/viper"
)

type Translator struct {
	// Base URL of the translation service
	Url string

	// API key sent with every request, empty disables the header
	ApiKey string

	// Timeout for HTTP requests
	RequestTimeout time.Duration

	// Max requests per second sent to the translation service, 0 disables the limit
	MaxRequestsPerSecond int

	// How long a translated text is kept in the in-memory cache
	CacheExpirationTime time.Duration

	// How often expired cache entries are removed
	CacheCleanupInterval time.Duration
}

func setTranslatorDefaults() {
	viper.SetDefault("Translator.Url", "http://127.0.0.1:8090")
	viper.SetDefault("Translator.ApiKey", "")
	viper.SetDefault("Translator.RequestTimeout", "30s")
	viper.SetDefault("Translator.MaxRequestsPerSecond", 5)
	viper.SetDefault("Translator.CacheExpirationTime", "1h")
	viper.SetDefault("Translator.CacheCleanupInterval", "10m")
}
