package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-classifier-url classifier API base URL
//	-classifier-key classifier API key
//	-classifier-model classifier model identifier
//	-classifier-timeout classifier call timeout (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var classifierURL string
	var classifierKey string
	var classifierModel string
	var classifierTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer name")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g. 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	flag.StringVar(&classifierURL, "classifier-url", "", "Classifier API base URL")
	flag.StringVar(&classifierKey, "classifier-key", "", "Classifier API key")
	flag.StringVar(&classifierModel, "classifier-model", "", "Classifier model identifier")
	flag.DurationVar(&classifierTimeout, "classifier-timeout", 0, "Classifier call timeout (e.g. 30s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Classifier: Classifier{
			BaseURL: classifierURL,
			APIKey:  classifierKey,
			Model:   classifierModel,
			Timeout: classifierTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
