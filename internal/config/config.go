package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable invalid")

const (
	apiPortEnvKey        = "API_PORT"
	dbDriverEnvKey       = "DB_DRIVER"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	dbWorkersEnvKey      = "DB_WORKERS"
	jwtSecretEnvKey      = "JWT_SECRET"
	tokenTTLEnvKey       = "TOKEN_TTL"
	passwordSchemeEnvKey = "PASSWORD_SCHEME"
	logLevelEnvKey       = "LOG_LEVEL"
	dotEnvFileEnvKey     = "DOTENV_FILE"
)

const (
	defaultDBDriver       = "postgres"
	defaultDBWorkers      = 8
	defaultTokenTTL       = 24 * time.Hour
	defaultPasswordScheme = "plain"
	defaultLogLevel       = "info"
)

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	DBWorkers       int
	JWTSecret       string
	TokenTTL        time.Duration
	PasswordScheme  string
	LogLevel        string
}

// NewApp loads an optional .env file (DOTENV_FILE, default ".env") and then
// reads the configuration from the environment. Variables already set in the
// environment win over the file.
func NewApp() (App, error) {
	dotEnv := lookupOr(dotEnvFileEnvKey, ".env")
	if err := godotenv.Load(dotEnv); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load %s: %w", dotEnv, err)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	workers := defaultDBWorkers
	if v, ok := os.LookupEnv(dbWorkersEnvKey); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, dbWorkersEnvKey, v)
		}
		workers = n
	}

	ttl := defaultTokenTTL
	if v, ok := os.LookupEnv(tokenTTLEnvKey); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, tokenTTLEnvKey, v)
		}
		ttl = d
	}

	return App{
		Port:            port,
		DBDriver:        lookupOr(dbDriverEnvKey, defaultDBDriver),
		DBConnectionURL: dbConn,
		DBWorkers:       workers,
		JWTSecret:       jwtSecret,
		TokenTTL:        ttl,
		PasswordScheme:  lookupOr(passwordSchemeEnvKey, defaultPasswordScheme),
		LogLevel:        lookupOr(logLevelEnvKey, defaultLogLevel),
	}, nil
}

func lookupOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
