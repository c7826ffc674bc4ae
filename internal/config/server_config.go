package config

import (
	"time"

	"github/uniagent/go-broker/internal/util"
)

// EchoServer holds the configuration of the echo HTTP layer.
type EchoServer struct {
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableCORSMiddleware           bool
	EnableSecureMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableLoggerMiddleware         bool
	EnablePrometheusMiddleware     bool
}

type LoggerServer struct {
	Level              string
	PrettyPrintConsole bool
}

// AuthServer configures the optional static API key guarding the trade routes.
// When APIKey is empty all routes are public, matching a development setup.
type AuthServer struct {
	APIKey       string
	APIKeyHeader string
}

// EngineServer is the connection config of the external execution engine.
// The credentials are held here privately and are never exposed to end users.
type EngineServer struct {
	BaseURL         string
	ProjectID       string
	ClientKey       string
	AppID           string
	ClientTimeout   time.Duration
	ExplorerBaseURL string
}

// BrokerServer configures the pending transaction store and intent defaults.
type BrokerServer struct {
	PendingTTL         time.Duration
	DefaultSlippageBps int
	// PendingStore selects the store implementation: "memory" or "redis".
	PendingStore  string
	RedisEndpoint string
}

type ManagementServer struct {
	Secret string `json:"-"` // sensitive
}

type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Auth       AuthServer
	Engine     EngineServer
	Broker     BrokerServer
	Management ManagementServer
}

// DefaultServiceConfigFromEnv returns the server config as parsed from the environment.
// Any unset env var falls back to the listed default. A .env file in the working
// directory is applied first (without overriding already exported vars).
func DefaultServiceConfigFromEnv() Server {
	util.DotEnvTryLoad(".env")

	return Server{
		Echo: EchoServer{
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":3069"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableSecureMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_SECURE_MIDDLEWARE", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnablePrometheusMiddleware:     util.GetEnvAsBool("SERVER_ECHO_ENABLE_PROMETHEUS_MIDDLEWARE", true),
		},
		Logger: LoggerServer{
			Level:              util.GetEnv("SERVER_LOGGER_LEVEL", "info"),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Auth: AuthServer{
			APIKey:       util.GetEnv("SERVER_AUTH_API_KEY", ""),
			APIKeyHeader: util.GetEnv("SERVER_AUTH_API_KEY_HEADER", "x-api-key"),
		},
		Engine: EngineServer{
			BaseURL:         util.GetEnv("SERVER_ENGINE_BASE_URL", "https://universal-api.particle.network"),
			ProjectID:       util.GetEnv("SERVER_ENGINE_PROJECT_ID", ""),
			ClientKey:       util.GetEnv("SERVER_ENGINE_CLIENT_KEY", ""),
			AppID:           util.GetEnv("SERVER_ENGINE_APP_ID", ""),
			ClientTimeout:   time.Second * time.Duration(util.GetEnvAsInt("SERVER_ENGINE_CLIENT_TIMEOUT_SEC", 30)),
			ExplorerBaseURL: util.GetEnv("SERVER_ENGINE_EXPLORER_BASE_URL", "https://universalx.app"),
		},
		Broker: BrokerServer{
			PendingTTL:         time.Second * time.Duration(util.GetEnvAsInt("SERVER_BROKER_PENDING_TTL_SEC", 300)),
			DefaultSlippageBps: util.GetEnvAsInt("SERVER_BROKER_DEFAULT_SLIPPAGE_BPS", 100),
			PendingStore:       util.GetEnv("SERVER_BROKER_PENDING_STORE", "memory"),
			RedisEndpoint:      util.GetEnv("SERVER_BROKER_REDIS_ENDPOINT", ""),
		},
		Management: ManagementServer{
			Secret: util.GetMgmtSecret("SERVER_MANAGEMENT_SECRET"),
		},
	}
}
