package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	SMS       SMSConfig
	Challenge ChallengeConfig
	Auth      AuthConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SMSConfig contains the SMS verification provider configuration
type SMSConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
	SenderName     string
}

// ChallengeConfig contains bot-challenge provider configuration
type ChallengeConfig struct {
	BaseURL        string
	SiteKey        string
	Secret         string
	TimeoutSeconds int
	SettleDelayMs  int // delay after teardown before a new instance may be created
}

// AuthConfig contains verification-flow tuning
type AuthConfig struct {
	ResendCooldownSeconds int // default wait between OTP sends for one phone
	SessionTTLMinutes     int // how long an unfinished verification session lives
	MaxVerifyAttempts     int // wrong codes tolerated before the session is consumed
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}
