package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// CORSOrigins lists the frontend origins allowed to call the API.
	// "*" keeps the API open but uncredentialed; the cookie strategy
	// across origins needs the frontend origin listed explicitly.
	CORSOrigins []string
}

type AuthConfig struct {
	// Strategy is one of constant.AuthStrategyCookie / Basic / Bearer.
	// Exactly one is active per deployment.
	Strategy          string
	AdminUser         string
	AdminPassword     string
	AdminPasswordHash string
	Secret            string
	APIToken          string
	SessionTTL        time.Duration
}

type StoreConfig struct {
	Backend       string
	DataFile      string
	SheetID       string
	SheetTab      string
	SheetCredsB64 string
	DBDriver      string
	DBDSN         string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Config is built once at startup and passed by pointer everywhere.
// No component reads the environment after Load returns.
type Config struct {
	Environment string
	Server      ServerConfig
	Auth        AuthConfig
	Store       StoreConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	InviteCodes map[string]struct{}
}

func Load() *Config {
	// Missing .env is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			CORSOrigins:  parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Auth: AuthConfig{
			Strategy:          getEnv("AUTH_STRATEGY", "cookie"),
			AdminUser:         os.Getenv("ADMIN_USER"),
			AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
			AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			Secret:            os.Getenv("AUTH_SECRET"),
			APIToken:          os.Getenv("ADMIN_API_TOKEN"),
			SessionTTL:        getDuration("SESSION_TTL", 7*24*time.Hour),
		},
		Store: StoreConfig{
			Backend:       getEnv("STORE_BACKEND", "file"),
			DataFile:      getEnv("DATA_FILE", "data/rsvps.json"),
			SheetID:       os.Getenv("GSHEET_ID"),
			SheetTab:      getEnv("GSHEET_TAB", "RSVP"),
			SheetCredsB64: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON_B64"),
			DBDriver:      getEnv("DB_DRIVER", "sqlite3"),
			DBDSN:         os.Getenv("DB_DSN"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     os.Getenv("RABBITMQ_HOST"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		InviteCodes: parseCodes(os.Getenv("INVITE_CODES")),
	}
}

// HasInviteCode reports membership in the static allow-list. Codes are
// never consumed, any number of guests may submit under the same code.
func (c *Config) HasInviteCode(code string) bool {
	_, ok := c.InviteCodes[code]
	return ok
}

func parseList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseCodes(raw string) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, c := range strings.Split(raw, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			codes[c] = struct{}{}
		}
	}
	return codes
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
