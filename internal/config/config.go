package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Access   AccessConfig   `yaml:"access"`
	Redis    RedisConfig    `yaml:"redis"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Review   ReviewConfig   `yaml:"review"`
	Todo     TodoConfig     `yaml:"todo"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AccessConfig holds identity provider settings for privileged endpoints.
type AccessConfig struct {
	TeamDomain      string        `yaml:"team_domain"      env:"ACCESS_TEAM_DOMAIN"`
	CertsURL        string        `yaml:"certs_url"        env:"ACCESS_CERTS_URL"`
	Audience        string        `yaml:"audience"         env:"ACCESS_AUD"`
	AdminEmail      string        `yaml:"admin_email"      env:"ADMIN_EMAIL"`
	AllowedSubjects string        `yaml:"allowed_subjects" env:"ADMIN_ALLOWED_SUBS"`
	Header          string        `yaml:"header"           env:"ACCESS_HEADER"           env-default:"Cf-Access-Jwt-Assertion"`
	KeyTTL          time.Duration `yaml:"key_ttl"          env:"ACCESS_KEY_TTL"          env-default:"5m"`
}

// JWKSURL returns the key set endpoint. An explicit CertsURL wins over the
// team domain.
func (c AccessConfig) JWKSURL() string {
	if c.CertsURL != "" {
		return c.CertsURL
	}
	if c.TeamDomain == "" {
		return ""
	}
	return "https://" + strings.TrimSuffix(c.TeamDomain, "/") + "/cdn-cgi/access/certs"
}

// Subjects splits AllowedSubjects on commas, dropping blanks.
func (c AccessConfig) Subjects() []string {
	var out []string
	for _, s := range strings.Split(c.AllowedSubjects, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RedisConfig enables the shared key set tier when URL is set.
type RedisConfig struct {
	URL       string `yaml:"url"        env:"REDIS_URL"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"site-api:"`
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool { return c.URL != "" }

// GeminiConfig holds generation service settings. APIKey may be empty when
// callers always supply their own key per request.
type GeminiConfig struct {
	APIKey            string        `yaml:"api_key"            env:"GEMINI_API_KEY"`
	Model             string        `yaml:"model"              env:"GEMINI_MODEL"              env-default:"gemini-3-flash-preview"`
	ReviewTimeout     time.Duration `yaml:"review_timeout"     env:"GEMINI_REVIEW_TIMEOUT"     env-default:"60s"`
	MergeTimeout      time.Duration `yaml:"merge_timeout"      env:"GEMINI_MERGE_TIMEOUT"      env-default:"30s"`
	DraftTimeout      time.Duration `yaml:"draft_timeout"      env:"GEMINI_DRAFT_TIMEOUT"      env-default:"30s"`
	ReviewTemperature float32       `yaml:"review_temperature" env:"GEMINI_REVIEW_TEMPERATURE" env-default:"0.7"`
	MergeTemperature  float32       `yaml:"merge_temperature"  env:"GEMINI_MERGE_TEMPERATURE"  env-default:"0.3"`
}

// ReviewConfig holds fan-out and link enrichment limits.
type ReviewConfig struct {
	DefaultConcurrency int           `yaml:"default_concurrency"   env:"REVIEW_DEFAULT_CONCURRENCY"   env-default:"3"`
	MaxConcurrency     int           `yaml:"max_concurrency"       env:"REVIEW_MAX_CONCURRENCY"       env-default:"6"`
	MaxLinks           int           `yaml:"max_links"             env:"REVIEW_MAX_LINKS"             env-default:"3"`
	LinkTimeout        time.Duration `yaml:"link_timeout"          env:"REVIEW_LINK_TIMEOUT"          env-default:"3500ms"`
	LinkMaxChars       int           `yaml:"link_max_chars"        env:"REVIEW_LINK_MAX_CHARS"        env-default:"4000"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"REVIEW_RATE_LIMIT_PER_MINUTE" env-default:"10"`
}

// TodoConfig holds action item settings.
type TodoConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"TODO_DEFAULT_LIMIT" env-default:"3"`
}
