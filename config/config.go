package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCookieName         = "token"
	defaultCookiePath         = "/"

	// EnvDevelop is the environment name that relaxes production-only settings.
	EnvDevelop = "develop"
)

// Defaults taken when a section leaves a value unset.
const (
	DefaultBcryptCost           = 10
	DefaultOTPTTL               = 5 * time.Minute
	DefaultRegistrationTokenTTL = 24 * time.Hour
	DefaultSessionTokenTTL      = 7 * 24 * time.Hour
	DefaultOTPSweepInterval     = time.Minute
	DefaultSlowQueryThreshold   = 200 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	CORS CORSConfig `json:"cors" yaml:"cors"`

	Cookie CookieConfig `json:"cookie" yaml:"cookie"`

	// Database selects the connection strategy. When DSN is empty the
	// Postgres block below is used through go-lib.
	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// PubSub configuration for mail event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Mail configuration for the delivery worker
	Mail *MailConfig `json:"mail" yaml:"mail"`

	Worker WorkerConfig `json:"worker" yaml:"worker"`
}

// WorkerConfig defines how the mail worker receives events.
type WorkerConfig struct {
	// Port of the push endpoint. Falls back to http.port when zero.
	Port int `json:"port" yaml:"port"`
	// SubscriptionURL is a gocloud subscription such as mem://mail. Empty disables pulling.
	SubscriptionURL string `json:"subscriptionUrl" yaml:"subscriptionUrl"`
}

// CORSConfig defines the cross-origin caller allowed to send credentials.
type CORSConfig struct {
	AllowedOrigin string `json:"allowedOrigin" yaml:"allowedOrigin"`
}

// CookieConfig defines how the session cookie is written.
type CookieConfig struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Domain string `json:"domain" yaml:"domain"`
	// Secure defaults to true outside the develop environment.
	Secure *bool `json:"secure" yaml:"secure"`
}

// DatabaseConfig defines the store connection.
type DatabaseConfig struct {
	DSN             string        `json:"dsn" yaml:"dsn"`
	AutoMigrate     bool          `json:"autoMigrate" yaml:"autoMigrate"`
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	// SlowQueryThreshold marks queries logged as slow. Negative disables slow-query logging.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost           int           `json:"bcryptCost" yaml:"bcryptCost"`
	OTPTTL               time.Duration `json:"otpTTL" yaml:"otpTTL"`
	RegistrationTokenTTL time.Duration `json:"registrationTokenTTL" yaml:"registrationTokenTTL"`
	SessionTokenTTL      time.Duration `json:"sessionTokenTTL" yaml:"sessionTokenTTL"`
	// OTPSweepInterval controls how often expired codes are purged. Negative disables the sweeper.
	OTPSweepInterval time.Duration `json:"otpSweepInterval" yaml:"otpSweepInterval"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "gocloud". Empty logs mail instead of sending it.
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Portable topic URL such as mem://mail (for gocloud provider)
	TopicURL string `json:"topicUrl" yaml:"topicUrl"`
}

// MailConfig defines outgoing mail settings used by the mail worker.
type MailConfig struct {
	From string     `json:"from" yaml:"from"`
	SMTP SMTPConfig `json:"smtp" yaml:"smtp"`
}

// SMTPConfig defines the relay used to deliver mail.
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML keys, e.g. SECRETKEY_SESSION -> secretKey.session.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills unset values. The store connection is checked by postgres.New.
func (cfg *Config) ApplyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = defaultCookieName
	}
	if cfg.Cookie.Path == "" {
		cfg.Cookie.Path = defaultCookiePath
	}
	if cfg.Cookie.Secure == nil {
		secure := cfg.Env.Env != EnvDevelop
		cfg.Cookie.Secure = &secure
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = DefaultBcryptCost
	}
	if cfg.Auth.OTPTTL <= 0 {
		cfg.Auth.OTPTTL = DefaultOTPTTL
	}
	if cfg.Auth.RegistrationTokenTTL <= 0 {
		cfg.Auth.RegistrationTokenTTL = DefaultRegistrationTokenTTL
	}
	if cfg.Auth.SessionTokenTTL <= 0 {
		cfg.Auth.SessionTokenTTL = DefaultSessionTokenTTL
	}
	if cfg.Auth.OTPSweepInterval == 0 {
		cfg.Auth.OTPSweepInterval = DefaultOTPSweepInterval
	}

	if cfg.Database.SlowQueryThreshold == 0 {
		cfg.Database.SlowQueryThreshold = DefaultSlowQueryThreshold
	}

	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = cfg.HTTP.Port
	}

	for name, port := range map[string]int{"http.port": cfg.HTTP.Port, "worker.port": cfg.Worker.Port} {
		if port < 0 || port > 65535 {
			return errors.Errorf("%s out of range: %d", name, port)
		}
	}

	return nil
}

// SecureCookie reports whether the session cookie carries the Secure attribute.
func (cfg *Config) SecureCookie() bool {
	if cfg.Cookie.Secure == nil {
		return cfg.Env.Env != EnvDevelop
	}

	return *cfg.Cookie.Secure
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
