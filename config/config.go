package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
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
	defaultMaxRequestBodySize = "2MB"
	defaultPaymentTimeout     = 30 * time.Second
	defaultOrderDetailPath    = "/orders/%d"
	defaultWorkerPort         = 8081
	defaultSweepInterval      = 10 * time.Minute
	defaultStaleOrderAfter    = 24 * time.Hour
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

	// Checked by hand in Validate; the driver library owns this type.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"-"`

	Database struct {
		// Queries slower than this are logged as warnings
		SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	} `json:"database" yaml:"database"`

	// Migrations controls schema migration on startup
	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Checkout configuration for order placement
	Checkout CheckoutConfig `json:"checkout" yaml:"checkout"`

	// Payment configuration for the hosted payment gateway
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Storage configuration for product images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// QRCode configuration for payment QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Worker configuration for the order worker process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationsConfig defines schema migration behaviour
type MigrationsConfig struct {
	// Apply pending migrations when the API starts
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// CheckoutConfig defines order placement configuration
type CheckoutConfig struct {
	// fmt pattern for the redirect returned after checkout, receives the order id
	OrderDetailPath string `json:"orderDetailPath" yaml:"orderDetailPath"`

	// Used only when the settings store has no shipping_cost value
	DefaultShippingCost int64 `json:"defaultShippingCost" yaml:"defaultShippingCost" validate:"min=0"`

	// Used only when the settings store has no free_shipping_threshold value
	DefaultFreeShippingThreshold int64 `json:"defaultFreeShippingThreshold" yaml:"defaultFreeShippingThreshold" validate:"min=0"`
}

// PaymentConfig defines the payment gateway client configuration
type PaymentConfig struct {
	MerchantID string `json:"merchantId" yaml:"merchantId" validate:"required"`

	// Use the provider sandbox instead of production
	Sandbox bool `json:"sandbox" yaml:"sandbox"`

	// Overrides the sandbox/production base URL, mainly for tests
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Absolute URL the provider redirects to after payment
	CallbackURL string `json:"callbackUrl" yaml:"callbackUrl" validate:"required,url"`

	// Bound on each gateway call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// fmt pattern for the payment description, receives the order id
	DescriptionTemplate string `json:"descriptionTemplate" yaml:"descriptionTemplate"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "rabbitmq" for AMQP
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google rabbitmq"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP connection URL (for rabbitmq provider)
	RabbitMQURL string `json:"rabbitmqUrl" yaml:"rabbitmqUrl"`

	// Topic exchange that receives order events (for rabbitmq provider)
	Exchange string `json:"exchange" yaml:"exchange"`
}

// StorageConfig defines blob storage for product images
type StorageConfig struct {
	// gocloud bucket URL, e.g. file:///var/lib/storefront/media or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl" validate:"required"`

	// Public prefix used to build image URLs, e.g. the /media route of this service
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// WorkerConfig defines the order worker process
type WorkerConfig struct {
	Port int `json:"port" yaml:"port" validate:"min=1,max=65535"`

	// Expected audience of Pub/Sub push tokens; empty disables verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// How often stale pending orders are released
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	// Pending orders older than this are canceled and restocked
	StaleOrderAfter time.Duration `json:"staleOrderAfter" yaml:"staleOrderAfter"`
}

// LoadWithEnv reads <name>.yaml from the working directory or one of
// configPath (relative to it), then overlays environment variables.
// POSTGRES_SSLMODE lands on postgres.sslMode when the file spells it that way.
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	path, err := locate(name+".yaml", configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fromFile := k.Raw()
	overlay := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromFile), value
		},
	})
	if err := k.Load(overlay, nil); err != nil {
		return nil, errors.Wrap(err, "load environment overrides")
	}

	cfg := new(T)
	decoder := &mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoder}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

// locate returns the first existing filename under the working directory
// and then each of dirs.
func locate(filename string, dirs []string) (string, error) {
	candidates := []string{filepath.Join(defaultPath, filename)}
	if len(dirs) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(pwd, dir, filename))
		}
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in any search path", filename)
}

// New loads config.yaml for the storefront binaries, fills defaults and
// rejects settings the services cannot start with.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags and the cross-field rules.
func (c *Config) Validate() error {
	if c.Postgres == nil {
		return errors.New("postgres configuration is required")
	}
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if strings.Count(c.Checkout.OrderDetailPath, "%d") != 1 {
		return errors.Errorf("checkout.orderDetailPath %q must contain exactly one %%d", c.Checkout.OrderDetailPath)
	}

	return nil
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
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

// applyDefaults fills optional settings that have a sensible fallback.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if strings.TrimSpace(cfg.Checkout.OrderDetailPath) == "" {
		cfg.Checkout.OrderDetailPath = defaultOrderDetailPath
	}

	if cfg.Payment != nil && cfg.Payment.Timeout <= 0 {
		cfg.Payment.Timeout = defaultPaymentTimeout
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
	if cfg.Worker.SweepInterval <= 0 {
		cfg.Worker.SweepInterval = defaultSweepInterval
	}
	if cfg.Worker.StaleOrderAfter <= 0 {
		cfg.Worker.StaleOrderAfter = defaultStaleOrderAfter
	}
}
