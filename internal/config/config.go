package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary    Primary          `koanf:"primary"`
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Redis      RedisConfig      `koanf:"redis"`
	Laybuy     LaybuyConfig     `koanf:"laybuy"`
	Storefront StorefrontConfig `koanf:"storefront"`
	Logger     LoggerConfig     `koanf:"logger"`
	Worker     WorkerConfig     `koanf:"worker"`
	RateLimit  RateLimitConfig  `koanf:"rate_limit"`
}

type WorkerConfig struct {
	Interval  time.Duration `koanf:"interval" validate:"required"`
	BatchSize int           `koanf:"batch_size" validate:"required"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig is optional. With an empty Addr the confirm lock stays in-process.
type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	LockTTL  time.Duration `koanf:"lock_ttl" validate:"required"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type LaybuyConfig struct {
	MerchantID        string `koanf:"merchant_id"`
	AuthenticationKey string `koanf:"authentication_key"`
	UseSandbox        bool   `koanf:"use_sandbox"`

	DisplayOnProductPage  bool `koanf:"display_on_product_page"`
	DisplayOnProductBox   bool `koanf:"display_on_product_box"`
	DisplayOnShoppingCart bool `koanf:"display_on_shopping_cart"`

	// RequestTimeout is in seconds.
	RequestTimeout int `koanf:"request_timeout" validate:"min=1"`
}

const (
	productionBaseURL = "https://api.laybuy.com/"
	sandboxBaseURL    = "https://sandbox-api.laybuy.com/"
)

func (c LaybuyConfig) BaseURL() string {
	if c.UseSandbox {
		return sandboxBaseURL
	}
	return productionBaseURL
}

// Configured reports whether provider calls may be attempted at all.
func (c LaybuyConfig) Configured() bool {
	return c.UseSandbox || (c.MerchantID != "" && c.AuthenticationKey != "")
}

func (c LaybuyConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// StorefrontConfig holds the host URLs the customer is sent back to. Each
// template may contain an {orderId} placeholder.
type StorefrontConfig struct {
	CallbackURL          string `koanf:"callback_url" validate:"required"`
	CheckoutCompletedURL string `koanf:"checkout_completed_url" validate:"required"`
	OrderDetailsURL      string `koanf:"order_details_url" validate:"required"`
	Locale               string `koanf:"locale" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"required"`
	Burst             int     `koanf:"burst" validate:"required"`
}

var defaults = map[string]any{
	"server.port":                    "8080",
	"server.read_timeout":            "15s",
	"server.write_timeout":           "15s",
	"server.idle_timeout":            "60s",
	"database.ssl_mode":              "disable",
	"database.max_open_conns":        10,
	"database.max_idle_conns":        2,
	"database.conn_max_lifetime":     "1h",
	"database.conn_max_idle_time":    "30m",
	"redis.lock_ttl":                 "30s",
	"laybuy.request_timeout":         10,
	"storefront.locale":              "en-AU",
	"logger.level":                   "info",
	"logger.format":                  "json",
	"worker.interval":                "5m",
	"worker.batch_size":              50,
	"rate_limit.requests_per_second": 5,
	"rate_limit.burst":               10,
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := Validate(mainConfig); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate runs tag validation plus the credential rule: merchant id and
// authentication key are both required unless the sandbox is used.
func Validate(cfg *Config) error {
	validate := validator.New()
	validate.RegisterStructValidation(laybuyCredentials, LaybuyConfig{})
	return validate.Struct(cfg)
}

func laybuyCredentials(sl validator.StructLevel) {
	c := sl.Current().Interface().(LaybuyConfig)
	if c.UseSandbox {
		return
	}
	if c.MerchantID == "" {
		sl.ReportError(c.MerchantID, "merchant_id", "MerchantID", "required_unless_sandbox", "")
	}
	if c.AuthenticationKey == "" {
		sl.ReportError(c.AuthenticationKey, "authentication_key", "AuthenticationKey", "required_unless_sandbox", "")
	}
}
