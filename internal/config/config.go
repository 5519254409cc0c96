// Package config loads service settings from the environment, after
// pulling in the nearest .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/payment"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

type Supabase struct {
	URL            string
	ServiceRoleKey string
	Bucket         string
	JWTSecret      string
}

type Tracking struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Config struct {
	LogLevel string
	HTTPPort string
	GRPCPort string

	DB       db.Options
	Supabase Supabase
	Tracking Tracking
	Payment  payment.Config

	WebhookSecret string
	AdminUsername string
	AdminPassword string

	KafkaBrokers  []string
	ConsumerGroup string
	Outbox        kafka.PublisherConfig

	CarriersFile string
	Policy       storage.Policy
}

var defaults = map[string]interface{}{
	"LOG_LEVEL": "info",
	"HTTP_PORT": "9000",
	"GRPC_PORT": "9001",

	"DB_HOST":           "localhost",
	"DB_PORT":           5432,
	"POSTGRES_USER":     "postgres",
	"POSTGRES_PASSWORD": "postgres",
	"POSTGRES_DB":       "forwarder",
	"DB_MAX_CONNS":      10,

	"SUPABASE_URL":              "",
	"SUPABASE_SERVICE_ROLE_KEY": "",
	"SUPABASE_BUCKET":           "package-photos",
	"SUPABASE_JWT_SECRET":       "",

	"TRACKING_BASE_URL": "https://api.17track.net/track/v2.2",
	"TRACKING_API_KEY":  "",
	"TRACKING_TIMEOUT":  "10s",

	"PAYMENT_BASE_URL":       "https://api.stripe.com",
	"PAYMENT_SECRET_KEY":     "",
	"PAYMENT_SUCCESS_URL":    "http://localhost:3000/payment/success",
	"PAYMENT_CANCEL_URL":     "http://localhost:3000/payment/cancel",
	"PAYMENT_TIMEOUT":        "15s",
	"PAYMENT_WEBHOOK_SECRET": "",

	"ADMIN_USERNAME": "admin",
	"ADMIN_PASSWORD": "",

	"KAFKA_BROKERS":        "",
	"KAFKA_CONSUMER_GROUP": "tracking-worker",
	"OUTBOX_POLL_INTERVAL": "1s",
	"OUTBOX_BATCH_SIZE":    50,
	"OUTBOX_MAX_ATTEMPTS":  5,

	"CARRIERS_FILE":       "",
	"FREE_STORAGE_DAYS":   3,
	"STORAGE_FEE_PER_DAY": "1.00",
	"HANDLING_FEE":        "5.00",
	"HANDLING_FEE_PER_KG": "0",
	"TAX_RATE":            "0.20",
	"CURRENCY":            "eur",
}

// Load reads the first .env found next to or above the working directory,
// then the process environment. Real environment variables win over the
// file.
func Load() (*Config, error) {
	LoadEnvFile()
	return FromViper(newViper())
}

// LoadEnvFile looks for .env, then .example.env, in the working directory
// and its two parents. It returns the path it loaded, or "".
func LoadEnvFile() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dirs := []string{wd, filepath.Join(wd, ".."), filepath.Join(wd, "..", "..")}
	for _, name := range []string{".env", ".example.env"} {
		for _, dir := range dirs {
			path := filepath.Join(dir, name)
			if err := godotenv.Load(path); err == nil {
				return path
			}
		}
	}
	return ""
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from v. Keys are the upper-case env names.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LogLevel: v.GetString("LOG_LEVEL"),
		HTTPPort: v.GetString("HTTP_PORT"),
		GRPCPort: v.GetString("GRPC_PORT"),
		DB: db.Options{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("POSTGRES_USER"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			Name:     v.GetString("POSTGRES_DB"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Supabase: Supabase{
			URL:            v.GetString("SUPABASE_URL"),
			ServiceRoleKey: v.GetString("SUPABASE_SERVICE_ROLE_KEY"),
			Bucket:         v.GetString("SUPABASE_BUCKET"),
			JWTSecret:      v.GetString("SUPABASE_JWT_SECRET"),
		},
		Tracking: Tracking{
			BaseURL: v.GetString("TRACKING_BASE_URL"),
			APIKey:  v.GetString("TRACKING_API_KEY"),
			Timeout: v.GetDuration("TRACKING_TIMEOUT"),
		},
		Payment: payment.Config{
			BaseURL:    v.GetString("PAYMENT_BASE_URL"),
			SecretKey:  v.GetString("PAYMENT_SECRET_KEY"),
			SuccessURL: v.GetString("PAYMENT_SUCCESS_URL"),
			CancelURL:  v.GetString("PAYMENT_CANCEL_URL"),
			Timeout:    v.GetDuration("PAYMENT_TIMEOUT"),
		},
		WebhookSecret: v.GetString("PAYMENT_WEBHOOK_SECRET"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		KafkaBrokers:  splitList(v.GetString("KAFKA_BROKERS")),
		ConsumerGroup: v.GetString("KAFKA_CONSUMER_GROUP"),
		Outbox: kafka.PublisherConfig{
			PollInterval: v.GetDuration("OUTBOX_POLL_INTERVAL"),
			BatchSize:    v.GetInt("OUTBOX_BATCH_SIZE"),
			MaxAttempts:  v.GetInt("OUTBOX_MAX_ATTEMPTS"),
		},
		CarriersFile: v.GetString("CARRIERS_FILE"),
	}

	policy, err := policyFrom(v)
	if err != nil {
		return nil, err
	}
	cfg.Policy = policy
	return cfg, nil
}

func policyFrom(v *viper.Viper) (storage.Policy, error) {
	policy := storage.DefaultPolicy()

	feePerDay, err := decimalSetting(v, "STORAGE_FEE_PER_DAY")
	if err != nil {
		return policy, err
	}
	handling, err := decimalSetting(v, "HANDLING_FEE")
	if err != nil {
		return policy, err
	}
	perKg, err := decimalSetting(v, "HANDLING_FEE_PER_KG")
	if err != nil {
		return policy, err
	}
	taxRate, err := decimalSetting(v, "TAX_RATE")
	if err != nil {
		return policy, err
	}

	freeDays := v.GetInt("FREE_STORAGE_DAYS")
	if freeDays < 0 {
		return policy, fmt.Errorf("FREE_STORAGE_DAYS must not be negative, got %d", freeDays)
	}

	policy.Storage = pricing.StoragePolicy{FreeDays: freeDays, FeePerDay: feePerDay}
	policy.Handling.Flat = handling
	policy.Handling.PerKg = perKg
	policy.TaxRate = taxRate
	policy.Currency = strings.ToLower(v.GetString("CURRENCY"))
	return policy, nil
}

func decimalSetting(v *viper.Viper, key string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative, got %s", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
