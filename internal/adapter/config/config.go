package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is built once at startup; components receive their own section.
type Config struct {
	App      *App
	HTTP     *HTTP
	Database *Database
	PayPal   *PayPal
	Telegram *Telegram
	Catalog  *Catalog
	Orders   *Orders
	Content  *Content
	Kafka    *Kafka
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

const PayPalModeLive = "live"
const PayPalModeSandbox = "sandbox"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
	// PublicURL is the externally reachable base used for PayPal return links
	// and the Telegram webhook.
	PublicURL string `env:"PUBLIC_URL"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type PayPal struct {
	ClientID  string `env:"PAYPAL_CLIENT_ID"`
	Secret    string `env:"PAYPAL_SECRET"`
	Mode      string `env:"PAYPAL_MODE"`
	BaseURL   string `env:"PAYPAL_BASE_URL"`
	WebhookID string `env:"PAYPAL_WEBHOOK_ID"`
	BrandName string `env:"PAYPAL_BRAND_NAME"`
	Currency  string `env:"PAYPAL_CURRENCY"`
}

// APIBase resolves the REST endpoint, preferring an explicit base URL.
func (p *PayPal) APIBase() string {
	if p.BaseURL != "" {
		return p.BaseURL
	}
	if p.Mode == PayPalModeLive {
		return "https://api-m.paypal.com"
	}
	return "https://api-m.sandbox.paypal.com"
}

type Telegram struct {
	Token         string `env:"BOT_TOKEN"`
	WebhookSecret string `env:"BOT_WEBHOOK_SECRET"`
	// CodeRate is the number of manual code submissions a chat may make per minute.
	CodeRate int `env:"BOT_CODE_RATE"`
}

type Catalog struct {
	Path string `env:"CATALOG_PATH"`
}

type Orders struct {
	CallTimeout     time.Duration `env:"ORDER_CALL_TIMEOUT"`
	Retention       time.Duration `env:"ORDER_RETENTION"`
	PendingTTL      time.Duration `env:"ORDER_PENDING_TTL"`
	JanitorInterval time.Duration `env:"ORDER_JANITOR_INTERVAL"`
	SupportContact  string        `env:"SUPPORT_CONTACT"`
}

type Content struct {
	MaxBytes int64 `env:"CONTENT_MAX_BYTES"`
}

type Kafka struct {
	Brokers string `env:"KAFKA_BROKERS"`
	Topic   string `env:"KAFKA_ORDER_TOPIC"`
}

func NewConfig() (*Config, error) {
	return parseConfig(os.Args[0], os.Args[1:])
}

func parseConfig(name string, args []string) (*Config, error) {
	var app App
	var http HTTP
	var db Database
	var paypal PayPal
	var telegram Telegram
	var catalog Catalog
	var orders Orders
	var content Content
	var kafka Kafka

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&db.DSN, "d", "", "Database string")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.StringVar(&http.PublicURL, "u", `http://localhost:8080`, "Public base URL")
	fs.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fs.StringVar(&app.Mode, "m", AppModeDevelop, "PROD / DEV")
	fs.StringVar(&catalog.Path, "c", "", "Catalog YAML file")
	fs.StringVar(&paypal.Mode, "p", PayPalModeSandbox, "PayPal mode: sandbox / live")
	fs.StringVar(&paypal.BrandName, "brand", "Story Kiosk", "Brand shown on the PayPal page")
	fs.StringVar(&paypal.Currency, "currency", "EUR", "Payment currency")
	fs.DurationVar(&orders.CallTimeout, "call-timeout", 20*time.Second, "Timeout for each external call")
	fs.DurationVar(&orders.Retention, "retention", 7*24*time.Hour, "Retention of finished orders")
	fs.DurationVar(&orders.PendingTTL, "pending-ttl", 24*time.Hour, "Lifetime of unconfirmed orders")
	fs.DurationVar(&orders.JanitorInterval, "janitor-interval", 10*time.Minute, "Order janitor interval")
	fs.StringVar(&orders.SupportContact, "support", "", "Support contact shown to users")
	fs.IntVar(&telegram.CodeRate, "code-rate", 5, "Manual code submissions per chat per minute")
	fs.Int64Var(&content.MaxBytes, "max-file-bytes", 50<<20, "Maximum size of a delivered file")
	fs.StringVar(&kafka.Brokers, "k", "", "Kafka brokers, comma separated")
	fs.StringVar(&kafka.Topic, "kafka-topic", "storykiosk.orders", "Kafka topic for order events")
	err := fs.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	sections := []struct {
		name string
		v    any
	}{
		{"app", &app},
		{"http", &http},
		{"database", &db},
		{"paypal", &paypal},
		{"telegram", &telegram},
		{"catalog", &catalog},
		{"orders", &orders},
		{"content", &content},
		{"kafka", &kafka},
	}
	for _, s := range sections {
		err = env.Parse(s.v)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s config: %w", s.name, err)
		}
	}

	if orders.CallTimeout <= 0 {
		return nil, fmt.Errorf("call timeout must be positive, got %s", orders.CallTimeout)
	}

	config := Config{
		App:      &app,
		HTTP:     &http,
		Database: &db,
		PayPal:   &paypal,
		Telegram: &telegram,
		Catalog:  &catalog,
		Orders:   &orders,
		Content:  &content,
		Kafka:    &kafka,
	}

	return &config, nil
}
