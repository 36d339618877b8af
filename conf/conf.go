// Package conf holds the explicit runtime configuration of the intake
// backend. Business logic never reads the environment directly; the
// entrypoints build a Config and pass it into constructors.
package conf

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

const (
	StoreMemory   = "memory"
	StoreDynamoDb = "dynamodb"
	StoreS3       = "s3"

	NotifyLog  = "log"
	NotifySmtp = "smtp"
	NotifySqs  = "sqs"
)

type StoreConfig struct {
	Provider string `toml:"provider"` // memory | dynamodb | s3
	Region   string `toml:"region"`
	DdbTable string `toml:"ddb_table"`
	S3Bucket string `toml:"s3_bucket"`
	S3Prefix string `toml:"s3_prefix"`
}

type NotifyConfig struct {
	Provider  string `toml:"provider"` // log | smtp | sqs
	Recipient string `toml:"recipient"`

	SmtpHost     string `toml:"smtp_host"`
	SmtpPort     int    `toml:"smtp_port"`
	SmtpUsername string `toml:"smtp_username"`
	SmtpPassword string `toml:"-"` // env / secrets manager only
	SmtpFrom     string `toml:"smtp_from"`

	SqsQueueUrl string `toml:"sqs_queue_url"`
	SqsRegion   string `toml:"sqs_region"`
}

type Config struct {
	HttpAddress string       `toml:"http_address"`
	Store       StoreConfig  `toml:"store"`
	Notify      NotifyConfig `toml:"notify"`

	// AdminKey is the staff credential verified per request. In deployed
	// environments it is resolved from AWS Secrets Manager instead of
	// being written down anywhere (see AdminKeySecretName).
	AdminKey           string `toml:"-"`
	AdminKeySecretName string `toml:"admin_key_secret_name"`
}

func defaultConfig() Config {
	return Config{
		HttpAddress: ":8080",
		Store:       StoreConfig{Provider: StoreMemory, Region: "eu-central-1"},
		Notify:      NotifyConfig{Provider: NotifyLog},
	}
}

// Load builds the configuration from an optional TOML file overlaid with
// environment variables. Pass an empty path to skip the file.
func Load(tomlPath string) (Config, error) {
	cfg := defaultConfig()

	if tomlPath != "" {
		content, err := os.ReadFile(tomlPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", tomlPath, err)
		}
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", tomlPath, err)
		}
	}

	applyEnv(&cfg)

	if cfg.AdminKey == "" && cfg.AdminKeySecretName != "" {
		adminKey, err := getAdminKeyFromAWS(cfg.AdminKeySecretName)
		if err != nil {
			return Config{}, fmt.Errorf("failed to resolve admin key secret: %w", err)
		}
		cfg.AdminKey = adminKey
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setStr := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setStr(&cfg.HttpAddress, "INTAKE_HTTP_ADDRESS")

	setStr(&cfg.Store.Provider, "INTAKE_STORE")
	setStr(&cfg.Store.Region, "AWS_REGION")
	setStr(&cfg.Store.DdbTable, "INTAKE_DDB_TABLE")
	setStr(&cfg.Store.S3Bucket, "INTAKE_S3_BUCKET")
	setStr(&cfg.Store.S3Prefix, "INTAKE_S3_PREFIX")

	setStr(&cfg.Notify.Provider, "INTAKE_NOTIFY")
	setStr(&cfg.Notify.Recipient, "INTAKE_NOTIFY_RECIPIENT")
	setStr(&cfg.Notify.SmtpHost, "SMTP_HOST")
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Notify.SmtpPort = port
		}
	}
	setStr(&cfg.Notify.SmtpUsername, "SMTP_USERNAME")
	setStr(&cfg.Notify.SmtpPassword, "SMTP_PASSWORD")
	setStr(&cfg.Notify.SmtpFrom, "SMTP_FROM")
	setStr(&cfg.Notify.SqsQueueUrl, "NOTIF_SQS_QUEUE_URL")
	setStr(&cfg.Notify.SqsRegion, "NOTIF_SQS_REGION")

	setStr(&cfg.AdminKey, "ADMIN_KEY")
	setStr(&cfg.AdminKeySecretName, "ADMIN_KEY_SECRET_NAME")
}
