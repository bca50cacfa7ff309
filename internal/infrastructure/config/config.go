// Package config loads service configuration from the environment.
//
// cmd/* import github.com/joho/godotenv/autoload, so a local .env file is merged
// into the environment before Load runs.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const DefaultPreferredMethod = "binance_c2c_usdt"

type Config struct {
	Server   ServerConfig
	SPayWay  SPayWayConfig
	Breaker  BreakerConfig
	DynamoDB DynamoDBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

// SPayWayConfig holds the merchant credentials. AccessToken is a secret and must
// never be logged.
type SPayWayConfig struct {
	AccessToken     string
	BaseURL         string
	Timeout         time.Duration
	PreferredMethod string
	MockMode        bool
}

type BreakerConfig struct {
	MaxConsecutiveFailures uint32
	OpenTimeout            time.Duration
}

// DynamoDBConfig credentials default to "local": DynamoDB Local ignores them but
// the AWS SDK requires some.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	CheckoutsTable  string
	AccessKeyID     string
	SecretAccessKey string
}

// RedisConfig is optional; an empty Addr disables the idempotency store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig is optional; no brokers disables checkout events.
type KafkaConfig struct {
	Brokers       []string
	CheckoutTopic string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getenvDefault("PORT", "8080"),
			GinMode: getenvDefault("GIN_MODE", "debug"),
		},
		SPayWay: SPayWayConfig{
			AccessToken:     strings.TrimSpace(os.Getenv("SPAYWAY_ACCESS_TOKEN")),
			BaseURL:         os.Getenv("SPAYWAY_BASE_URL"),
			Timeout:         time.Duration(getenvInt("SPAYWAY_TIMEOUT_SECONDS", 30)) * time.Second,
			PreferredMethod: getenvDefault("SPAYWAY_PREFERRED_METHOD", DefaultPreferredMethod),
			MockMode:        isMockEnabled(),
		},
		Breaker: BreakerConfig{
			MaxConsecutiveFailures: uint32(getenvInt("BREAKER_MAX_FAILURES", 5)),
			OpenTimeout:            time.Duration(getenvInt("BREAKER_OPEN_SECONDS", 30)) * time.Second,
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			CheckoutsTable:  getenvDefault("CHECKOUTS_TABLE", "checkouts"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:       splitList(os.Getenv("KAFKA_BROKERS")),
			CheckoutTopic: getenvDefault("KAFKA_CHECKOUT_TOPIC", "spayway.checkouts"),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// isMockEnabled mirrors the PAYMENT_GATEWAY_MOCK switch: the gateway answers with
// canned data instead of calling S-PayWay.
func isMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "SPAYWAY_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
