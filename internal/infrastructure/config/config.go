package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	pkgkafka "github.com/OwaisQuadri/Musharakaat/pkg/kafka"
)

type LogConfig struct {
	Level  string
	Format string
}

type KafkaConfig struct {
	Brokers       []string
	Topic         string
	ClientID      string
	TLS           bool
	SASLMechanism string
	SASLUsername  string
	SASLPassword  string
}

// Enabled reports whether events should leave the process.
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

// Producer converts the settings into the shared producer configuration.
func (k KafkaConfig) Producer() pkgkafka.Config {
	return pkgkafka.Config{
		Brokers:       k.Brokers,
		ClientID:      k.ClientID,
		TLS:           k.TLS,
		SASLEnabled:   k.SASLUsername != "",
		SASLMechanism: k.SASLMechanism,
		SASLUsername:  k.SASLUsername,
		SASLPassword:  k.SASLPassword,
	}
}

type TracingConfig struct {
	Endpoint    string
	Insecure    bool
	SampleRatio float64
}

type Config struct {
	GRPCPort        int
	HTTPPort        int
	GRPCReflection  bool
	ShutdownTimeout time.Duration
	Log             LogConfig
	Kafka           KafkaConfig
	Tracing         TracingConfig
	ServiceName     string
}

// Load reads the configuration from the environment. A .env file, when present, is loaded
// into the environment by the binaries before Load runs.
func Load() Config {
	serviceName := getEnv("SERVICE_NAME", "musharakahd")
	return Config{
		GRPCPort:        getEnvInt("GRPC_PORT", 9090),
		HTTPPort:        getEnvInt("HTTP_PORT", 8080),
		GRPCReflection:  getEnvBool("GRPC_REFLECTION", false),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Kafka: KafkaConfig{
			Brokers:       pkgkafka.ParseBrokers(os.Getenv("KAFKA_BROKERS")),
			Topic:         getEnv("KAFKA_TOPIC", "financing-events"),
			ClientID:      getEnv("KAFKA_CLIENT_ID", serviceName),
			TLS:           getEnvBool("KAFKA_TLS", false),
			SASLMechanism: getEnv("KAFKA_SASL_MECHANISM", "PLAIN"),
			SASLUsername:  os.Getenv("KAFKA_SASL_USERNAME"),
			SASLPassword:  os.Getenv("KAFKA_SASL_PASSWORD"),
		},
		Tracing: TracingConfig{
			Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Insecure:    getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			SampleRatio: getEnvFloat("OTEL_TRACES_SAMPLER_ARG", 1),
		},
		ServiceName: serviceName,
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
