package config

import (
	"os"
	"strconv"
)

// AddressMode selects which checkout address rules apply for this
// deployment. The storefront ships with the flat single-field form;
// some deployments use the split city/district/state/PIN form.
const (
	AddressModeFlat  = "flat"
	AddressModeSplit = "split"
)

type Config struct {
	Port string
	Env  string

	MongoURI    string
	MongoDB     string
	RedisURL    string
	PostgresDSN string

	KafkaBrokers    string
	CartEventTopic  string
	OrderEventTopic string

	S3Bucket   string
	S3Prefix   string
	S3Endpoint string
	AWSRegion  string

	SNSOrderTopicArn string

	JWTSecret string

	WhatsAppNumber      string
	CheckoutAddressMode string

	FreeShippingThreshold float64
	ShippingFlat          float64
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "storefront"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=storefront port=5432 sslmode=disable"),

		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		CartEventTopic:  getEnv("KAFKA_CART_TOPIC", "cart.updated"),
		OrderEventTopic: getEnv("KAFKA_ORDER_TOPIC", "order.created"),

		S3Bucket:   getEnv("AWS_S3_BUCKET", "storefront-images"),
		S3Prefix:   getEnv("AWS_S3_PREFIX", "products/"),
		S3Endpoint: getEnv("AWS_S3_ENDPOINT", ""),
		AWSRegion:  getEnv("AWS_REGION", "ap-south-1"),

		SNSOrderTopicArn: getEnv("SNS_ORDER_TOPIC_ARN", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		WhatsAppNumber:      getEnv("WHATSAPP_NUMBER", "919079998370"),
		CheckoutAddressMode: getEnv("CHECKOUT_ADDRESS_MODE", AddressModeFlat),

		FreeShippingThreshold: getEnvFloat("FREE_SHIPPING_THRESHOLD", 2000),
		ShippingFlat:          getEnvFloat("SHIPPING_FLAT", 100),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
