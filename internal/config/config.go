package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию симулятора
type Config struct {
	OutputDir       string
	PDFBaseName     string
	LogoPath        string
	MaxPrincipal    float64
	LogLevel        string
	OTELEndpoint    string
	OTELServiceName string
	MetricsAddr     string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		OutputDir:       getEnvString("OUTPUT_DIR", "download"),
		PDFBaseName:     getEnvString("PDF_BASE_NAME", "calcul_amortissement"),
		LogoPath:        getEnvString("LOGO_PATH", "logo_microlead.png"),
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e12),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "loan-amortization"),
		MetricsAddr:     getEnvString("METRICS_ADDR", ""),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
