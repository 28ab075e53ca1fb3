package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит все настройки приложения
type Config struct {
	// Server
	Port string
	Host string

	// Backend API
	APIBaseURL     string
	RequestTimeout time.Duration

	// Session storage
	DBPath        string
	SessionSecret string

	// Uploads
	MaxPhotoSize      int64
	MaxAttachmentSize int64
	PhotoMaxDimension int
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если он существует
	_ = godotenv.Load()

	config := &Config{
		Port:              getEnv("PORT", "8080"),
		Host:              getEnv("HOST", "0.0.0.0"),
		APIBaseURL:        getEnv("API_BASE_URL", "https://7a9c176f6674.vps.myjino.ru/api"),
		DBPath:            getEnv("DB_PATH", "/tmp/educat-client.db"),
		SessionSecret:     getEnv("SESSION_SECRET", "educat_session_secret_2024"),
		PhotoMaxDimension: 800,
	}

	// Парсим числовые значения
	if timeout, err := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "30")); err == nil {
		config.RequestTimeout = time.Duration(timeout) * time.Second
	} else {
		config.RequestTimeout = 30 * time.Second
	}

	if maxPhotoSize, err := strconv.ParseInt(getEnv("MAX_PHOTO_SIZE", "5242880"), 10, 64); err == nil {
		config.MaxPhotoSize = maxPhotoSize
	} else {
		config.MaxPhotoSize = 5 * 1024 * 1024 // 5MB по умолчанию
	}

	if maxAttachmentSize, err := strconv.ParseInt(getEnv("MAX_ATTACHMENT_SIZE", "52428800"), 10, 64); err == nil {
		config.MaxAttachmentSize = maxAttachmentSize
	} else {
		config.MaxAttachmentSize = 50 * 1024 * 1024 // 50MB по умолчанию
	}

	if dim, err := strconv.Atoi(getEnv("PHOTO_MAX_DIMENSION", "800")); err == nil {
		config.PhotoMaxDimension = dim
	}

	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
