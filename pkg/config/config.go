package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultServerAPIURL используется серверными функциями, когда адрес API не задан
const DefaultServerAPIURL = "http://localhost:5000/api"

var ErrAPIURLNotSet = errors.New(
	"переменная окружения API_URL не задана, добавьте её в файл .env",
)

// Config представляет конфигурацию приложения
type Config struct {
	API     APIConfig
	Runtime RuntimeConfig
	Storage StorageConfig
	Log     LogConfig
	Server  ServerConfig
	Auth    AuthConfig
}

// APIConfig описывает подключение к REST API
type APIConfig struct {
	URL                string
	ServerURL          string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// RuntimeConfig задаёт контекст выполнения клиента: browser или server
type RuntimeConfig struct {
	Context string
}

// StorageConfig описывает хранилище токена и профиля пользователя
type StorageConfig struct {
	Driver   string
	Path     string
	RedisURL string
	Prefix   string
}

type LogConfig struct {
	Level string
}

// ServerConfig представляет конфигурацию stub-сервера
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// LoadConfig читает конфигурацию клиента. Адрес API обязателен.
func LoadConfig(path string) (*Config, error) {
	v, err := load(path)
	if err != nil {
		return nil, err
	}

	config, err := build(v)
	if err != nil {
		return nil, err
	}

	if config.API.URL == "" {
		return nil, ErrAPIURLNotSet
	}

	return config, nil
}

// LoadServerConfig читает конфигурацию stub-сервера, адрес API для него не нужен.
func LoadServerConfig(path string) (*Config, error) {
	v, err := load(path)
	if err != nil {
		return nil, err
	}

	return build(v)
}

// ServerAPIURL возвращает базовый адрес для запросов из серверного контекста
func (c *APIConfig) ServerAPIURL() string {
	if c.ServerURL != "" {
		return c.ServerURL
	}

	if c.URL != "" {
		return c.URL
	}

	return DefaultServerAPIURL
}

func load(path string) (*viper.Viper, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("api.timeout", "10s")
	v.SetDefault("api.insecure_skip_verify", false)

	v.SetDefault("runtime.context", "browser")

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", defaultStoragePath())
	v.SetDefault("storage.redis_url", "redis://localhost:6379/0")
	v.SetDefault("storage.prefix", "offerhub:")

	v.SetDefault("log.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")

	v.SetDefault("auth.token_ttl", "24h")

	// ключи без значения по умолчанию должны быть известны viper, иначе AutomaticEnv их не увидит
	envKeys := map[string]string{
		"api.url":         "API_URL",
		"api.server_url":  "API_SERVER_URL",
		"auth.jwt_secret": "AUTH_JWT_SECRET",
	}
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("ошибка привязки переменной окружения %s: %w", env, err)
		}
	}

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("ошибка чтения конфигурационного файла: %w", err)
		}
	}

	return v, nil
}

func build(v *viper.Viper) (*Config, error) {
	var config Config

	apiTimeout, err := time.ParseDuration(v.GetString("api.timeout"))
	if err != nil {
		return nil, fmt.Errorf("неверный формат api.timeout: %w", err)
	}

	readTimeout, err := time.ParseDuration(v.GetString("server.read_timeout"))
	if err != nil {
		return nil, fmt.Errorf("неверный формат read_timeout: %w", err)
	}

	writeTimeout, err := time.ParseDuration(v.GetString("server.write_timeout"))
	if err != nil {
		return nil, fmt.Errorf("неверный формат write_timeout: %w", err)
	}

	tokenTTL, err := time.ParseDuration(v.GetString("auth.token_ttl"))
	if err != nil {
		return nil, fmt.Errorf("неверный формат token_ttl: %w", err)
	}

	config.API = APIConfig{
		URL:                strings.TrimRight(strings.TrimSpace(v.GetString("api.url")), "/"),
		ServerURL:          strings.TrimRight(strings.TrimSpace(v.GetString("api.server_url")), "/"),
		Timeout:            apiTimeout,
		InsecureSkipVerify: v.GetBool("api.insecure_skip_verify"),
	}

	config.Runtime = RuntimeConfig{
		Context: v.GetString("runtime.context"),
	}

	config.Storage = StorageConfig{
		Driver:   v.GetString("storage.driver"),
		Path:     v.GetString("storage.path"),
		RedisURL: v.GetString("storage.redis_url"),
		Prefix:   v.GetString("storage.prefix"),
	}

	config.Log = LogConfig{
		Level: v.GetString("log.level"),
	}

	config.Server = ServerConfig{
		Host:         v.GetString("server.host"),
		Port:         v.GetString("server.port"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	config.Auth = AuthConfig{
		JWTSecret: v.GetString("auth.jwt_secret"),
		TokenTTL:  tokenTTL,
	}

	return &config, nil
}

func defaultStoragePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".offerhub", "storage.json")
	}

	return filepath.Join(homeDir, ".offerhub", "storage.json")
}

// Addr возвращает адрес, который слушает stub-сервер
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
