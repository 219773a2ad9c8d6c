package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ApiClientConfig хранит конфигурацию API-клиента
type ApiClientConfig struct {
	BaseURL string
	// UseRealBackend выбирает транспорт один раз при старте.
	// Production-окружение всегда ходит в живой backend.
	UseRealBackend bool
	Timeout        time.Duration
}

// MockConfig настраивает встроенный mock-backend
type MockConfig struct {
	// Delay - искусственная задержка ответа, имитирует сетевую латентность
	Delay time.Duration
}

type SessionConfig struct {
	// Dir - каталог, где лежат файлы токена и пользователя
	Dir string
}

type StdoutLogConfig struct {
	Level string // По умолчанию DEBUG
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string // По умолчанию INFO
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	ApiClient    ApiClientConfig
	Mock         MockConfig
	Session      SessionConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}

	if err != nil {
		// .env не обязателен: клиент работает и на одних переменных окружения
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "tenansee-client")

	cfg.ApiClient.BaseURL = getEnvAsString("API_BASE_URL", "http://localhost:3001/api")
	// Либо флаг выставлен явно, либо это production-сборка
	cfg.ApiClient.UseRealBackend = getEnvAsBool("USE_REAL_BACKEND", false) ||
		getEnvAsString("APP_ENV", "development") == "production"
	cfg.ApiClient.Timeout = time.Duration(getEnvAsInt("HTTP_TIMEOUT_MS", 10000)) * time.Millisecond

	cfg.Mock.Delay = time.Duration(getEnvAsInt("MOCK_DELAY_MS", 300)) * time.Millisecond

	cfg.Session.Dir = getEnvAsString("SESSION_DIR", defaultSessionDir())

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tenansee"
	}
	return home + string(os.PathSeparator) + ".tenansee"
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
// Логирует ошибку, если переменная есть, но не может быть преобразована в int
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
