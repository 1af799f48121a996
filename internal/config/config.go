package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	TelegramToken   string
	BaseAdminChatID int64
	DatabaseURL     string

	// REST API бэкенда ресторана
	APIBaseURL   string
	APIAuthToken string

	// Пауза между обработанными сканированиями, секунды
	ScanCooldownSeconds int
	// Допуск опоздания по умолчанию, минуты
	DefaultToleranceMinutes int
}

var instance *BotConfig
var once sync.Once

func GetBotConfig() *BotConfig {
	once.Do(func() {
		instance = &BotConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Fatalf("error loading env variables: %s", err.Error())
		}

		instance.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
		if instance.TelegramToken == "" {
			logrus.Fatal("could not get bot token")
		}

		instance.BaseAdminChatID = getEnvAsInt("BASE_ADMIN_CHAT_ID", -2)
		if instance.BaseAdminChatID == -2 {
			logrus.Fatal("could not get admin chat id")
		}

		instance.DatabaseURL = getEnv("DATABASE_URL", "")
		if instance.DatabaseURL == "" {
			logrus.Fatal("could not get db url")
		}

		instance.APIBaseURL = getEnv("API_BASE_URL", "")
		if instance.APIBaseURL == "" {
			logrus.Fatal("could not get restaurant api base url")
		}

		// Токен может быть пустым: аутентифицированные ручки тогда
		// вернут 401, как и в браузерной версии без логина
		instance.APIAuthToken = getEnv("API_AUTH_TOKEN", "")

		instance.ScanCooldownSeconds = int(getEnvAsInt("SCAN_COOLDOWN_SECONDS", 2))
		instance.DefaultToleranceMinutes = int(getEnvAsInt("DEFAULT_TOLERANCE_MINUTES", 15))
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
