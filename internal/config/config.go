package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"consolebank/internal/logger"
)

// DefaultEnvFile 不存在時會被忽略。
const DefaultEnvFile = ".env"

const defaultCurrencySymbol = "Rs."

type Config struct {
	CurrencySymbol string
	LogLevel       logger.Level
	LogFile        string
}

// Load 先載入 dotenv 檔（已存在的環境變數優先），再讀取環境變數並套用預設值。
// envFile 為空時使用 DefaultEnvFile 且允許檔案不存在。
func Load(envFile string) (Config, error) {
	path := envFile
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if envFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	symbol := strings.TrimSpace(os.Getenv("BANK_CURRENCY_SYMBOL"))
	if symbol == "" {
		symbol = defaultCurrencySymbol
	}

	level := logger.LevelError
	if raw := strings.TrimSpace(os.Getenv("BANK_LOG_LEVEL")); raw != "" {
		l, err := logger.ParseLevel(raw)
		if err != nil {
			return Config{}, fmt.Errorf("BANK_LOG_LEVEL: %w", err)
		}
		level = l
	}

	return Config{
		CurrencySymbol: symbol,
		LogLevel:       level,
		LogFile:        strings.TrimSpace(os.Getenv("BANK_LOG_FILE")),
	}, nil
}
