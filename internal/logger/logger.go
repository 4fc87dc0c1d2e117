// Package logger 提供診斷用結構化日誌：每行為 `LEVEL message {json fields}`。
// 日誌寫到設定的 writer（預設 stderr），與操作員看到的主控台輸出分開。
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Fields map[string]any

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var (
	mu    sync.Mutex
	level = LevelError
	std   = log.New(os.Stderr, "", log.LstdFlags)
)

// ParseLevel 解析 debug / info / error（不分大小寫）。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	default:
		return LevelError, fmt.Errorf("unknown log level %q", s)
	}
}

// Configure 設定輸出位置與最低等級。
func Configure(w io.Writer, min Level) {
	mu.Lock()
	defer mu.Unlock()
	std.SetOutput(w)
	level = min
}

func Debug(message string, fields Fields) {
	write(LevelDebug, "DEBUG", message, fields)
}

func Info(message string, fields Fields) {
	write(LevelInfo, "INFO", message, fields)
}

func Error(message string, err error, fields Fields) {
	base := Fields{}
	for k, v := range fields {
		base[k] = v
	}
	if err != nil {
		base["error"] = err.Error()
	}
	write(LevelError, "ERROR", message, base)
}

func write(l Level, tag, message string, fields Fields) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	std.Printf("%s %s %s", tag, message, fieldsJSON(fields))
}

func fieldsJSON(fields Fields) string {
	if fields == nil {
		fields = Fields{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return `{}`
	}
	return string(b)
}
