// cmd/bank/main.go

// 本程式提供主控台銀行帳戶模擬：開戶、存提款、計息與查詢。
// 此檔案負責載入設定、初始化日誌與 bank 模組，並啟動主控台工作階段。
// 所有狀態只存在於本次執行的記憶體中。

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"consolebank/internal/bank"
	"consolebank/internal/config"
	"consolebank/internal/console"
	"consolebank/internal/logger"
)

func main() {
	envFile := flag.String("env", "", "dotenv file to load; default .env if present")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := openLog(cfg.LogFile)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	logger.Configure(logOut, cfg.LogLevel)

	s := console.NewSession(bank.NewBank(), os.Stdin, os.Stdout, console.Options{
		CurrencySymbol: cfg.CurrencySymbol,
	})

	// 收到 SIGINT/SIGTERM 時直接結束；狀態不保存
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		logger.Info("console session interrupted", logger.Fields{"session": s.ID(), "signal": sig.String()})
		fmt.Fprintln(os.Stdout, "\nThank you for using the banking system.")
		_ = logOut.Close()
		os.Exit(0)
	}()

	err = s.Run()
	if err != nil {
		logger.Error("console session failed", err, logger.Fields{"session": s.ID()})
	}
	// os.Exit 不執行 defer，日誌檔在此明確關閉
	_ = logOut.Close()
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// openLog 回傳日誌輸出；path 為空時使用 stderr。
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stderr}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
