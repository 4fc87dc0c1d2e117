// internal/console/session.go
//
// Package console 為主控台驅動層：讀取操作員選擇、蒐集參數、呼叫 bank 層並輸出結果。
// 每個動作只負責：
//  1. 讀取並解析輸入
//  2. 呼叫 bank 層執行業務規則
//  3. 將結果或錯誤轉成訊息輸出
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"consolebank/internal/bank"
	"consolebank/internal/logger"
)

// maxLineBytes 為單行輸入上限；超過的整行會被丟棄並提示。
const maxLineBytes = 64 * 1024

// Options 為 Session 的可調整項目。
type Options struct {
	CurrencySymbol string
}

// Session 為一次主控台工作階段：
// - Bank：注入的帳戶註冊表，生命週期等同 Session。
// - in / out：操作員輸入與輸出。
// - id：工作階段識別碼，只出現在診斷日誌。
type Session struct {
	Bank   *bank.Bank
	in     *bufio.Reader
	out    io.Writer
	symbol string
	id     string
	eof    bool
	err    error
}

// NewSession 建立新的主控台工作階段。
func NewSession(b *bank.Bank, in io.Reader, out io.Writer, opts Options) *Session {
	symbol := opts.CurrencySymbol
	if symbol == "" {
		symbol = "Rs."
	}
	return &Session{
		Bank:   b,
		in:     bufio.NewReader(in),
		out:    out,
		symbol: symbol,
		id:     uuid.NewString(),
	}
}

// ID 回傳工作階段識別碼。
func (s *Session) ID() string { return s.id }

// Run 執行主選單迴圈，直到操作員選擇離開或輸入結束。
// 驗證失敗與非預期錯誤都只輸出訊息，迴圈繼續。
func (s *Session) Run() error {
	logger.Info("console session started", logger.Fields{"session": s.id})
	routes := s.routes()
	for {
		s.printMenu()
		line, ok := s.readLine("Select option: ")
		if !ok {
			if s.eof {
				break
			}
			continue
		}
		choice, err := parseChoice(line)
		if err != nil {
			s.println("Please enter a valid numeric input.")
			continue
		}
		if choice == exitOption {
			s.println("Thank you for using the banking system.")
			logger.Info("console session ended", logger.Fields{"session": s.id})
			return nil
		}
		r, ok := routes[choice]
		if !ok {
			s.println("Invalid option. Try again.")
			continue
		}
		s.dispatch(r)
	}
	if s.err != nil {
		logger.Error("console input failed", s.err, logger.Fields{"session": s.id})
		return fmt.Errorf("read input: %w", s.err)
	}
	logger.Info("console session ended at end of input", logger.Fields{"session": s.id})
	return nil
}

// dispatch 執行單一動作；動作內的 panic 會被攔截並回報，不中止迴圈。
func (s *Session) dispatch(r route) {
	defer func() {
		if v := recover(); v != nil {
			err := fmt.Errorf("%v", v)
			logger.Error("console action panicked", err, logger.Fields{"session": s.id, "action": r.name})
			s.printf("An unexpected error occurred: %v\n", err)
		}
	}()
	logger.Debug("console action", logger.Fields{"session": s.id, "action": r.name})
	r.run()
}

// readLine 輸出提示並讀取一行。
// 輸入結束或讀取失敗時設定 s.eof 並回傳 false；過長的行輸出提示後回傳 false，迴圈繼續。
func (s *Session) readLine(prompt string) (string, bool) {
	if s.eof {
		return "", false
	}
	fmt.Fprint(s.out, prompt)
	line, tooLong, err := s.readRaw()
	if err != nil {
		s.eof = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		fmt.Fprintln(s.out)
		return "", false
	}
	if tooLong {
		logger.Debug("console input line too long", logger.Fields{"session": s.id, "limit": maxLineBytes})
		s.println("Input too long; line ignored.")
		return "", false
	}
	return strings.TrimSpace(line), true
}

// readRaw 讀取到換行或輸入結束為止。超過 maxLineBytes 的行只消耗、不保留。
// 最後一行沒有換行時仍視為一行；完全沒有資料才回傳 io.EOF。
func (s *Session) readRaw() (string, bool, error) {
	var buf []byte
	read, tooLong := false, false
	for {
		chunk, err := s.in.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
			if !tooLong && len(buf)+len(chunk) > maxLineBytes {
				tooLong, buf = true, nil
			}
			if !tooLong {
				buf = append(buf, chunk...)
			}
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && read:
			return string(buf), tooLong, nil
		case err != nil:
			return "", false, err
		}
		return string(buf), tooLong, nil
	}
}
