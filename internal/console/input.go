// internal/console/input.go
//
// 輸入解析：每個函式回傳 (值, error)，由呼叫端決定輸出哪個提示訊息。

package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"consolebank/internal/bank"
)

var errNotNumeric = errors.New("not a valid number")

// 金額的指數與絕對值上限；超出者視同格式錯誤。
const maxAmountScale = 15

var maxAmount = decimal.New(1, maxAmountScale)

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotNumeric, s)
	}
	return n, nil
}

func parseChoice(s string) (int, error) { return parseInt(s) }

func parseAccountNumber(s string) (int, error) { return parseInt(s) }

// parseKind 只檢查格式；類型是否已知由 bank.Create 判斷。
func parseKind(s string) (bank.Kind, error) {
	n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	return bank.Kind(n), nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errNotNumeric, s)
	}
	if e := d.Exponent(); e > maxAmountScale || e < -maxAmountScale || d.Abs().GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q out of range", errNotNumeric, s)
	}
	return d, nil
}

// readAmount 讀取並解析金額；格式錯誤時輸出提示並回傳 false。
func (s *Session) readAmount(prompt string) (decimal.Decimal, bool) {
	raw, ok := s.readLine(prompt)
	if !ok {
		return decimal.Zero, false
	}
	amt, err := parseAmount(raw)
	if err != nil {
		s.println("Invalid input. Please enter a numeric value.")
		return decimal.Zero, false
	}
	return amt, true
}
