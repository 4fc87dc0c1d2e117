// internal/console/response.go
//
// 本檔統一主控台輸出與錯誤訊息格式。

package console

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"consolebank/internal/bank"
)

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// money 以兩位小數加上貨幣符號輸出金額，例如 Rs.312.00。
func (s *Session) money(d decimal.Decimal) string {
	return s.symbol + d.StringFixed(2)
}

// writeErr 將 bank 層錯誤轉為操作員訊息。
func (s *Session) writeErr(err error) {
	s.println(s.message(err))
}

func (s *Session) message(err error) string {
	switch {
	case errors.Is(err, bank.ErrNotFound):
		return "Account not found."
	case errors.Is(err, bank.ErrBadAmount):
		return "Invalid amount."
	case errors.Is(err, bank.ErrBadDeposit):
		return "Initial deposit must be greater than zero."
	case errors.Is(err, bank.ErrUnknownKind):
		return "Invalid account type."
	case errors.Is(err, bank.ErrExceedsLimit):
		return "Withdrawal failed: exceeds limit of " + s.money(bank.SavingsWithdrawalLimit)
	case errors.Is(err, bank.ErrInsufficient):
		return "Withdrawal failed: insufficient funds."
	case errors.Is(err, bank.ErrExceedsOverdraft):
		return "Withdrawal failed: exceeds overdraft limit."
	case errors.Is(err, bank.ErrNoInterest):
		return "No interest applied to current account."
	default:
		return "An unexpected error occurred: " + err.Error()
	}
}
