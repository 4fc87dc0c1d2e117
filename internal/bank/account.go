// Package bank 定義核心領域模型與業務規則。
// 本檔定義 Account 與兩種帳戶政策（Savings / Current），不含任何輸入輸出細節。

package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind 為封閉的帳戶類型集合，數值即為操作員輸入的類型代碼。
type Kind int

const (
	Savings Kind = 1
	Current Kind = 2
)

// 帳戶政策常數。
var (
	SavingsInterestRate    = decimal.RequireFromString("0.04")
	SavingsWithdrawalLimit = decimal.RequireFromString("1000.00")
	CurrentOverdraftLimit  = decimal.RequireFromString("500.00")
)

// Valid 回報 k 是否為已知類型。
func (k Kind) Valid() bool {
	return k == Savings || k == Current
}

func (k Kind) String() string {
	switch k {
	case Savings:
		return "savings"
	case Current:
		return "current"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Account represents a bank account.
type Account struct {
	Name    string          `json:"name"`
	Number  int             `json:"number"`
	Kind    Kind            `json:"kind"`
	Balance decimal.Decimal `json:"balance"`
}

// Details 為帳戶的唯讀摘要。
type Details struct {
	Name    string
	Number  int
	Kind    Kind
	Balance decimal.Decimal
}

// Deposit 存款：金額需 > 0，否則回傳 ErrBadAmount 且餘額不變。
func (a *Account) Deposit(amt decimal.Decimal) error {
	if !amt.IsPositive() {
		return ErrBadAmount
	}
	a.Balance = a.Balance.Add(amt)
	return nil
}

// Withdraw 依帳戶類型套用提款規則，第一個符合的條件決定結果；失敗時餘額不變。
//
//	Savings: amt <= 0 → ErrBadAmount；amt > 上限 → ErrExceedsLimit；amt > 餘額 → ErrInsufficient
//	Current: amt <= 0 → ErrBadAmount；餘額 + 透支額度 < amt → ErrExceedsOverdraft
func (a *Account) Withdraw(amt decimal.Decimal) error {
	if !amt.IsPositive() {
		return ErrBadAmount
	}
	switch a.Kind {
	case Savings:
		if amt.GreaterThan(SavingsWithdrawalLimit) {
			return ErrExceedsLimit
		}
		if amt.GreaterThan(a.Balance) {
			return ErrInsufficient
		}
	case Current:
		// 邊界包含：餘額可剛好到 -CurrentOverdraftLimit。
		if a.Balance.Add(CurrentOverdraftLimit).LessThan(amt) {
			return ErrExceedsOverdraft
		}
	default:
		return ErrUnknownKind
	}
	a.Balance = a.Balance.Sub(amt)
	return nil
}

// AccrueInterest 手動計息一次，回傳入帳的利息。
// Savings 以計息前餘額乘上 SavingsInterestRate；Current 回傳 ErrNoInterest。
func (a *Account) AccrueInterest() (decimal.Decimal, error) {
	switch a.Kind {
	case Savings:
		interest := a.Balance.Mul(SavingsInterestRate)
		a.Balance = a.Balance.Add(interest)
		return interest, nil
	case Current:
		return decimal.Zero, ErrNoInterest
	default:
		return decimal.Zero, ErrUnknownKind
	}
}

// Details 回傳帳戶的唯讀摘要，不改變狀態。
func (a *Account) Details() Details {
	return Details{Name: a.Name, Number: a.Number, Kind: a.Kind, Balance: a.Balance}
}

// GetBalance 回傳目前餘額。
func (a *Account) GetBalance() decimal.Decimal {
	return a.Balance
}
