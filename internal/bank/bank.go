// internal/bank/bank.go

// Package bank 定義核心商業邏輯：開戶、存款、提款、計息與查詢。
// Bank 獨占所有帳戶實體；對外只回傳值拷貝。
package bank

import (
	"sync"

	"github.com/shopspring/decimal"
)

// FirstAccountNumber 為第一個配發的帳號。
const FirstAccountNumber = 1001

// Bank 為帳戶註冊表 (Account Registry)：
// - mu：序列化所有讀寫。
// - next：下一個可用帳號，只在開戶成功時遞增，永不重用。
// - accts：帳號 → *Account。
type Bank struct {
	mu    sync.Mutex
	next  int
	accts map[int]*Account
}

// NewBank 建立空白銀行實例，帳號自 FirstAccountNumber 起算。
func NewBank() *Bank {
	return &Bank{next: FirstAccountNumber, accts: make(map[int]*Account)}
}

// Create 以名稱、類型與初始存款開戶。
// 初始存款 <= 0 回傳 ErrBadDeposit；類型未知回傳 ErrUnknownKind；兩者皆不消耗帳號。
func (b *Bank) Create(name string, kind Kind, deposit decimal.Decimal) (*Account, error) {
	if !deposit.IsPositive() {
		return nil, ErrBadDeposit
	}
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.next
	b.next++
	a := &Account{Name: name, Number: n, Kind: kind, Balance: deposit}
	b.accts[n] = a
	cp := *a
	return &cp, nil
}

// Get 依帳號取得帳戶快照；若不存在回傳 ErrNotFound。
func (b *Bank) Get(number int) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[number]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// Len 回傳目前帳戶數。
func (b *Bank) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.accts)
}

// Deposit 存款；帳戶不存在回傳 ErrNotFound。
func (b *Bank) Deposit(number int, amt decimal.Decimal) (*Account, error) {
	return b.update(number, func(a *Account) error { return a.Deposit(amt) })
}

// Withdraw 依帳戶政策提款；失敗時餘額不變。
func (b *Bank) Withdraw(number int, amt decimal.Decimal) (*Account, error) {
	return b.update(number, func(a *Account) error { return a.Withdraw(amt) })
}

// AccrueInterest 對帳戶計息一次，回傳更新後快照與入帳利息。
// 活期帳戶回傳 ErrNoInterest，快照仍會回傳。
func (b *Bank) AccrueInterest(number int) (*Account, decimal.Decimal, error) {
	interest := decimal.Zero
	a, err := b.update(number, func(a *Account) error {
		var err error
		interest, err = a.AccrueInterest()
		return err
	})
	return a, interest, err
}

// update 在臨界區內查找帳戶並套用 fn。
// 找不到時回傳 nil, ErrNotFound；否則一律回傳套用後的拷貝與 fn 的錯誤。
func (b *Bank) update(number int, fn func(*Account) error) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[number]
	if !ok {
		return nil, ErrNotFound
	}
	err := fn(a)
	cp := *a
	return &cp, err
}
