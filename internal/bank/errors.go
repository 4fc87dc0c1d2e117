// internal/bank/errors.go
//
// 本檔集中定義領域錯誤（domain errors）。
// 這些錯誤屬於驗證失敗，由 console 層轉成提示訊息後繼續主選單迴圈，不會中止程式。

package bank

import "errors"

var (
	// ErrNotFound 代表帳戶不存在。
	ErrNotFound = errors.New("account not found")

	// ErrBadAmount 代表存提款金額非法（<= 0）。
	ErrBadAmount = errors.New("amount must be > 0")

	// ErrBadDeposit 代表開戶初始存款 <= 0。
	ErrBadDeposit = errors.New("initial deposit must be > 0")

	// ErrUnknownKind 代表帳戶類型不是 Savings 或 Current。
	ErrUnknownKind = errors.New("unknown account type")

	// ErrExceedsLimit 代表儲蓄帳戶單筆提款超過上限。
	ErrExceedsLimit = errors.New("withdrawal exceeds limit")

	// ErrInsufficient 代表儲蓄帳戶餘額不足。
	ErrInsufficient = errors.New("insufficient funds")

	// ErrExceedsOverdraft 代表活期帳戶提款後會低於透支額度。
	ErrExceedsOverdraft = errors.New("withdrawal exceeds overdraft limit")

	// ErrNoInterest 代表該帳戶類型不計息；餘額不變。
	ErrNoInterest = errors.New("no interest applies to this account type")
)
