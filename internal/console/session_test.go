// internal/console/session_test.go
//
// 本檔為 console 層的整合測試：以 strings.Reader 模擬操作員輸入、bytes.Buffer 擷取輸出，
// 驗證完整的主選單流程、錯誤訊息與迴圈在錯誤後仍繼續執行。
package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"consolebank/internal/bank"
)

// run 為測試輔助函式：以給定輸入行跑完一次工作階段並回傳輸出。
func run(t *testing.T, b *bank.Bank, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(b, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, Options{})
	if err := s.Run(); err != nil {
		t.Fatalf("Run err=%v", err)
	}
	return out.String()
}

// assertInOrder 檢查 want 依序出現在 out 中。
func assertInOrder(t *testing.T, out string, want ...string) {
	t.Helper()
	rest := out
	for _, w := range want {
		i := strings.Index(rest, w)
		if i < 0 {
			t.Fatalf("missing %q (in order) in output:\n%s", w, out)
		}
		rest = rest[i+len(w):]
	}
}

func balance(t *testing.T, b *bank.Bank, n int) decimal.Decimal {
	t.Helper()
	a, err := b.Get(n)
	if err != nil {
		t.Fatalf("Get(%d) err=%v", n, err)
	}
	return a.Balance
}

// TestSessionScenario 重現完整操作流程：開戶、超限提款、提款、計息、活期透支。
func TestSessionScenario(t *testing.T) {
	b := bank.NewBank()
	out := run(t, b,
		"1", "Alice", "1", "500",
		"3", "1001", "1200",
		"3", "1001", "200",
		"4", "1001",
		"1", "Bob", "2", "100",
		"3", "1002", "550",
		"3", "1002", "100",
		"4", "1002",
		"5", "1002",
		"6",
	)
	assertInOrder(t, out,
		"Account created successfully. Account Number: 1001",
		"Withdrawal failed: exceeds limit of Rs.1000.00",
		"Withdrew: Rs.200.00",
		"Interest of Rs.12.00 added to savings account.",
		"Account created successfully. Account Number: 1002",
		"Withdrew: Rs.550.00",
		"Withdrawal failed: exceeds overdraft limit.",
		"No interest applied to current account.",
		"Customer Name: Bob",
		"Account Number: 1002",
		"Account Type: current",
		"Account Balance: Rs.-450.00",
		"Thank you for using the banking system.",
	)
	if got := balance(t, b, 1001); !got.Equal(decimal.NewFromInt(312)) {
		t.Fatalf("alice balance=%s want=312", got)
	}
	if got := balance(t, b, 1002); !got.Equal(decimal.NewFromInt(-450)) {
		t.Fatalf("bob balance=%s want=-450", got)
	}
}

// TestSessionValidationKeepsLoopRunning 驗證各種輸入錯誤只輸出訊息，迴圈持續。
func TestSessionValidationKeepsLoopRunning(t *testing.T) {
	b := bank.NewBank()
	out := run(t, b,
		"abc",
		"9",
		"1", "Carol", "x",
		"1", "Carol", "1", "ten",
		"1", "Carol", "1", "0",
		"1", "Carol", "3", "50",
		"2", "1001",
		"2", "oops",
		"1", "Carol", "1", "50",
		"2", "1001", "-5",
		"2", "1001", "abc",
		"3", "1001", "0",
		"3", "1001", "60",
		"2", "1001", "25.5",
		"5", "1001",
		"6",
	)
	assertInOrder(t, out,
		"Please enter a valid numeric input.",
		"Invalid option. Try again.",
		"Invalid input. Please enter numeric values for type and deposit.",
		"Invalid input. Please enter numeric values for type and deposit.",
		"Initial deposit must be greater than zero.",
		"Invalid account type.",
		"Account not found.",
		"Invalid account number. Please enter a valid number.",
		"Account created successfully. Account Number: 1001",
		"Invalid deposit amount.",
		"Invalid input. Please enter a numeric value.",
		"Invalid withdrawal amount.",
		"Withdrawal failed: insufficient funds.",
		"Deposited: Rs.25.50",
		"Account Balance: Rs.75.50",
		"Thank you for using the banking system.",
	)
	if b.Len() != 1 {
		t.Fatalf("Len=%d want=1", b.Len())
	}
}

// TestSessionNotFoundSkipsAmountPrompt 驗證查無帳戶時不再詢問金額。
func TestSessionNotFoundSkipsAmountPrompt(t *testing.T) {
	out := run(t, bank.NewBank(), "3", "1001", "6")
	if strings.Contains(out, "Enter amount to withdraw") {
		t.Fatalf("amount prompt shown for missing account:\n%s", out)
	}
	assertInOrder(t, out, "Account not found.", "Thank you")
}

// TestSessionEndOfInput 驗證輸入結束（含動作途中）視同離開。
func TestSessionEndOfInput(t *testing.T) {
	b := bank.NewBank()
	var out bytes.Buffer
	s := NewSession(b, strings.NewReader("1\nDave\n1\n"), &out, Options{CurrencySymbol: "$"})
	if err := s.Run(); err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("account created from partial input")
	}
	if strings.Contains(out.String(), "Thank you") {
		t.Fatalf("farewell printed at end of input:\n%s", out.String())
	}
}

// TestSessionRecoversUnexpectedFailure 驗證動作內的 panic 被攔截，迴圈繼續到離開。
func TestSessionRecoversUnexpectedFailure(t *testing.T) {
	out := run(t, nil, "1", "Eve", "1", "100", "5", "1001", "6")
	assertInOrder(t, out,
		"An unexpected error occurred:",
		"An unexpected error occurred:",
		"Thank you for using the banking system.",
	)
}

func TestSessionCurrencySymbolAndID(t *testing.T) {
	b := bank.NewBank()
	var out bytes.Buffer
	s := NewSession(b, strings.NewReader("1\nFay\n1\n10\n2\n1001\n5\n6\n"), &out, Options{CurrencySymbol: "$"})
	if s.ID() == "" {
		t.Fatal("session id should be set")
	}
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	assertInOrder(t, out.String(), "Deposited: $5.00")
	if other := NewSession(b, strings.NewReader(""), &out, Options{}); other.ID() == s.ID() {
		t.Fatal("session ids should differ")
	}
}

// TestSessionOverlongLineIgnored 驗證超過上限的輸入行被丟棄，後續動作照常執行。
func TestSessionOverlongLineIgnored(t *testing.T) {
	b := bank.NewBank()
	out := run(t, b,
		"1", "Alice", "1", "500",
		strings.Repeat("9", 70000),
		"2", strings.Repeat("x", maxLineBytes+1),
		"5", "1001",
		"6",
	)
	assertInOrder(t, out,
		"Account Number: 1001",
		"Input too long; line ignored.",
		"Input too long; line ignored.",
		"Customer Name: Alice",
		"Account Balance: Rs.500.00",
		"Thank you for using the banking system.",
	)
}

// TestSessionOverlongLastLineWithoutNewline 驗證最後一行過長且沒有換行時，工作階段正常結束。
func TestSessionOverlongLastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(bank.NewBank(), strings.NewReader(strings.Repeat("1", 3*maxLineBytes)), &out, Options{})
	if err := s.Run(); err != nil {
		t.Fatalf("Run err=%v", err)
	}
	assertInOrder(t, out.String(), "Input too long; line ignored.")
}

// TestSessionExtremeExponentRejected 驗證極端指數的金額被視為格式錯誤，餘額不變且迴圈繼續。
func TestSessionExtremeExponentRejected(t *testing.T) {
	b := bank.NewBank()
	out := run(t, b,
		"1", "Alice", "1", "500",
		"2", "1001", "1e400000000",
		"3", "1001", "1e-400000000",
		"1", "Bob", "2", "1e400000000",
		"5", "1001",
		"6",
	)
	assertInOrder(t, out,
		"Account Number: 1001",
		"Invalid input. Please enter a numeric value.",
		"Invalid input. Please enter a numeric value.",
		"Invalid input. Please enter numeric values for type and deposit.",
		"Account Balance: Rs.500.00",
		"Thank you for using the banking system.",
	)
	if b.Len() != 1 {
		t.Fatalf("Len=%d want=1", b.Len())
	}
	if got := balance(t, b, 1001); !got.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("balance=%s want=500", got)
	}
}
