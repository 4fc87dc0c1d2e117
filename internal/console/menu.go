// internal/console/menu.go
//
// 本檔負責選單代碼與動作的綁定，以及各動作的流程。

package console

import (
	"errors"

	"consolebank/internal/bank"
	"consolebank/internal/logger"
)

const exitOption = 6

type route struct {
	name string
	run  func()
}

// routes 建立選單代碼 → 動作的對照表；6（離開）由 Run 自行處理。
func (s *Session) routes() map[int]route {
	return map[int]route{
		1: {"create", s.createAccount},
		2: {"deposit", s.deposit},
		3: {"withdraw", s.withdraw},
		4: {"interest", s.accrueInterest},
		5: {"details", s.viewDetails},
	}
}

func (s *Session) printMenu() {
	s.println("")
	s.println("=== Banking System Menu ===")
	s.println("1. Create Account")
	s.println("2. Deposit")
	s.println("3. Withdraw")
	s.println("4. Calculate Interest")
	s.println("5. View Account Details")
	s.println("6. Exit")
}

// createAccount 依序讀取姓名、類型、初始存款，三者皆讀完後才交給 bank 驗證。
func (s *Session) createAccount() {
	name, ok := s.readLine("Enter customer name: ")
	if !ok {
		return
	}
	rawKind, ok := s.readLine("Enter account type (1: Savings, 2: Current): ")
	if !ok {
		return
	}
	kind, err := parseKind(rawKind)
	if err != nil {
		s.println("Invalid input. Please enter numeric values for type and deposit.")
		return
	}
	rawDeposit, ok := s.readLine("Enter initial deposit: ")
	if !ok {
		return
	}
	deposit, err := parseAmount(rawDeposit)
	if err != nil {
		s.println("Invalid input. Please enter numeric values for type and deposit.")
		return
	}

	a, err := s.Bank.Create(name, kind, deposit)
	if err != nil {
		s.writeErr(err)
		return
	}
	logger.Info("account created", logger.Fields{
		"session":  s.id,
		"account":  a.Number,
		"kind":     a.Kind.String(),
		"accounts": s.Bank.Len(),
	})
	s.printf("Account created successfully. Account Number: %d\n", a.Number)
}

func (s *Session) deposit() {
	n, ok := s.lookup()
	if !ok {
		return
	}
	amt, ok := s.readAmount("Enter amount to deposit: ")
	if !ok {
		return
	}
	if _, err := s.Bank.Deposit(n, amt); err != nil {
		if errors.Is(err, bank.ErrBadAmount) {
			s.println("Invalid deposit amount.")
			return
		}
		s.writeErr(err)
		return
	}
	s.printf("Deposited: %s\n", s.money(amt))
}

func (s *Session) withdraw() {
	n, ok := s.lookup()
	if !ok {
		return
	}
	amt, ok := s.readAmount("Enter amount to withdraw: ")
	if !ok {
		return
	}
	if _, err := s.Bank.Withdraw(n, amt); err != nil {
		if errors.Is(err, bank.ErrBadAmount) {
			s.println("Invalid withdrawal amount.")
			return
		}
		s.writeErr(err)
		return
	}
	s.printf("Withdrew: %s\n", s.money(amt))
}

func (s *Session) accrueInterest() {
	n, ok := s.lookup()
	if !ok {
		return
	}
	_, interest, err := s.Bank.AccrueInterest(n)
	if err != nil {
		s.writeErr(err)
		return
	}
	s.printf("Interest of %s added to savings account.\n", s.money(interest))
}

func (s *Session) viewDetails() {
	n, ok := s.lookup()
	if !ok {
		return
	}
	a, err := s.Bank.Get(n)
	if err != nil {
		s.writeErr(err)
		return
	}
	d := a.Details()
	s.printf("Customer Name: %s\n", d.Name)
	s.printf("Account Number: %d\n", d.Number)
	s.printf("Account Type: %s\n", d.Kind)
	s.printf("Account Balance: %s\n", s.money(d.Balance))
}

// lookup 讀取帳號並確認帳戶存在；查無帳戶時在要求金額前即中止。
func (s *Session) lookup() (int, bool) {
	raw, ok := s.readLine("Enter account number: ")
	if !ok {
		return 0, false
	}
	n, err := parseAccountNumber(raw)
	if err != nil {
		s.println("Invalid account number. Please enter a valid number.")
		return 0, false
	}
	if _, err := s.Bank.Get(n); err != nil {
		s.writeErr(err)
		return 0, false
	}
	return n, true
}
