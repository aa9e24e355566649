package midinero

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ID identifies a record. IDs are clock-derived (UnixMilli at creation
// time) and unique within a data set; 0 means "no reference".
type ID int64

// RefKind discriminates the two kinds of money-holding entities a
// record can point at.
type RefKind string

const (
	KindAccount     RefKind = "account"
	KindDestination RefKind = "destination"
)

// Ref points at an account or a savings destination. The zero Ref is
// "no reference".
type Ref struct {
	Kind RefKind `json:"kind"`
	ID   ID      `json:"id"`
}

func (r Ref) IsZero() bool { return r.ID == 0 }

func (r Ref) String() string {
	if r.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// AccountRef returns a Ref to an account.
func AccountRef(id ID) Ref { return Ref{Kind: KindAccount, ID: id} }

// DestinationRef returns a Ref to a savings destination.
func DestinationRef(id ID) Ref { return Ref{Kind: KindDestination, ID: id} }

// AccountType classifies an account.
type AccountType string

const (
	Cash   AccountType = "cash"
	Bank   AccountType = "bank"
	Wallet AccountType = "wallet"
)

// Account is a money-holding bucket with an initial balance and a
// currency. Its balance is always derived, never stored.
type Account struct {
	ID             ID              `json:"id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	Currency       string          `json:"currency"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Excluded       bool            `json:"excluded"` // excluded from the available balance
}

func (a Account) Validate() error {
	if a.Name == "" {
		return errors.New("account name is missing")
	}
	if a.Currency != ARS && a.Currency != USD {
		return fmt.Errorf("unsupported currency %q", a.Currency)
	}
	switch a.Type {
	case Cash, Bank, Wallet:
	default:
		return fmt.Errorf("unknown account type %q", a.Type)
	}
	return nil
}

func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("currency", a.Currency)
	w.Append("initialBalance", a.InitialBalance)
	w.Optional("excluded", a.Excluded)
	return w.MarshalJSON()
}

// Income credits an account, optionally earmarked for a savings
// destination.
type Income struct {
	ID            ID              `json:"id"`
	Date          Date            `json:"date"`
	Amount        decimal.Decimal `json:"amount"` // in the account's currency
	AccountID     ID              `json:"accountId"`
	DestinationID ID              `json:"destinationId,omitempty"`
	Description   string          `json:"description,omitempty"`
}

func (i Income) Validate() error {
	if i.Amount.IsNegative() {
		return errors.New("income amount must not be negative")
	}
	if i.Date.IsZero() {
		return errors.New("income date is missing")
	}
	return nil
}

func (i Income) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("date", i.Date)
	w.Append("amount", i.Amount)
	w.Append("accountId", i.AccountID)
	w.Optional("destinationId", i.DestinationID)
	w.Optional("description", i.Description)
	return w.MarshalJSON()
}

// Expense debits an account or a destination.
type Expense struct {
	ID          ID              `json:"id"`
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  ID              `json:"categoryId"`
	Source      Ref             `json:"source"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Recurring   bool            `json:"recurring,omitempty"`
	Frequency   Frequency       `json:"frequency,omitempty"`
}

func (e Expense) Validate() error {
	if e.Amount.IsNegative() {
		return errors.New("expense amount must not be negative")
	}
	if e.Date.IsZero() {
		return errors.New("expense date is missing")
	}
	if e.Recurring {
		switch e.Frequency {
		case Weekly, Monthly, Yearly:
		default:
			return fmt.Errorf("recurring expense needs a frequency, got %q", e.Frequency)
		}
	}
	return nil
}

func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("amount", e.Amount)
	w.Append("categoryId", e.CategoryID)
	w.Append("source", e.Source)
	w.Optional("description", e.Description)
	w.Optional("tags", e.Tags)
	w.Optional("recurring", e.Recurring)
	w.Optional("frequency", e.Frequency)
	return w.MarshalJSON()
}

// Transfer moves money between two accounts/destinations. For
// cross-currency transfers ToAmount carries the credited amount in the
// destination's currency; when zero the origin Amount is credited.
type Transfer struct {
	ID          ID              `json:"id"`
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	From        Ref             `json:"from"`
	To          Ref             `json:"to"`
	ToAmount    decimal.Decimal `json:"toAmount,omitempty"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

// Credited returns the amount received on the destination side.
func (t Transfer) Credited() decimal.Decimal {
	if t.ToAmount.IsZero() {
		return t.Amount
	}
	return t.ToAmount
}

func (t Transfer) Validate() error {
	if t.Amount.IsNegative() || t.ToAmount.IsNegative() {
		return errors.New("transfer amount must not be negative")
	}
	if t.Date.IsZero() {
		return errors.New("transfer date is missing")
	}
	if t.From.IsZero() || t.To.IsZero() {
		return errors.New("transfer needs both sides")
	}
	if t.From == t.To {
		return errors.New("transfer origin and destination must differ")
	}
	return nil
}

func (t Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("amount", t.Amount)
	w.Append("from", t.From)
	w.Append("to", t.To)
	if !t.ToAmount.IsZero() {
		w.Append("toAmount", t.ToAmount)
	}
	w.Optional("description", t.Description)
	w.Optional("tags", t.Tags)
	return w.MarshalJSON()
}

// Category names a spending category.
type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Budget is a monthly monetary limit for one category. At most one
// budget exists per category.
type Budget struct {
	ID         ID              `json:"id"`
	CategoryID ID              `json:"categoryId"`
	Limit      decimal.Decimal `json:"limit"`
}

func (b Budget) Validate() error {
	if b.CategoryID == 0 {
		return errors.New("budget category is missing")
	}
	if b.Limit.IsNegative() {
		return errors.New("budget limit must not be negative")
	}
	return nil
}

// ReductionTarget is a percentage cut goal for one category's monthly
// spend, relative to the nearest earlier month with data. At most one
// target exists per category.
type ReductionTarget struct {
	ID         ID              `json:"id"`
	CategoryID ID              `json:"categoryId"`
	Percent    decimal.Decimal `json:"percent"`
	StartMonth string          `json:"startMonth"` // "YYYY-MM"
}

func (r ReductionTarget) Validate() error {
	if r.CategoryID == 0 {
		return errors.New("reduction target category is missing")
	}
	if r.Percent.IsNegative() || r.Percent.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("reduction percent must be in [0,100]")
	}
	if _, err := ParseMonth(r.StartMonth); err != nil {
		return err
	}
	return nil
}

// Goal is a savings goal. The goal with the lowest rank is the primary
// one shown on the dashboard.
type Goal struct {
	ID          ID              `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	TargetDate  Date            `json:"targetDate"`
	Description string          `json:"description,omitempty"`
	Rank        int             `json:"rank"`
}

func (g Goal) Validate() error {
	if g.Amount.IsNegative() {
		return errors.New("goal amount must not be negative")
	}
	return nil
}

func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("amount", g.Amount)
	if !g.TargetDate.IsZero() {
		w.Append("targetDate", g.TargetDate)
	}
	w.Optional("description", g.Description)
	w.Append("rank", g.Rank)
	return w.MarshalJSON()
}

// Destination is a virtual, account-like savings bucket. It has no
// initial balance: it is fed only by incomes and transfers.
type Destination struct {
	ID          ID              `json:"id"`
	Name        string          `json:"name"`
	Icon        string          `json:"icon,omitempty"`
	Target      decimal.Decimal `json:"target,omitempty"`
	Currency    string          `json:"currency"`
	Excluded    bool            `json:"excluded"`
	Description string          `json:"description,omitempty"`
}

func (d Destination) Validate() error {
	if d.Name == "" {
		return errors.New("destination name is missing")
	}
	if d.Currency != ARS && d.Currency != USD {
		return fmt.Errorf("unsupported currency %q", d.Currency)
	}
	if d.Target.IsNegative() {
		return errors.New("destination target must not be negative")
	}
	return nil
}

func (d Destination) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Append("name", d.Name)
	w.Optional("icon", d.Icon)
	if !d.Target.IsZero() {
		w.Append("target", d.Target)
	}
	w.Append("currency", d.Currency)
	w.Optional("excluded", d.Excluded)
	w.Optional("description", d.Description)
	return w.MarshalJSON()
}

// DebtType classifies a debt.
type DebtType string

const (
	CardDebt     DebtType = "card"
	LoanDebt     DebtType = "loan"
	PersonalDebt DebtType = "personal"
	OtherDebt    DebtType = "other"
)

// Debt is an amount owed. Its outstanding balance is the total minus
// the sum of its payments.
type Debt struct {
	ID          ID              `json:"id"`
	Name        string          `json:"name"`
	Type        DebtType        `json:"type"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
	Date        Date            `json:"date"`
	DueDate     Date            `json:"dueDate,omitempty"`
	Description string          `json:"description,omitempty"`
}

func (d Debt) Validate() error {
	if d.Name == "" {
		return errors.New("debt name is missing")
	}
	if d.Total.IsNegative() {
		return errors.New("debt total must not be negative")
	}
	if d.Date.IsZero() {
		return errors.New("debt date is missing")
	}
	if d.Currency != ARS && d.Currency != USD {
		return fmt.Errorf("unsupported currency %q", d.Currency)
	}
	switch d.Type {
	case CardDebt, LoanDebt, PersonalDebt, OtherDebt:
	default:
		return fmt.Errorf("unknown debt type %q", d.Type)
	}
	return nil
}

func (d Debt) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Append("name", d.Name)
	w.Append("type", d.Type)
	w.Append("total", d.Total)
	w.Append("currency", d.Currency)
	w.Append("date", d.Date)
	if !d.DueDate.IsZero() {
		w.Append("dueDate", d.DueDate)
	}
	w.Optional("description", d.Description)
	return w.MarshalJSON()
}

// DebtPayment records a payment against a debt. When AccountID is set
// a mirrored expense is created as an audit trail in the expense
// ledger; the payment bookkeeping itself stays separate.
type DebtPayment struct {
	ID          ID              `json:"id"`
	DebtID      ID              `json:"debtId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	AccountID   ID              `json:"accountId,omitempty"`
	Description string          `json:"description,omitempty"`
}

func (p DebtPayment) Validate() error {
	if p.DebtID == 0 {
		return errors.New("payment debt is missing")
	}
	if p.Amount.IsNegative() {
		return errors.New("payment amount must not be negative")
	}
	if p.Date.IsZero() {
		return errors.New("payment date is missing")
	}
	return nil
}

func (p DebtPayment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("debtId", p.DebtID)
	w.Append("amount", p.Amount)
	w.Append("date", p.Date)
	w.Optional("accountId", p.AccountID)
	w.Optional("description", p.Description)
	return w.MarshalJSON()
}
