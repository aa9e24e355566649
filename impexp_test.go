package midinero

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestExportImport_RoundTrip(t *testing.T) {
	book := NewBook(NewMemStore())
	if err := book.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := book.AddIncome(Income{Date: MustParseDate("2026-08-01"), Amount: d(500), AccountID: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := book.AddExpense(Expense{Date: MustParseDate("2026-08-10"), Amount: d(200), CategoryID: 1, Source: AccountRef(1)}); err != nil {
		t.Fatal(err)
	}
	debt, err := book.AddDebt(Debt{Name: "Card", Type: CardDebt, Total: d(1000), Currency: ARS, Date: MustParseDate("2026-07-01")})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := book.AddPayment(DebtPayment{DebtID: debt.ID, Amount: d(300), Date: MustParseDate("2026-08-05")}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Export(&buf, book); err != nil {
		t.Fatal(err)
	}

	// the document is well formed and carries the version
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc["version"] != BackupVersion {
		t.Errorf("version = %v, want %q", doc["version"], BackupVersion)
	}

	restored := NewBook(NewMemStore())
	if err := Import(bytes.NewReader(buf.Bytes()), restored); err != nil {
		t.Fatal(err)
	}

	// every derived figure survives the round trip
	before, after := book.Records(), restored.Records()
	if got, want := after.AccountBalance(1).Decimal(), before.AccountBalance(1).Decimal(); !got.Equal(want) {
		t.Errorf("AccountBalance = %s, want %s", got, want)
	}
	if got, want := after.DebtBalance(debt.ID).Decimal(), before.DebtBalance(debt.ID).Decimal(); !got.Equal(want) {
		t.Errorf("DebtBalance = %s, want %s", got, want)
	}
	if got, want := len(after.Categories), len(before.Categories); got != want {
		t.Errorf("categories = %d, want %d", got, want)
	}
	if got, want := after.Rate.Current(), before.Rate.Current(); !got.Equal(want) {
		t.Errorf("rate = %s, want %s", got, want)
	}

	// imported ids stay unique against new ones
	if in, err := restored.AddIncome(Income{Date: Today(), Amount: d(1), AccountID: 1}); err != nil {
		t.Fatal(err)
	} else {
		for _, existing := range after.Incomes {
			if existing.ID == in.ID {
				t.Errorf("new id %d collides with an imported one", in.ID)
			}
		}
	}
}

func TestExportImport_EmptyBook(t *testing.T) {
	book := NewBook(NewMemStore())
	if err := book.Init(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Export(&buf, book); err != nil {
		t.Fatal(err)
	}

	// never-written collections export as arrays, not null
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range []string{"incomes", "expenses", "goals", "transfers"} {
		if doc[key] == nil {
			t.Errorf("%s exported as null, want []", key)
		}
	}

	restored := NewBook(NewMemStore())
	if err := Import(bytes.NewReader(buf.Bytes()), restored); err != nil {
		t.Fatalf("round trip of a fresh book failed: %v", err)
	}
	if got := len(restored.Categories()); got != 10 {
		t.Errorf("categories = %d, want the 10 defaults", got)
	}
	if got := len(restored.Accounts()); got != 2 {
		t.Errorf("accounts = %d, want the 2 defaults", got)
	}
}

func TestExportImport_GoalWithoutTargetDate(t *testing.T) {
	book := NewBook(NewMemStore())
	if err := book.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := book.AddGoal(Goal{Amount: d(50000), Description: "Emergency fund", Rank: 1}); err != nil {
		t.Fatal(err)
	}

	// the date-less goal survives the store write and read back
	goals := book.Goals()
	if len(goals) != 1 {
		t.Fatalf("goals after add = %d, want 1", len(goals))
	}
	if !goals[0].TargetDate.IsZero() {
		t.Errorf("TargetDate = %s, want zero", goals[0].TargetDate)
	}

	var buf bytes.Buffer
	if err := Export(&buf, book); err != nil {
		t.Fatal(err)
	}
	restored := NewBook(NewMemStore())
	if err := Import(bytes.NewReader(buf.Bytes()), restored); err != nil {
		t.Fatal(err)
	}
	goals = restored.Goals()
	if len(goals) != 1 || !goals[0].Amount.Equal(d(50000)) {
		t.Fatalf("restored goals = %+v, want the date-less goal", goals)
	}
	if !goals[0].TargetDate.IsZero() {
		t.Errorf("restored TargetDate = %s, want zero", goals[0].TargetDate)
	}
}

func TestImport_MissingRequired(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"empty object", `{}`},
		{"no incomes", `{"expenses":[],"categories":[]}`},
		{"no expenses", `{"incomes":[],"categories":[]}`},
		{"no categories", `{"incomes":[],"expenses":[]}`},
		{"not json", `not a backup`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			book := NewBook(NewMemStore())
			err := Import(strings.NewReader(tc.doc), book)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Import() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestImport_BackfillsDefaults(t *testing.T) {
	book := NewBook(NewMemStore())
	doc := `{"version":"3","incomes":[],"expenses":[],"categories":[{"id":1,"name":"Food"}]}`
	if err := Import(strings.NewReader(doc), book); err != nil {
		t.Fatal(err)
	}

	if got := len(book.Accounts()); got != 2 {
		t.Errorf("backfilled %d accounts, want the 2 defaults", got)
	}
	rate := book.Rate()
	if !rate.UseManual || !rate.Manual.Equal(DefaultRate) {
		t.Errorf("backfilled rate = %+v, want manual default", rate)
	}
	if got := len(book.Goals()); got != 0 {
		t.Errorf("goals = %d, want 0", got)
	}
}

func TestImport_LegacySingleGoal(t *testing.T) {
	book := NewBook(NewMemStore())
	doc := `{
		"incomes":[], "expenses":[], "categories":[],
		"goal": {"id":1, "amount":"50000", "targetDate":"2027-01-01"}
	}`
	if err := Import(strings.NewReader(doc), book); err != nil {
		t.Fatal(err)
	}
	goals := book.Goals()
	if len(goals) != 1 || !goals[0].Amount.Equal(d(50000)) {
		t.Errorf("goals = %+v, want the migrated legacy goal", goals)
	}
}

func TestImport_RunsMigrations(t *testing.T) {
	book := NewBook(NewMemStore())
	doc := `{
		"incomes":[], "expenses":[], "categories":[],
		"accounts":[{"id":1,"name":"Cash","initialBalance":"100"}]
	}`
	if err := Import(strings.NewReader(doc), book); err != nil {
		t.Fatal(err)
	}
	a := book.Accounts()[0]
	if a.Currency != ARS || a.Type != Cash {
		t.Errorf("imported legacy account = %+v, want migrated to ARS cash", a)
	}
}
