package midinero

// Schema migrations. Older data sets predate some fields (currencies,
// exclusion flags, two-sided transfers); instead of ad hoc presence
// checks scattered through the engine, every collection is upgraded
// once at load to the current schema and written back.

// upgradeAccounts backfills the currency field (ARS) on legacy
// accounts. The excluded flag's zero value is already the legacy
// meaning (included).
func upgradeAccounts(accounts []Account) (changed bool) {
	for i := range accounts {
		if accounts[i].Currency == "" {
			accounts[i].Currency = ARS
			changed = true
		}
		if accounts[i].Type == "" {
			accounts[i].Type = Cash
			changed = true
		}
	}
	return changed
}

func upgradeDestinations(destinations []Destination) (changed bool) {
	for i := range destinations {
		if destinations[i].Currency == "" {
			destinations[i].Currency = ARS
			changed = true
		}
	}
	return changed
}

func upgradeDebts(debts []Debt) (changed bool) {
	for i := range debts {
		if debts[i].Currency == "" {
			debts[i].Currency = ARS
			changed = true
		}
		if debts[i].Type == "" {
			debts[i].Type = OtherDebt
			changed = true
		}
	}
	return changed
}

// upgradeTransfers splits legacy single-sided transfers (bare account
// ids, no kind discriminator) into explicit account refs.
func upgradeTransfers(transfers []Transfer) (changed bool) {
	for i := range transfers {
		if transfers[i].From.ID != 0 && transfers[i].From.Kind == "" {
			transfers[i].From.Kind = KindAccount
			changed = true
		}
		if transfers[i].To.ID != 0 && transfers[i].To.Kind == "" {
			transfers[i].To.Kind = KindAccount
			changed = true
		}
	}
	return changed
}

// upgradeExpenses gives legacy expenses (account id only, no source
// kind) an account source.
func upgradeExpenses(expenses []Expense) (changed bool) {
	for i := range expenses {
		if expenses[i].Source.ID != 0 && expenses[i].Source.Kind == "" {
			expenses[i].Source.Kind = KindAccount
			changed = true
		}
	}
	return changed
}

// Migrate upgrades every persisted collection to the current schema.
// It is run once at startup and once after an import.
func (b *Book) Migrate() error {
	if accounts := b.Accounts(); upgradeAccounts(accounts) {
		if err := b.SetAccounts(accounts); err != nil {
			return err
		}
	}
	if destinations := b.Destinations(); upgradeDestinations(destinations) {
		if err := b.SetDestinations(destinations); err != nil {
			return err
		}
	}
	if debts := b.Debts(); upgradeDebts(debts) {
		if err := b.SetDebts(debts); err != nil {
			return err
		}
	}
	if transfers := b.Transfers(); upgradeTransfers(transfers) {
		if err := b.SetTransfers(transfers); err != nil {
			return err
		}
	}
	if expenses := b.Expenses(); upgradeExpenses(expenses) {
		if err := b.SetExpenses(expenses); err != nil {
			return err
		}
	}
	return nil
}
