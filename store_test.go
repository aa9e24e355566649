package midinero

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirStore(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenDirStore(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatal(err)
	}

	// missing key reads as empty, not as an error
	data, err := store.Read(IncomesKey)
	if err != nil || data != nil {
		t.Errorf("Read(missing) = %v, %v, want nil, nil", data, err)
	}

	if err := store.Write(IncomesKey, []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	data, err = store.Read(IncomesKey)
	if err != nil || string(data) != `[]` {
		t.Errorf("Read() = %q, %v", data, err)
	}

	// one file per collection
	if _, err := os.Stat(filepath.Join(dir, "data", IncomesKey+".json")); err != nil {
		t.Errorf("collection file missing: %v", err)
	}

	// a write replaces the previous content atomically
	if err := store.Write(IncomesKey, []byte(`[{"id":1}]`)); err != nil {
		t.Fatal(err)
	}
	data, _ = store.Read(IncomesKey)
	if string(data) != `[{"id":1}]` {
		t.Errorf("Read() after rewrite = %q", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "data", IncomesKey+".json.tmp")); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()
	if data, err := store.Read("x"); err != nil || data != nil {
		t.Errorf("Read(missing) = %v, %v, want nil, nil", data, err)
	}
	payload := []byte(`[1,2]`)
	if err := store.Write("x", payload); err != nil {
		t.Fatal(err)
	}
	payload[0] = '{' // the store must keep its own copy
	if data, _ := store.Read("x"); string(data) != `[1,2]` {
		t.Errorf("Read() = %q, want stored copy", data)
	}
}

func TestBookOnDirStore(t *testing.T) {
	store, err := OpenDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	book := NewBook(store)
	if err := book.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := book.AddIncome(Income{Date: Today(), Amount: d(500), AccountID: 1}); err != nil {
		t.Fatal(err)
	}

	// a new book on the same folder sees the data
	reopened := NewBook(store)
	if got := len(reopened.Incomes()); got != 1 {
		t.Errorf("income count after reopen = %d, want 1", got)
	}
}
