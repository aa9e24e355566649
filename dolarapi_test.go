package midinero

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const quoteResponse = `{
	"moneda": "USD",
	"casa": "oficial",
	"nombre": "Oficial",
	"compra": 1030.5,
	"venta": 1070.5,
	"fechaActualizacion": "2026-08-30T20:00:00.000Z"
}`

// serveQuote points QuoteURL at a local server for the duration of the
// test.
func serveQuote(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	old := QuoteURL
	QuoteURL = server.URL
	t.Cleanup(func() {
		QuoteURL = old
		server.Close()
	})
}

func TestFetchQuote(t *testing.T) {
	serveQuote(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(quoteResponse))
	})

	got, err := FetchQuote(http.DefaultClient)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "1070.5" {
		t.Errorf("FetchQuote() = %s, want the venta field 1070.5", got)
	}
}

func TestFetchQuote_Errors(t *testing.T) {
	testCases := []struct {
		name string
		body string
		code int
	}{
		{"server error", "", http.StatusInternalServerError},
		{"not json", "oops", http.StatusOK},
		{"missing field", `{"compra": 1030.5}`, http.StatusOK},
		{"non positive", `{"venta": 0}`, http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			serveQuote(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				w.Write([]byte(tc.body))
			})
			if _, err := FetchQuote(http.DefaultClient); err == nil {
				t.Error("FetchQuote() expected an error")
			}
		})
	}
}

func TestRefreshRate(t *testing.T) {
	serveQuote(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(quoteResponse))
	})

	book := NewBook(NewMemStore())
	if err := book.Init(); err != nil {
		t.Fatal(err)
	}

	value, err := book.RefreshRate(http.DefaultClient)
	if err != nil {
		t.Fatal(err)
	}
	if value.String() != "1070.5" {
		t.Errorf("RefreshRate() = %s, want 1070.5", value)
	}
	state := book.Rate()
	if state.UseManual {
		t.Error("fetched rate is not authoritative")
	}
	if !state.Current().Equal(value) {
		t.Errorf("Current() = %s, want %s", state.Current(), value)
	}
	if state.FetchedAt.IsZero() {
		t.Error("FetchedAt not recorded")
	}
}

func TestRefreshRate_FailureKeepsState(t *testing.T) {
	serveQuote(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	book := NewBook(NewMemStore())
	if err := book.Init(); err != nil {
		t.Fatal(err)
	}
	before := book.Rate()

	if _, err := book.RefreshRate(http.DefaultClient); err == nil {
		t.Fatal("RefreshRate() expected an error")
	}
	after := book.Rate()
	if !after.Current().Equal(before.Current()) || after.UseManual != before.UseManual || !after.FetchedAt.Equal(before.FetchedAt) {
		t.Errorf("rate state changed on failure: %+v -> %+v", before, after)
	}
}
