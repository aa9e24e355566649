package midinero

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// QuoteURL is the remote ARS/USD quote endpoint. The consumed field is
// the sell ("venta") price of the official dollar.
var QuoteURL = "https://dolarapi.com/v1/dolares/oficial"

/*
	{
	    "moneda": "USD",
	    "casa": "oficial",
	    "nombre": "Oficial",
	    "compra": 1030.5,
	    "venta": 1070.5,
	    "fechaActualizacion": "2026-08-30T20:00:00.000Z"
	}
*/

// FetchQuote GETs the current ARS-per-USD sell price from the quote
// service. Any non-success response or network failure is returned as
// an error; the caller keeps its previous rate in that case.
func FetchQuote(client *http.Client) (decimal.Decimal, error) {
	if client == nil {
		client = cached()
	}

	var jobj any
	if err := jwget(client, QuoteURL, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error in wget %q: %w", "USD/ARS", err)
	}

	path := "$.venta"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q %w", "USD/ARS", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok || val <= 0 {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q %s %v", "USD/ARS", path, "not a positive number", jval)
	}
	return decimal.NewFromFloat(val), nil
}

// RefreshRate fetches the quote and records it in the book's
// exchange-rate state. A fetch failure leaves the state untouched and
// is reported upward; the previous rate stays authoritative.
func (b *Book) RefreshRate(client *http.Client) (decimal.Decimal, error) {
	value, err := FetchQuote(client)
	if err != nil {
		return decimal.Zero, err
	}
	state := b.Rate().WithFetched(value, time.Now())
	if err := b.SetRate(state); err != nil {
		return decimal.Zero, err
	}
	return value, nil
}
