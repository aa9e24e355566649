// Package renderer turns aggregation results into markdown reports.
package renderer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvega/midinero"
)

// Now is the current time used in reports.
// It has to be overridable so that tests produce stable output.
func Now() time.Time {
	if os.Getenv("MIDINERO_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("MIDINERO_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// ars formats a plain decimal as an ARS money value.
func ars(v decimal.Decimal) string { return midinero.M(v, midinero.ARS).String() }

// in formats a plain decimal in the given currency.
func in(v decimal.Decimal, currency string) string { return midinero.M(v, currency).String() }

// percentOf formats part/whole as a percentage, "" when whole is zero.
func percentOf(part, whole decimal.Decimal) string {
	if whole.IsZero() {
		return ""
	}
	pct := part.Div(whole).Mul(decimal.NewFromInt(100))
	return pct.Round(1).String() + "%"
}

// table writes a markdown table: a header row, the separator, then
// one row per call to the returned function.
func table(w io.Writer, headers ...string) func(cells ...string) {
	fmt.Fprint(w, "|")
	for _, h := range headers {
		fmt.Fprintf(w, " %s |", h)
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, "|")
	for range headers {
		fmt.Fprint(w, "---|")
	}
	fmt.Fprintln(w)
	return func(cells ...string) {
		fmt.Fprint(w, "|")
		for _, c := range cells {
			fmt.Fprintf(w, " %s |", c)
		}
		fmt.Fprintln(w)
	}
}
