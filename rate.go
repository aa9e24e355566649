package midinero

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateState holds the ARS-per-USD exchange rate state: a manual value
// set by the user and the last value fetched from the remote quote
// service.
type RateState struct {
	Manual    decimal.Decimal `json:"manual"`
	Fetched   decimal.Decimal `json:"fetched,omitempty"`
	FetchedAt time.Time       `json:"fetchedAt,omitzero"`
	UseManual bool            `json:"useManual"`
}

// DefaultRate is the manual rate seeded on first use.
var DefaultRate = decimal.NewFromInt(1000)

// NewRateState returns the initial exchange-rate state.
func NewRateState() RateState {
	return RateState{Manual: DefaultRate, UseManual: true}
}

// Current returns the authoritative ARS-per-USD rate: the manual value
// unless UseManual is false and a fetched value exists.
func (r RateState) Current() decimal.Decimal {
	if !r.UseManual && r.Fetched.IsPositive() {
		return r.Fetched
	}
	return r.Manual
}

// Stale reports whether the fetched value should be refreshed: never
// fetched, or fetched more than an hour before now.
func (r RateState) Stale(now time.Time) bool {
	if r.FetchedAt.IsZero() {
		return true
	}
	return now.Sub(r.FetchedAt) > time.Hour
}

// WithManual returns a copy with the manual value set and selected as
// authoritative.
func (r RateState) WithManual(value decimal.Decimal) RateState {
	r.Manual = value
	r.UseManual = true
	return r
}

// WithFetched returns a copy recording a freshly fetched value and
// selecting it as authoritative.
func (r RateState) WithFetched(value decimal.Decimal, at time.Time) RateState {
	r.Fetched = value
	r.FetchedAt = at
	r.UseManual = false
	return r
}
