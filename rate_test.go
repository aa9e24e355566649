package midinero

import (
	"testing"
	"time"
)

func TestRateState_Current(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name  string
		state RateState
		want  string
	}{
		{"fresh state uses manual default", NewRateState(), "1000"},
		{"manual pinned", NewRateState().WithManual(d(1200)), "1200"},
		{"fetched takes over", NewRateState().WithFetched(d(1070.5), now), "1070.5"},
		{"manual repinned after fetch", NewRateState().WithFetched(d(1070.5), now).WithManual(d(1300)), "1300"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Current().String(); got != tc.want {
				t.Errorf("Current() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestRateState_Stale(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name  string
		state RateState
		want  bool
	}{
		{"never fetched", NewRateState(), true},
		{"just fetched", NewRateState().WithFetched(d(1000), now), false},
		{"within the hour", NewRateState().WithFetched(d(1000), now.Add(-59*time.Minute)), false},
		{"older than an hour", NewRateState().WithFetched(d(1000), now.Add(-61*time.Minute)), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Stale(now); got != tc.want {
				t.Errorf("Stale() = %v, want %v", got, tc.want)
			}
		})
	}
}
