package cmd

import (
	"testing"

	"github.com/nvega/midinero"
)

func TestParseRef(t *testing.T) {
	testCases := []struct {
		in      string
		want    midinero.Ref
		wantErr bool
	}{
		{in: "1", want: midinero.AccountRef(1)},
		{in: "42", want: midinero.AccountRef(42)},
		{in: "d42", want: midinero.DestinationRef(42)},
		{in: "D7", want: midinero.DestinationRef(7)},
		{in: "0", wantErr: true},
		{in: "d", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := parseRef(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseRef(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("parseRef(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"work", []string{"work"}},
		{"work, travel", []string{"work", "travel"}},
		{" a ,, b ", []string{"a", "b"}},
	}
	for _, tc := range testCases {
		got := splitTags(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitTags(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}
