package tally

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input   string
		want    int64
		wantErr error
	}{
		{input: "1500", want: 1500},
		{input: "1,500", want: 1500},
		{input: " 100000 ", want: 100000},
		{input: "100.00", want: 100},
		{input: "-20", want: -20},
		{input: "12.5", wantErr: ErrInvalidAmount},
		{input: "abc", wantErr: ErrInvalidAmount},
		{input: "", wantErr: ErrInvalidAmount},
		{input: "100000000000000000000", wantErr: ErrInvalidAmount},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParseAmount(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}
