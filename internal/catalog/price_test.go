package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "two decimals", input: "19.99", want: 1999},
		{name: "rounds up third decimal", input: "19.999", want: 2000},
		{name: "rounds down third decimal", input: "19.994", want: 1999},
		{name: "half cent rounds away from zero", input: "0.005", want: 1},
		{name: "trailing zero", input: "9.50", want: 950},
		{name: "whole number", input: "20", want: 2000},
		{name: "surrounding spaces", input: "  3.10 ", want: 310},
		{name: "comma separator", input: "9,50", want: 950},
		{name: "zero", input: "0", want: 0},
		{name: "empty", input: "", wantErr: ErrInvalidPrice},
		{name: "not a number", input: "abc", wantErr: ErrInvalidPrice},
		{name: "negative", input: "-1.00", wantErr: ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("want %d cents, got %d", tt.want, got)
			}
		})
	}
}

func TestPriceInput(t *testing.T) {
	tests := map[int64]string{
		1999: "19.99",
		950:  "9.5",
		2000: "20",
		5:    "0.05",
		0:    "0",
	}

	for cents, want := range tests {
		if got := PriceInput(cents); got != want {
			t.Fatalf("PriceInput(%d): want %q, got %q", cents, want, got)
		}
	}
}

func TestPriceInputRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 950, 1999, 123456} {
		got, err := ParsePrice(PriceInput(cents))
		if err != nil {
			t.Fatalf("parse %d: %v", cents, err)
		}
		if got != cents {
			t.Fatalf("want %d after round trip, got %d", cents, got)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cents, err := ParsePrice("19.99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := FormatPrice(1999)
	if got != FormatPrice(cents) {
		t.Fatalf("want %q, got %q", FormatPrice(cents), got)
	}
	if !strings.HasPrefix(got, "€") {
		t.Fatalf("want euro symbol prefix, got %q", got)
	}
	if !strings.Contains(got, "19,99") {
		t.Fatalf("want nl-NL decimal comma, got %q", got)
	}
	if !strings.Contains(FormatPrice(950), "9,50") {
		t.Fatalf("want two fraction digits, got %q", FormatPrice(950))
	}
}
