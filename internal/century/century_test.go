package century

import (
	"errors"
	"testing"
)

func TestFromYear_FirstTwoCenturies(t *testing.T) {
	for y := 1; y <= 100; y++ {
		if got := FromYear(y); got != 1 {
			t.Fatalf("FromYear(%d) = %d, want 1", y, got)
		}
	}

	for y := 101; y <= 200; y++ {
		if got := FromYear(y); got != 2 {
			t.Fatalf("FromYear(%d) = %d, want 2", y, got)
		}
	}
}

func TestFromYear_Boundaries(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{1, 1},
		{100, 1},
		{101, 2},
		{200, 2},
		{201, 3},
		{325, 4},
		{1500, 15},
		{1501, 16},
		{1560, 16},
		{2000, 20},
		{2001, 21},
	}

	for _, tt := range tests {
		if got := FromYear(tt.year); got != tt.want {
			t.Errorf("FromYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestFromYear_NonPositive(t *testing.T) {
	if got := FromYear(0); got != 0 {
		t.Errorf("FromYear(0) = %d, want 0", got)
	}

	if got := FromYear(-99); got != 0 {
		t.Errorf("FromYear(-99) = %d, want 0", got)
	}

	if got := FromYear(-100); got != -1 {
		t.Errorf("FromYear(-100) = %d, want -1", got)
	}
}

func TestLabelRoundTrip(t *testing.T) {
	label := Label(DefaultPrefix, 16)
	if label != "century-16" {
		t.Fatalf("Label = %q, want century-16", label)
	}

	n, err := ParseLabel(DefaultPrefix, label)
	if err != nil {
		t.Fatalf("ParseLabel returned error: %v", err)
	}

	if n != 16 {
		t.Errorf("ParseLabel = %d, want 16", n)
	}
}

func TestParseLabel_Invalid(t *testing.T) {
	for _, label := range []string{"16", "century-", "century-x", "century-0", "decade-3"} {
		if _, err := ParseLabel(DefaultPrefix, label); !errors.Is(err, ErrInvalidLabel) {
			t.Errorf("ParseLabel(%q) error = %v, want ErrInvalidLabel", label, err)
		}
	}
}
