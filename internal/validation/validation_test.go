package validation

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"cricstats/internal/models"
)

func TestBoundedIntRange(t *testing.T) {
	for n := 0; n <= models.MaxRuns; n++ {
		got, err := BoundedInt(strconv.Itoa(n), 0, models.MaxRuns)
		if err != nil || got != n {
			t.Fatalf("BoundedInt(%d) = %d, %v", n, got, err)
		}
	}
	for _, n := range []int{-1, models.MaxRuns + 1, -1000, 100000} {
		if _, err := BoundedInt(strconv.Itoa(n), 0, models.MaxRuns); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("BoundedInt(%d) err = %v, want ErrInvalidInput", n, err)
		}
	}
}

func TestBoundedIntUnparsable(t *testing.T) {
	for _, in := range []string{"", "abc", "12.5", "1e3", "  "} {
		if _, err := BoundedInt(in, 1, 4); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("BoundedInt(%q) err = %v, want ErrInvalidInput", in, err)
		}
	}
	if got, err := BoundedInt(" 3 ", 1, 4); err != nil || got != 3 {
		t.Errorf("BoundedInt(\" 3 \") = %d, %v", got, err)
	}
}

func TestBoundedFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0.1", 0.1, true},
		{"20", 20, true},
		{"12.3", 12.3, true},
		{"0", 0, false},
		{"0.09", 0, false},
		{"20.01", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"ten", 0, false},
	}
	for _, tc := range cases {
		got, err := BoundedFloat(tc.in, models.MinOvers, models.MaxOvers)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("BoundedFloat(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidInput) {
			t.Errorf("BoundedFloat(%q) err = %v, want ErrInvalidInput", tc.in, err)
		}
	}
}

func TestName(t *testing.T) {
	got, err := Name("  Wanindu   Hasaranga ", models.MaxNameLength)
	if err != nil || got != "Wanindu Hasaranga" {
		t.Errorf("Name() = %q, %v", got, err)
	}

	if _, err := Name("   ", models.MaxNameLength); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank name err = %v", err)
	}
	if _, err := Name(strings.Repeat("a", 31), models.MaxNameLength); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("long name err = %v", err)
	}
	if got, err := Name(strings.Repeat("é", 30), models.MaxNameLength); err != nil || got == "" {
		t.Errorf("30 runes should be accepted, got %q, %v", got, err)
	}
}

func TestResultCode(t *testing.T) {
	cases := map[string]models.Result{
		"W": models.ResultWin, "w": models.ResultWin,
		"L": models.ResultLoss, " l ": models.ResultLoss,
		"D": models.ResultDraw, "d": models.ResultDraw,
	}
	for in, want := range cases {
		got, err := ResultCode(in)
		if err != nil || got != want {
			t.Errorf("ResultCode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "win", "X", "WL"} {
		if _, err := ResultCode(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ResultCode(%q) err = %v", in, err)
		}
	}
}

func TestReason(t *testing.T) {
	_, err := BoundedInt("9", 1, 4)
	if got := Reason(err); got != "Invalid! Please enter a number between 1-4" {
		t.Errorf("Reason() = %q", got)
	}
}

func TestFindName(t *testing.T) {
	known := []string{"India", "New Zealand", "South Africa"}
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"india", "India", true},
		{"  New   zealand ", "New Zealand", true},
		{"South Africa A", "", false},
		{"Indiaa", "", false},
		{"Pakistan", "", false},
	}
	for _, tc := range cases {
		got, ok := FindName(tc.in, known)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FindName(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
	if _, ok := FindName("India", nil); ok {
		t.Error("FindName with no known names matched")
	}
}
