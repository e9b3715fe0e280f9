package domain

import (
	"testing"
	"time"
)

func TestNewBirthday_Valid(t *testing.T) {
	b, err := NewBirthday("15.03.1990")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !b.Date().Equal(want) {
		t.Errorf("Date() = %v, want %v", b.Date(), want)
	}
	if b.String() != "15.03.1990" {
		t.Errorf("String() = %q, want %q", b.String(), "15.03.1990")
	}
}

func TestNewBirthday_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"iso format", "1990-03-15"},
		{"day out of range", "32.01.2000"},
		{"month out of range", "10.13.2000"},
		{"slash separator", "15/03/1990"},
		{"missing year", "15.03"},
		{"extra field", "15.03.1990.01"},
		{"non-numeric", "aa.bb.cccc"},
		{"empty", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewBirthday(c.raw); !IsKind(err, KindInvalidFormat) {
				t.Errorf("NewBirthday(%q) = %v, want invalid_format", c.raw, err)
			}
		})
	}
}

func TestBirthday_Equal(t *testing.T) {
	a, err := NewBirthday("01.01.2000")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBirthday("01.01.2000")
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewBirthday("02.01.2000")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("expected same dates to be equal")
	}
	if a.Equal(c) {
		t.Error("expected different dates to differ")
	}
}

func TestBirthday_ZeroValue(t *testing.T) {
	var b Birthday
	if !b.IsZero() {
		t.Error("expected zero value to report IsZero")
	}
}
