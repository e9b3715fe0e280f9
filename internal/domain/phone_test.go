package domain

import "testing"

func TestNewPhone_Valid(t *testing.T) {
	cases := []string{"1234567890", "0000000000", "9999999999"}
	for _, raw := range cases {
		p, err := NewPhone(raw)
		if err != nil {
			t.Errorf("NewPhone(%q) unexpected error: %v", raw, err)
			continue
		}
		if p.String() != raw {
			t.Errorf("NewPhone(%q) round-trip = %q", raw, p.String())
		}
	}
}

func TestNewPhone_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"too short", "123456789"},
		{"too long", "12345678901"},
		{"empty", ""},
		{"letters", "12345abcde"},
		{"dashes", "123-456-78"},
		{"spaces", "123456789 "},
		{"unicode digit padding", "123456789٠"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewPhone(c.raw); !IsKind(err, KindInvalidFormat) {
				t.Errorf("NewPhone(%q) = %v, want invalid_format", c.raw, err)
			}
		})
	}
}

func TestPhone_Equal(t *testing.T) {
	p, err := NewPhone("1234567890")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal("1234567890") {
		t.Error("expected equality with exact value")
	}
	if p.Equal("1234567891") {
		t.Error("expected inequality with different value")
	}
}
