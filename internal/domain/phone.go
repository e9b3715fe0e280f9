package domain

import "fmt"

// Phone is a validated phone number: exactly ten ASCII digits.
// The zero value is not a valid phone; construct via NewPhone.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone value.
func NewPhone(raw string) (Phone, error) {
	if !isValidPhone(raw) {
		return Phone{}, &OpError{
			Op:   "phone.new",
			Kind: KindInvalidFormat,
			Err:  fmt.Errorf("phone %q must be exactly 10 digits", raw),
		}
	}
	return Phone{value: raw}, nil
}

func isValidPhone(raw string) bool {
	if len(raw) != 10 {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}

func (p Phone) String() string { return p.value }

// Equal reports whether the phone matches the raw string exactly.
func (p Phone) Equal(raw string) bool { return p.value == raw }
