package domain

import (
	"fmt"
	"strings"
)

// Record is one contact: a name, an ordered list of phones, and an optional
// birthday. The name is fixed at creation and acts as the Book key. Phones
// keep insertion order and may contain duplicates.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with the given name, no phones, and no birthday.
// The name is stored verbatim.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

func (r *Record) Name() string { return r.name }

// Phones returns the phone list in insertion order. The returned slice is a
// copy; mutating it does not affect the record.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday and whether one has been set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are permitted.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to raw.
func (r *Record) RemovePhone(raw string) error {
	for i, p := range r.phones {
		if p.Equal(raw) {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return r.phoneNotFound("record.removephone", raw)
}

// EditPhone replaces the first phone equal to oldRaw with newRaw, keeping its
// position in the list. The replacement is validated so the ten-digit
// invariant survives edits.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	for i, p := range r.phones {
		if p.Equal(oldRaw) {
			np, err := NewPhone(newRaw)
			if err != nil {
				return err
			}
			r.phones[i] = np
			return nil
		}
	}
	return r.phoneNotFound("record.editphone", oldRaw)
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, error) {
	for _, p := range r.phones {
		if p.Equal(raw) {
			return p, nil
		}
	}
	return Phone{}, r.phoneNotFound("record.findphone", raw)
}

// AddBirthday sets the birthday. A birthday can be set at most once; there is
// no overwrite path.
func (r *Record) AddBirthday(raw string) error {
	if r.birthday != nil {
		return &OpError{
			Op:   "record.addbirthday",
			Kind: KindAlreadySet,
			Err:  fmt.Errorf("birthday already set for %q", r.name),
		}
	}
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) String() string {
	vals := make([]string, len(r.phones))
	for i, p := range r.phones {
		vals[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(vals, "; "))
}

func (r *Record) phoneNotFound(op, raw string) error {
	return &OpError{
		Op:   op,
		Kind: KindNotFound,
		Err:  fmt.Errorf("phone %q not found in record %q", raw, r.name),
	}
}
