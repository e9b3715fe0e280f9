package domain

import "fmt"

// Book is the address book: records keyed by contact name, iterated in
// insertion order. A Book is built once at startup and owned by a single
// session; it is not safe for concurrent use.
type Book struct {
	records map[string]*Record
	order   []string
}

func NewBook() *Book {
	return &Book{records: map[string]*Record{}}
}

// AddRecord inserts the record under its name. Adding under an existing name
// replaces the stored record in place (last write wins); duplicate rejection
// is the caller's concern.
func (b *Book) AddRecord(r *Record) {
	if _, ok := b.records[r.Name()]; !ok {
		b.order = append(b.order, r.Name())
	}
	b.records[r.Name()] = r
}

// Find returns the record stored under name.
func (b *Book) Find(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, b.recordNotFound("book.find", name)
	}
	return r, nil
}

// Delete removes the record stored under name.
func (b *Book) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return b.recordNotFound("book.delete", name)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// AddBirthday looks up the record and sets its birthday.
func (b *Book) AddBirthday(name, raw string) error {
	r, err := b.Find(name)
	if err != nil {
		return err
	}
	return r.AddBirthday(raw)
}

func (b *Book) Len() int { return len(b.records) }

// Records returns all records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

func (b *Book) recordNotFound(op, name string) error {
	return &OpError{
		Op:   op,
		Kind: KindNotFound,
		Err:  fmt.Errorf("record %q not found", name),
	}
}
