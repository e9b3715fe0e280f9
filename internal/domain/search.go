package domain

// Criteria filters records by exact attribute equality. Nil fields are
// ignored; the zero Criteria matches every record. Phones are not searchable
// here: matching is against whole attributes, not phone-list membership.
type Criteria struct {
	// Name matches the record name exactly.
	Name *string

	// Birthday matches records whose birthday is set and equals this date.
	Birthday *Birthday

	// HasBirthday selects records by birthday presence: true for records with
	// a birthday set, false for records without one.
	HasBirthday *bool
}

// Search returns every record matching all set criteria, in insertion order.
func (b *Book) Search(c Criteria) []*Record {
	var out []*Record
	for _, r := range b.Records() {
		if c.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (c Criteria) matches(r *Record) bool {
	if c.Name != nil && r.Name() != *c.Name {
		return false
	}
	bd, ok := r.Birthday()
	if c.HasBirthday != nil && ok != *c.HasBirthday {
		return false
	}
	if c.Birthday != nil && (!ok || !bd.Equal(*c.Birthday)) {
		return false
	}
	return true
}
