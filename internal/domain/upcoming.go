package domain

import "time"

// UpcomingBirthday is one line of the weekly birthday report.
type UpcomingBirthday struct {
	// Weekday is the label for the congratulation day. Weekend birthdays keep
	// their date but are labeled "Monday".
	Weekday string

	Name string
}

// UpcomingBirthdays reports every record whose birthday, re-anchored to the
// current year (or the next year if that date already passed), falls within
// the inclusive 0..7 day window from today. Order follows record insertion
// order.
func (b *Book) UpcomingBirthdays(today time.Time) []UpcomingBirthday {
	day := dateOnly(today)

	var out []UpcomingBirthday
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}

		next := time.Date(day.Year(), bd.Date().Month(), bd.Date().Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(day) {
			next = time.Date(day.Year()+1, bd.Date().Month(), bd.Date().Day(), 0, 0, 0, 0, time.UTC)
		}

		delta := int(next.Sub(day).Hours() / 24)
		if delta < 0 || delta > 7 {
			continue
		}

		weekday := next.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			weekday = time.Monday
		}

		out = append(out, UpcomingBirthday{Weekday: weekday.String(), Name: r.Name()})
	}
	return out
}

// dateOnly strips the clock and location so day arithmetic is DST-proof.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
