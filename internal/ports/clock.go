package ports

import "time"

// Clock abstracts the time source so the birthday report is testable.
type Clock interface {
	Now() time.Time
}
