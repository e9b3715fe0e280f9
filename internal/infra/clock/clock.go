// Package clock provides the process-wide time source.
package clock

import (
	"time"

	"github.com/vrylskyj/abook/internal/ports"
)

// System reads the wall clock.
type System struct{}

var _ ports.Clock = System{}

func (System) Now() time.Time { return time.Now() }
