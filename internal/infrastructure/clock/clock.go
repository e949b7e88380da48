// Package clock provides the wall clock used by the application layer.
package clock

import "time"

// System reads the current time in UTC.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time { return time.Now().UTC() }
