package scheduler

import (
	"fmt"
	"time"
)

// DateKey formats t's local calendar date as "YYYY-MM-DD". The time of day
// never influences the key.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}
