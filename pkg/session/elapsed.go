package session

import (
	"fmt"
	"time"
)

// FormatElapsed renders the time between checkpoints as "+850µs",
// "+12.3ms" or "+1.25s".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("+%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("+%.1fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("+%.2fs", d.Seconds())
	}
}
