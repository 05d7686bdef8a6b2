package embed

import "time"

// MaxInitAttempts bounds how often the storefront initializer is polled
// after its script arrives before giving up.
const MaxInitAttempts = 6

// NextDelay returns how long to wait before initializer poll attempt+1.
// The schedule grows linearly: 200ms, 400ms, and so on. ok is false once
// attempt exceeds MaxInitAttempts, meaning the widget should be declared
// unavailable instead of polled again.
func NextDelay(attempt int) (time.Duration, bool) {
	if attempt > MaxInitAttempts {
		return 0, false
	}
	return time.Duration(attempt+1) * 200 * time.Millisecond, true
}
