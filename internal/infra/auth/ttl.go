package auth

import (
	"strconv"
	"time"

	"passport/internal/errors"
)

// ParseTTL parses duration strings of the form "<integer><unit>" where unit is
// exactly one of d, h, m or s ("30d", "12h", "30m", "45s"). Anything else is a
// configuration error; it must be raised before any signing occurs.
func ParseTTL(ttl string) (time.Duration, error) {
	if len(ttl) < 2 {
		return 0, errors.Errorf("invalid ttl format: %q", ttl)
	}

	unit := ttl[len(ttl)-1]
	amount, err := strconv.Atoi(ttl[:len(ttl)-1])
	if err != nil || amount <= 0 {
		return 0, errors.Errorf("invalid ttl magnitude: %q", ttl)
	}

	switch unit {
	case 'd':
		return time.Duration(amount) * 24 * time.Hour, nil
	case 'h':
		return time.Duration(amount) * time.Hour, nil
	case 'm':
		return time.Duration(amount) * time.Minute, nil
	case 's':
		return time.Duration(amount) * time.Second, nil
	default:
		return 0, errors.Errorf("unknown ttl unit in %q", ttl)
	}
}
