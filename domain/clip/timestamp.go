package clip

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat indicates a timestamp string that is neither plain
// seconds nor mm:ss.
var ErrInvalidTimeFormat = errors.New("invalid time format")

var (
	// secondsRegex matches plain seconds with an optional fractional part.
	secondsRegex = regexp.MustCompile(`^\d+(\.\d+)?$`)
	minutesRegex = regexp.MustCompile(`^\d+$`)
)

// ParseSeconds parses a timestamp string into seconds. Accepted formats are
// plain seconds ("75", "12.5") and mm:ss ("1:15", "01:15.5"); the seconds
// part may be fractional in either form.
func ParseSeconds(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: time string cannot be empty", ErrInvalidTimeFormat)
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		if !secondsRegex.MatchString(parts[0]) {
			return 0, fmt.Errorf("%w: %q (use seconds or mm:ss)", ErrInvalidTimeFormat, s)
		}
		seconds, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		return seconds, nil

	case 2:
		if !minutesRegex.MatchString(parts[0]) {
			return 0, fmt.Errorf("%w: %q (minutes must be digits)", ErrInvalidTimeFormat, s)
		}
		minutes, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		if !secondsRegex.MatchString(parts[1]) {
			return 0, fmt.Errorf("%w: %q (invalid seconds part)", ErrInvalidTimeFormat, s)
		}
		seconds, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		return float64(minutes)*60 + seconds, nil

	default:
		return 0, fmt.Errorf("%w: %q (use seconds or mm:ss)", ErrInvalidTimeFormat, s)
	}
}

// FormatSeconds renders a time offset the way it is passed to ffmpeg.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}
