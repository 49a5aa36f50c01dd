package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTimeZone = errors.New("invalid timezone offset")

// TZOffset is a UTC offset in minutes east of the reference meridian.
type TZOffset int

// ParseTZOffset accepts "+03", "+0300", "+03:00" and the same forms prefixed
// with "UTC" or "GMT". The sign is mandatory.
func ParseTZOffset(raw string) (TZOffset, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "UTC"), "GMT")
	if len(s) < 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeZone, raw)
	}

	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("%w: %q has no sign", ErrInvalidTimeZone, raw)
	}

	digits := strings.Replace(s[1:], ":", "", 1)
	var hh, mm string
	switch len(digits) {
	case 1, 2:
		hh = digits
	case 4:
		hh, mm = digits[:2], digits[2:]
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeZone, raw)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeZone, raw)
	}
	minutes := 0
	if mm != "" {
		minutes, err = strconv.Atoi(mm)
		if err != nil || minutes < 0 || minutes >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeZone, raw)
		}
	}

	return TZOffset(sign * (hours*60 + minutes)), nil
}

func (o TZOffset) Minutes() int {
	return int(o)
}

type Airport struct {
	City     string `json:"city" yaml:"city"`
	Name     string `json:"name" yaml:"name"`
	Code     string `json:"code" yaml:"code"`
	TimeZone string `json:"timezone" yaml:"timezone"`
}

// Title renders the airport as "{city} ({name}, {code})".
func (a Airport) Title() string {
	return fmt.Sprintf("%s (%s, %s)", a.City, a.Name, a.Code)
}
