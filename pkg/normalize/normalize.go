package normalize

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidWeekday = errors.New("invalid weekday")
	ErrInvalidTime    = errors.New("invalid time")
)

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var (
	timeHMRe  = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	timeHMSRe = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	priceRe   = regexp.MustCompile(`[^0-9,.\-]`)
)

// Weekday converts a loosely typed weekday value into its canonical name.
// Accepted inputs: 1-7 (Monday=1) as a number or numeric string, or a
// case-insensitive English day name.
func Weekday(v interface{}) (string, error) {
	switch d := v.(type) {
	case nil:
		return "", ErrInvalidWeekday
	case int:
		return weekdayFromIndex(d)
	case int64:
		return weekdayFromIndex(int(d))
	case float64:
		// JSON numbers decode as float64.
		if d != float64(int(d)) {
			return "", ErrInvalidWeekday
		}
		return weekdayFromIndex(int(d))
	case string:
		s := strings.ToLower(strings.TrimSpace(d))
		if n, err := strconv.Atoi(s); err == nil {
			return weekdayFromIndex(n)
		}
		for _, name := range weekdays {
			if s == name {
				return name, nil
			}
		}
		return "", ErrInvalidWeekday
	default:
		return "", ErrInvalidWeekday
	}
}

func weekdayFromIndex(n int) (string, error) {
	if n < 1 || n > 7 {
		return "", ErrInvalidWeekday
	}
	return weekdays[n-1], nil
}

// Time converts a clock value into canonical "HH:MM:SS" form. "HH:MM" gets
// ":00" appended, "HH:MM:SS" passes through, and a loose "H:M" is
// zero-padded.
func Time(v string) (string, error) {
	s := strings.TrimSpace(v)
	if s == "" {
		return "", ErrInvalidTime
	}
	if timeHMRe.MatchString(s) {
		return pad(s) + ":00", nil
	}
	if timeHMSRe.MatchString(s) {
		return pad(s), nil
	}
	parts := strings.Split(s, ":")
	if len(parts) >= 2 && isDigits(parts[0]) && isDigits(parts[1]) {
		return pad2(parts[0]) + ":" + pad2(parts[1]) + ":00", nil
	}
	return "", ErrInvalidTime
}

func pad(s string) string {
	parts := strings.Split(s, ":")
	for i, p := range parts {
		parts[i] = pad2(p)
	}
	return strings.Join(parts, ":")
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Price converts a loosely typed amount to a float. Numeric input is used
// as-is. String input is stripped down to digits, comma, dot and minus;
// when both comma and dot appear, the rightmost one is the decimal
// separator and the other is treated as a thousands separator. Anything
// unparseable yields 0.
func Price(v interface{}) float64 {
	switch p := v.(type) {
	case float64:
		return p
	case float32:
		return float64(p)
	case int:
		return float64(p)
	case int64:
		return float64(p)
	case string:
		return priceFromString(p)
	default:
		return 0
	}
}

func priceFromString(s string) float64 {
	cleaned := priceRe.ReplaceAllString(strings.TrimSpace(s), "")
	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")
	switch {
	case hasComma && hasDot:
		decIndex := strings.LastIndex(cleaned, ",")
		if dot := strings.LastIndex(cleaned, "."); dot > decIndex {
			decIndex = dot
		}
		intPart := stripSeparators(cleaned[:decIndex])
		fracPart := stripSeparators(cleaned[decIndex+1:])
		cleaned = intPart + "." + fracPart
	case hasComma:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func stripSeparators(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	return strings.ReplaceAll(s, ".", "")
}
