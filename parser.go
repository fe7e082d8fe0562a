package datagrid

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseTime parses a string into a time.Time value by trying
// the layouts of TimeFormats in order and returns the parsed time
// and the layout that successfully parsed it.
//
// Example:
//
//	t, layout, err := ParseTime("2024-03-15T14:30:00Z")
//	// layout = time.RFC3339
//
//	t, layout, err := ParseTime("15.03.2024")
//	// layout = "02.01.2006"
func ParseTime(str string) (t time.Time, layout string, err error) {
	str = strings.TrimSpace(str)
	for _, layout := range TimeFormats {
		t, err = time.Parse(layout, str)
		if err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("cannot parse %q as time", str)
}

// ParseISOTime parses only the ISO 8601 layouts of ISOTimeFormats.
func ParseISOTime(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	for _, layout := range ISOTimeFormats {
		t, err := time.Parse(layout, str)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as ISO 8601 time", str)
}

// ISOTimeFormats are the ISO 8601 layouts tried by ParseISOTime.
var ISOTimeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	formatLocalDateTime,
	formatBrowserLocalTime,
	time.DateOnly,
}

// TimeFormats is the list of time layouts tried by ParseTime.
// The ISO 8601 layouts come first.
var TimeFormats = []string{
	time.RFC3339,           // "2006-01-02T15:04:05Z07:00" - ISO 8601, most common API format, also parses fractional seconds
	time.RFC3339Nano,       // "2006-01-02T15:04:05.999999999Z07:00" - ISO 8601 with nanoseconds
	formatLocalDateTime,    // "2006-01-02T15:04:05" - ISO 8601 without zone
	formatBrowserLocalTime, // "2006-01-02T15:04" - HTML5 datetime-local input format
	time.DateOnly,          // "2006-01-02" - ISO date only, SQL date format
	time.DateTime,          // "2006-01-02 15:04:05" - SQL datetime format
	formatDateTimeMinute,   // "2006-01-02 15:04" - DateTime without seconds
	formatTimeString,       // "2006-01-02 15:04:05.999999999 -0700 MST" - Complete time string
	time.RFC1123Z,          // "Mon, 02 Jan 2006 15:04:05 -0700" - HTTP date format
	time.RFC1123,           // "Mon, 02 Jan 2006 15:04:05 MST" - Email/HTTP dates
	time.RFC850,            // "Monday, 02-Jan-06 15:04:05 MST" - Old HTTP format
	time.RubyDate,          // "Mon Jan 02 15:04:05 -0700 2006"
	time.UnixDate,          // "Mon Jan _2 15:04:05 MST 2006"
	time.ANSIC,             // "Mon Jan _2 15:04:05 2006"
	time.RFC822Z,           // "02 Jan 06 15:04 -0700"
	time.RFC822,            // "02 Jan 06 15:04 MST"
	formatDateTimeGerman,   // "02.01.2006 15:04:05"
	formatDateGerman,       // "02.01.2006"
	formatDisplayDateTime,  // "02 Jan 2006, 03:04 PM"
	formatDisplayDate,      // "02 Jan 2006"
}

const (
	formatLocalDateTime    = "2006-01-02T15:04:05"
	formatBrowserLocalTime = "2006-01-02T15:04"
	formatDateTimeMinute   = "2006-01-02 15:04"
	formatDateTimeGerman   = "02.01.2006 15:04:05"
	formatDateGerman       = "02.01.2006"
	formatTimeString       = "2006-01-02 15:04:05.999999999 -0700 MST"
	formatDisplayDate      = "02 Jan 2006"
	formatDisplayDateTime  = "02 Jan 2006, 03:04 PM"
)

var numberToken = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)`)

// ParseNumber converts a cell value to a float64.
// Numbers are converted directly, strings are parsed
// or if that fails the first embedded number is used,
// so "120 days" results in 120.
func ParseNumber(value any) (float64, bool) {
	if f, ok := numberValue(value); ok {
		return f, true
	}
	str, ok := stringValue(value)
	if !ok {
		return 0, false
	}
	str = strings.TrimSpace(str)
	if f, err := strconv.ParseFloat(str, 64); err == nil {
		return f, true
	}
	token := numberToken.FindString(str)
	if token == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(token, 64)
	return f, err == nil
}

// ParseCurrency converts a cell value to a float64.
// Numbers are converted directly, strings are parsed
// after removing all characters except digits, '.' and '-',
// so "$1,000.00" results in 1000.
func ParseCurrency(value any) (float64, bool) {
	if f, ok := numberValue(value); ok {
		return f, true
	}
	str, ok := stringValue(value)
	if !ok {
		return 0, false
	}
	str = strings.Map(
		func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				return r
			}
			return -1
		},
		str,
	)
	f, err := strconv.ParseFloat(str, 64)
	return f, err == nil
}

// ParseDate converts a time.Time or a string
// parsed with ParseTime to a time.Time.
func ParseDate(value any) (time.Time, bool) {
	switch v := deref(value).(type) {
	case time.Time:
		return v, !v.IsZero()
	case interface{ Time() time.Time }:
		t := v.Time()
		return t, !t.IsZero()
	}
	str, ok := stringValue(value)
	if !ok {
		return time.Time{}, false
	}
	t, _, err := ParseTime(str)
	return t, err == nil
}

// numberValue converts values of numeric kinds and json.Number.
func numberValue(value any) (float64, bool) {
	value = deref(value)
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

// stringValue returns strings, byte slices and fmt.Stringer
// implementations as string.
func stringValue(value any) (string, bool) {
	switch v := deref(value).(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	}
	v := reflect.ValueOf(deref(value))
	if v.Kind() == reflect.String {
		return v.String(), true
	}
	return "", false
}
