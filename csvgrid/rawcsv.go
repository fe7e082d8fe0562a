package csvgrid

import "strings"

var (
	_ RawCSVer = RawCSVFunc(nil)
	_ RawCSVer = Raw("")
)

// RawCSVer is implemented by nodes of custom cells
// that are written unquoted and unescaped.
type RawCSVer interface {
	RawCSV() string
}

type RawCSVFunc func() string

func (f RawCSVFunc) RawCSV() string {
	return f()
}

// Raw is a string written as is.
type Raw string

func (r Raw) RawCSV() string {
	return string(r)
}

// EscapeQuotes doubles all quote characters of val.
func EscapeQuotes(val string) string {
	return strings.ReplaceAll(val, `"`, `""`)
}
