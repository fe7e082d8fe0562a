package htmlgrid

import "html/template"

var (
	_ RawHTMLer = RawHTMLFunc(nil)
	_ RawHTMLer = Raw("")
)

// RawHTMLer is implemented by nodes of custom cells
// that render themselves as HTML.
type RawHTMLer interface {
	RawHTML() template.HTML
}

type RawHTMLFunc func() template.HTML

func (f RawHTMLFunc) RawHTML() template.HTML {
	return f()
}

// Raw is a string of trusted HTML.
type Raw string

func (r Raw) RawHTML() template.HTML {
	return template.HTML(r) //#nosec G203
}
