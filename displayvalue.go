package datagrid

import "fmt"

// DisplayKind tells a renderer how to present a DisplayValue.
type DisplayKind int

const (
	// DisplayText is plain text.
	DisplayText DisplayKind = iota
	// DisplayLink is a navigable target with Href and label Text.
	DisplayLink
	// DisplayPlaceholder marks a missing or malformed value.
	DisplayPlaceholder
	// DisplayCustom carries renderer specific content in Node
	// with Text as plain text fallback.
	DisplayCustom
	// DisplaySkeleton is a loading placeholder cell.
	DisplaySkeleton
)

func (k DisplayKind) String() string {
	switch k {
	case DisplayText:
		return "text"
	case DisplayLink:
		return "link"
	case DisplayPlaceholder:
		return "placeholder"
	case DisplayCustom:
		return "custom"
	case DisplaySkeleton:
		return "skeleton"
	}
	return fmt.Sprintf("DisplayKind(%d)", int(k))
}

// DisplayValue is the renderer independent display representation
// of a table cell.
type DisplayValue struct {
	Kind DisplayKind
	Text string
	Href string
	// Node can hold content for a specific renderer,
	// like template.HTML for htmlgrid or a styled string for termgrid.
	Node any
}

// Text returns a DisplayText value.
func Text(text string) DisplayValue {
	return DisplayValue{Kind: DisplayText, Text: text}
}

// Textf returns a DisplayText value formatted with fmt.Sprintf.
func Textf(format string, args ...any) DisplayValue {
	return DisplayValue{Kind: DisplayText, Text: fmt.Sprintf(format, args...)}
}

// Link returns a DisplayLink value.
// If text is empty, href is used as text.
func Link(href, text string) DisplayValue {
	if text == "" {
		text = href
	}
	return DisplayValue{Kind: DisplayLink, Text: text, Href: href}
}

// Custom returns a DisplayCustom value with renderer specific
// content node and text as fallback for renderers
// that don't know the type of node.
func Custom(node any, text string) DisplayValue {
	return DisplayValue{Kind: DisplayCustom, Text: text, Node: node}
}

// Placeholder returns a DisplayPlaceholder value with the passed token.
func Placeholder(token string) DisplayValue {
	return DisplayValue{Kind: DisplayPlaceholder, Text: token}
}

// Skeleton returns a DisplaySkeleton value.
func Skeleton() DisplayValue {
	return DisplayValue{Kind: DisplaySkeleton}
}

// IsPlaceholder tells if the value marks a missing value.
func (v DisplayValue) IsPlaceholder() bool {
	return v.Kind == DisplayPlaceholder
}

// String returns the plain text of the value.
func (v DisplayValue) String() string {
	return v.Text
}
