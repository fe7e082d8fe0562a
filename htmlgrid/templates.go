package htmlgrid

import "html/template"

var (
	HeaderTemplate = template.Must(template.New("header").Parse(
		"<table{{if .TableClass}} class='{{.TableClass}}'{{end}} data-scheme='{{.Scheme}}'>\n" +
			"{{if .Caption}}  <caption>{{.Caption}}</caption>\n{{end}}" +
			"  <thead>\n" +
			"    <tr>{{range .Header}}<th{{if .Class}} class='{{.Class}}'{{end}}{{if .AriaSort}} aria-sort='{{.AriaSort}}'{{end}}>" +
			"{{if .SortHref}}<a href='{{.SortHref}}'>{{.Label}}</a>{{else}}{{.Label}}{{end}}{{if .Arrow}} {{.Arrow}}{{end}}" +
			"</th>{{end}}</tr>\n" +
			"  </thead>\n" +
			"  <tbody>\n",
	))

	RowTemplate = template.Must(template.New("row").Parse(
		"    <tr{{if .Class}} class='{{.Class}}'{{end}}{{if .Key}} data-key='{{.Key}}'{{end}}>" +
			"{{range .Cells}}<td{{if .ColSpan}} colspan='{{.ColSpan}}'{{end}}{{if .Class}} class='{{.Class}}'{{end}}>{{.HTML}}</td>{{end}}" +
			"</tr>\n",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"  </tbody>\n" +
			"</table>\n" +
			"{{with .Pagination}}<nav class='pagination' aria-label='pagination'>" +
			"{{if .PrevHref}}<a rel='prev' href='{{.PrevHref}}'>Previous</a> {{end}}" +
			"<span>{{.Summary}}</span>" +
			"{{if .NextHref}} <a rel='next' href='{{.NextHref}}'>Next</a>{{end}}" +
			"</nav>\n{{end}}",
	))

	linkTemplate = template.Must(template.New("link").Parse(
		"<a href='{{.Href}}'>{{.Text}}</a>",
	))
)

// TemplateContext is passed to the header and footer templates.
type TemplateContext struct {
	TableClass string
	Caption    string
	// Scheme is "light" or "dark".
	Scheme     string
	Header     []HeaderContext
	Pagination *PaginationContext
}

// HeaderContext describes one header cell.
type HeaderContext struct {
	Label    string
	Class    string
	AriaSort string
	// SortHref is the link target of sortable headers
	// if the Writer has sort links.
	SortHref string
	// Arrow is "▲" or "▼" for the sorted column.
	Arrow string
}

// PaginationContext describes the pagination navigation.
type PaginationContext struct {
	Summary  string
	PrevHref string
	NextHref string
}

// RowTemplateContext is passed to the row template.
type RowTemplateContext struct {
	RowIndex int
	Key      string
	Class    string
	Cells    []CellContext
}

// CellContext is one rendered body cell.
type CellContext struct {
	HTML    template.HTML
	Class   string
	ColSpan int
}
