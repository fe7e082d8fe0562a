// Package htmlgrid writes a datagrid.View as HTML table.
//
// All texts are HTML escaped. Custom cells can render raw HTML
// by using a template.HTML value or a RawHTMLer as node
// of a datagrid.DisplayValue.
//
// Example usage:
//
//	view := table.Render(datagrid.RenderInput[Invoice]{Rows: invoices})
//
//	err := htmlgrid.NewWriter().
//	    WithTableClass("invoices").
//	    WithSortLinks(func(columnID string) string { return "?sort=" + columnID }).
//	    Write(ctx, os.Stdout, view)
package htmlgrid

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"strings"

	"github.com/domonda/go-datagrid"
)

// Writer writes a datagrid.View as HTML table element
// followed by an optional pagination navigation.
//
// Writer is immutable after creation, all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	tableClass     string
	caption        string
	sortLink       func(columnID string) string
	pageLink       func(page int) string
	headerTemplate *template.Template
	rowTemplate    *template.Template
	footerTemplate *template.Template
}

// NewWriter returns a Writer with the default templates,
// no table class, no caption and without links.
func NewWriter() *Writer {
	return &Writer{
		headerTemplate: HeaderTemplate,
		rowTemplate:    RowTemplate,
		footerTemplate: FooterTemplate,
	}
}

// Write writes view as HTML to dest.
// The context is checked for cancellation before writing begins
// and before every row.
func (w *Writer) Write(ctx context.Context, dest io.Writer, view *datagrid.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	tableContext := TemplateContext{
		TableClass: w.tableClass,
		Caption:    w.caption,
		Scheme:     view.Style.Scheme(),
		Header:     make([]HeaderContext, len(view.Header)),
		Pagination: w.pagination(view.Pagination),
	}
	for i := range view.Header {
		tableContext.Header[i] = w.header(&view.Header[i])
	}
	err := w.headerTemplate.Execute(dest, tableContext)
	if err != nil {
		return err
	}

	rowContext := RowTemplateContext{}
	for i := range view.Rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		row := &view.Rows[i]
		rowContext.RowIndex = i
		rowContext.Key = row.Key
		rowContext.Class = row.Class
		rowContext.Cells = rowContext.Cells[:0]
		if row.ColSpan > 0 {
			rowContext.Cells = append(rowContext.Cells, CellContext{
				HTML:    w.cellHTML(spanCell(row)),
				ColSpan: row.ColSpan,
			})
		} else {
			for col := range row.Cells {
				var header *datagrid.HeaderCell
				if col < len(view.Header) {
					header = &view.Header[col]
				}
				rowContext.Cells = append(rowContext.Cells, CellContext{
					HTML:  w.cellHTML(row.Cells[col]),
					Class: cellClass(header),
				})
			}
		}
		err = w.rowTemplate.Execute(dest, &rowContext)
		if err != nil {
			return err
		}
	}

	return w.footerTemplate.Execute(dest, tableContext)
}

// WriteString returns view as HTML string.
func (w *Writer) WriteString(ctx context.Context, view *datagrid.View) (string, error) {
	var buf strings.Builder
	err := w.Write(ctx, &buf, view)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (w *Writer) header(h *datagrid.HeaderCell) HeaderContext {
	hc := HeaderContext{
		Label:    h.Label,
		Class:    cellClass(h),
		AriaSort: h.AriaSort(),
	}
	if h.Sortable {
		hc.Class = strings.TrimSpace(hc.Class + " sortable")
		if w.sortLink != nil {
			hc.SortHref = w.sortLink(h.ID)
		}
	}
	switch h.Direction {
	case datagrid.Ascending:
		hc.Arrow = "▲"
	case datagrid.Descending:
		hc.Arrow = "▼"
	}
	return hc
}

func (w *Writer) pagination(c *datagrid.PageControls) *PaginationContext {
	if c == nil {
		return nil
	}
	pc := &PaginationContext{Summary: c.Summary()}
	if w.pageLink != nil {
		if c.HasPrev {
			pc.PrevHref = w.pageLink(c.Page - 1)
		}
		if c.HasNext {
			pc.NextHref = w.pageLink(c.Page + 1)
		}
	}
	return pc
}

// cellHTML converts a display value to escaped or raw HTML.
func (w *Writer) cellHTML(v datagrid.DisplayValue) template.HTML {
	switch v.Kind {
	case datagrid.DisplayLink:
		var buf bytes.Buffer
		if err := linkTemplate.Execute(&buf, v); err != nil {
			return escape(v.Text)
		}
		return template.HTML(buf.String()) //#nosec G203
	case datagrid.DisplayPlaceholder:
		return "<span class='placeholder'>" + escape(v.Text) + "</span>"
	case datagrid.DisplaySkeleton:
		return "<span class='skeleton' aria-hidden='true'></span>"
	case datagrid.DisplayCustom:
		switch node := v.Node.(type) {
		case template.HTML:
			return node
		case RawHTMLer:
			return node.RawHTML()
		}
	}
	return escape(v.Text)
}

func spanCell(row *datagrid.ViewRow) datagrid.DisplayValue {
	if len(row.Cells) == 0 {
		return datagrid.Text("")
	}
	return row.Cells[0]
}

func cellClass(h *datagrid.HeaderCell) string {
	if h == nil {
		return ""
	}
	var classes []string
	switch h.Align {
	case datagrid.AlignRight:
		classes = append(classes, "align-right")
	case datagrid.AlignCenter:
		classes = append(classes, "align-center")
	}
	if h.Fixed != datagrid.NotFixed {
		classes = append(classes, "fixed-"+h.Fixed.String())
	}
	return strings.Join(classes, " ")
}

func escape(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s)) //#nosec G203
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
// The class will be rendered as: <table class='tableClass'>
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithCaption returns a new writer rendering a caption element.
func (w *Writer) WithCaption(caption string) *Writer {
	mod := w.clone()
	mod.caption = caption
	return mod
}

// WithSortLinks returns a new writer that wraps the labels
// of sortable headers in anchors linking to sortLink(columnID).
// The host handles the link by calling Table.HeaderClick.
func (w *Writer) WithSortLinks(sortLink func(columnID string) string) *Writer {
	mod := w.clone()
	mod.sortLink = sortLink
	return mod
}

// WithPageLinks returns a new writer rendering previous and next
// anchors in the pagination navigation linking to pageLink(page).
func (w *Writer) WithPageLinks(pageLink func(page int) string) *Writer {
	mod := w.clone()
	mod.pageLink = pageLink
	return mod
}

// WithTemplate returns a new writer with custom templates for rendering the HTML table.
//
// The header and footer templates receive a TemplateContext,
// the row template a *RowTemplateContext.
// See templates.go for the default templates.
func (w *Writer) WithTemplate(headerTemplate, rowTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = headerTemplate
	mod.rowTemplate = rowTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

// TableClass returns the CSS class configured for the table element.
func (w *Writer) TableClass() string {
	return w.tableClass
}

// Caption returns the configured caption.
func (w *Writer) Caption() string {
	return w.caption
}
