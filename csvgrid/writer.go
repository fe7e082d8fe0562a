// Package csvgrid writes the data rows of a datagrid.View as CSV.
package csvgrid

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/domonda/go-datagrid"
)

// TextTransformer encodes the UTF-8 bytes of a row,
// implemented for example by *encoding.Encoder from golang.org/x/text.
type TextTransformer interface {
	Bytes([]byte) ([]byte, error)
}

// Writer writes views as CSV.
// The With* methods modify and return the Writer for chaining.
type Writer struct {
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	nilValue         string
	linkHrefs        bool
	delimiter        rune
	newLine          string
	encoder          TextTransformer
}

// NewWriter returns a Writer using ';' as delimiter,
// "\r\n" as new line and escaping quotes by doubling them.
func NewWriter() *Writer {
	return &Writer{
		delimiter:    ';',
		escapeQuotes: `""`,
		newLine:      "\r\n",
	}
}

// WithQuoteAllFields quotes every field,
// not only those containing the delimiter, quotes or new lines.
func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	w.quoteAllFields = quoteAllFields
	return w
}

// WithQuoteEmptyFields writes empty fields as "".
func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	w.quoteEmptyFields = quoteEmptyFields
	return w
}

// WithNilValue sets the string written for placeholder cells.
func (w *Writer) WithNilValue(nilValue string) *Writer {
	w.nilValue = nilValue
	return w
}

// WithLinkHrefs writes the target of link cells instead of their text.
func (w *Writer) WithLinkHrefs(linkHrefs bool) *Writer {
	w.linkHrefs = linkHrefs
	return w
}

// WithEscapeQuotes sets the replacement for quotes inside quoted fields.
func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	w.escapeQuotes = escapeQuotes
	return w
}

// WithDelimiter sets the field separator.
func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	w.delimiter = delimiter
	return w
}

// WithNewLine sets the line terminator of rows.
func (w *Writer) WithNewLine(newLine string) *Writer {
	w.newLine = newLine
	return w
}

// WithEncoder encodes every row with encoder,
// nil writes UTF-8.
func (w *Writer) WithEncoder(encoder TextTransformer) *Writer {
	w.encoder = encoder
	return w
}

// Delimiter returns the field separator.
func (w *Writer) Delimiter() rune {
	return w.delimiter
}

// Write writes the data rows of view to dest,
// preceded by the header labels if writeHeaderRow is true.
// Loading and empty views have no data rows.
func (w *Writer) Write(ctx context.Context, dest io.Writer, view *datagrid.View, writeHeaderRow bool) error {
	var (
		rowBuf         = bytes.NewBuffer(make([]byte, 0, 1024))
		mustQuoteChars = "\n\"" + string(w.delimiter)
	)
	if writeHeaderRow {
		labels := view.Labels()
		cells := make([]datagrid.DisplayValue, len(labels))
		for i, label := range labels {
			cells[i] = datagrid.Text(label)
		}
		err := w.writeRow(ctx, dest, rowBuf, cells, mustQuoteChars)
		if err != nil {
			return err
		}
	}
	if view.Loading || view.Empty {
		return ctx.Err()
	}
	for i := range view.Rows {
		err := w.writeRow(ctx, dest, rowBuf, view.Rows[i].Cells, mustQuoteChars)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeRow(ctx context.Context, dest io.Writer, rowBuf *bytes.Buffer, cells []datagrid.DisplayValue, mustQuoteChars string) (err error) {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	for col, cell := range cells {
		if col > 0 {
			rowBuf.WriteRune(w.delimiter)
		}
		if raw, ok := cell.Node.(RawCSVer); ok && cell.Kind == datagrid.DisplayCustom {
			rowBuf.WriteString(raw.RawCSV())
			continue
		}
		str := w.cellString(cell)
		// Just in case remove all \r,
		// \n alone is valid within quotes
		str = strings.ReplaceAll(str, "\r", "")
		switch {
		case w.quoteAllFields || strings.ContainsAny(str, mustQuoteChars):
			rowBuf.WriteByte('"')
			rowBuf.WriteString(strings.ReplaceAll(str, `"`, w.escapeQuotes))
			rowBuf.WriteByte('"')
		case w.quoteEmptyFields && str == "":
			rowBuf.WriteString(`""`)
		default:
			rowBuf.WriteString(str)
		}
	}
	rowBuf.WriteString(w.newLine)
	rowBytes := rowBuf.Bytes()
	rowBuf.Reset()
	if w.encoder != nil {
		rowBytes, err = w.encoder.Bytes(rowBytes)
		if err != nil {
			return err
		}
	}
	_, err = dest.Write(rowBytes)
	return err
}

func (w *Writer) cellString(cell datagrid.DisplayValue) string {
	switch cell.Kind {
	case datagrid.DisplayPlaceholder, datagrid.DisplaySkeleton:
		return w.nilValue
	case datagrid.DisplayLink:
		if w.linkHrefs {
			return cell.Href
		}
	}
	return cell.Text
}
