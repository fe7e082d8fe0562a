package csvgrid

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/domonda/go-types/charset"
)

// Format of CSV input data.
type Format struct {
	// Encoding is a charset name like "UTF-8" or "Windows 1252".
	Encoding string `json:"encoding" yaml:"encoding"`
	// Separator is a single character like ",", ";" or "\t".
	Separator string `json:"separator" yaml:"separator"`
}

func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvgrid.Format")
	case f.Encoding == "":
		return errors.New("missing csvgrid.Format.Encoding")
	case len(f.Separator) != 1:
		return fmt.Errorf("invalid csvgrid.Format.Separator: %q", f.Separator)
	}
	return nil
}

// DefaultEncodings are tried in order by DetectFormat.
var DefaultEncodings = []string{
	"UTF-8",
	"UTF-16LE",
	"ISO 8859-1",
	"Windows 1252",
	"Macintosh",
}

// encodingTests are characters that are encoded differently
// by the DefaultEncodings.
var encodingTests = []string{"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€"}

// DetectFormat decodes data by trying the passed encodings,
// or DefaultEncodings if none are passed,
// and detects the separator from a "sep=X" header line
// or the most frequent of comma, semicolon and tab in the first line.
// It returns the data decoded to UTF-8 without "sep=X" header line.
func DetectFormat(data []byte, encodings ...string) (utf8 []byte, format *Format, err error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	encs := make([]charset.Encoding, len(encodings))
	for i, name := range encodings {
		encs[i], err = charset.GetEncoding(name)
		if err != nil {
			return nil, nil, err
		}
	}
	format = new(Format)
	data, format.Encoding, err = charset.AutoDecode(data, encs, encodingTests)
	if err != nil {
		return nil, nil, err
	}
	if format.Encoding == "" || format.Encoding == "UTF-8" {
		format.Encoding = "UTF-8"
		data = charset.TrimBOM(data, charset.BOMUTF8)
	}

	firstLine, rest, _ := bytes.Cut(data, []byte{'\n'})
	firstLine = bytes.TrimRight(firstLine, "\r")
	if sep := parseSepHeaderLine(firstLine); sep != "" {
		format.Separator = sep
		return rest, format, nil
	}
	var (
		commas     = bytes.Count(firstLine, []byte{','})
		semicolons = bytes.Count(firstLine, []byte{';'})
		tabs       = bytes.Count(firstLine, []byte{'\t'})
	)
	switch {
	case semicolons > commas && semicolons > tabs:
		format.Separator = ";"
	case tabs > commas && tabs > semicolons:
		format.Separator = "\t"
	default:
		format.Separator = ","
	}
	return data, format, nil
}

// Read parses CSV data with a header line.
// If format is nil, it is detected with DetectFormat.
// Empty lines are skipped.
func Read(data []byte, format *Format) (header []string, records [][]string, err error) {
	if format == nil {
		data, format, err = DetectFormat(data)
		if err != nil {
			return nil, nil, err
		}
	} else {
		if err = format.Validate(); err != nil {
			return nil, nil, err
		}
		data, err = decode(data, format.Encoding)
		if err != nil {
			return nil, nil, err
		}
		if firstLine, rest, _ := bytes.Cut(data, []byte{'\n'}); parseSepHeaderLine(bytes.TrimRight(firstLine, "\r")) != "" {
			data = rest
		}
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = rune(format.Separator[0])
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("csvgrid: %w", err)
		}
		if header == nil {
			header = record
			continue
		}
		records = append(records, record)
	}
	if header == nil {
		return nil, nil, errors.New("csvgrid: missing header line")
	}
	return header, records, nil
}

// Rows converts records to map rows keyed by the header names.
// Missing fields of short records are nil,
// surplus fields of long records are ignored.
func Rows(header []string, records [][]string) []map[string]any {
	rows := make([]map[string]any, len(records))
	for i, record := range records {
		row := make(map[string]any, len(header))
		for col, name := range header {
			if col < len(record) {
				row[name] = record[col]
			} else {
				row[name] = nil
			}
		}
		rows[i] = row
	}
	return rows
}

func decode(data []byte, encoding string) ([]byte, error) {
	if encoding == "UTF-8" {
		return charset.TrimBOM(data, charset.BOMUTF8), nil
	}
	enc, err := charset.GetEncoding(encoding)
	if err != nil {
		return nil, err
	}
	return enc.Decode(data)
}

// parseSepHeaderLine returns the separator of a "sep=X" header line
// as written by spreadsheet applications,
// or an empty string if line is no such header.
func parseSepHeaderLine(line []byte) (sep string) {
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 {
		return ""
	}
	if !bytes.HasPrefix(line, []byte("sep=")) && !bytes.HasPrefix(line, []byte("SEP=")) {
		return ""
	}
	return string(line[4:5])
}
