package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datagrid/csvgrid"
	"github.com/domonda/go-datagrid/gridconfig"
)

// readInput reads the file at path,
// or stdin if path is empty or "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return fs.File(path).ReadAll()
}

// parseRows parses data as JSON array of objects if path has
// the extension .json, or has no known extension and data starts with '['.
// Everything else is parsed as CSV.
// The returned fields are the CSV header
// or the sorted union of all JSON object keys.
func parseRows(path string, data []byte) (rows []map[string]any, fields []string, err error) {
	var isJSON bool
	switch strings.ToLower(fs.File(path).Ext()) {
	case ".json":
		isJSON = true
	case ".csv", ".tsv", ".txt":
		isJSON = false
	default:
		isJSON = bytes.HasPrefix(bytes.TrimSpace(data), []byte{'['})
	}
	if isJSON {
		return parseJSONRows(data)
	}
	header, records, err := csvgrid.Read(data, nil)
	if err != nil {
		return nil, nil, err
	}
	return csvgrid.Rows(header, records), header, nil
}

func parseJSONRows(data []byte) (rows []map[string]any, fields []string, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err = dec.Decode(&rows); err != nil {
		return nil, nil, fmt.Errorf("parsing JSON rows: %w", err)
	}
	keys := make(map[string]struct{})
	for _, row := range rows {
		for key := range row {
			keys[key] = struct{}{}
		}
	}
	return rows, slices.Sorted(maps.Keys(keys)), nil
}

// configFromFields returns a configuration with an auto sorted
// text column per field. The row ID is read from the field "id"
// or the first field if there is no such field.
func configFromFields(fields []string) *gridconfig.File {
	cfg := &gridconfig.File{IDField: gridconfig.DefaultIDField}
	if !slices.Contains(fields, gridconfig.DefaultIDField) && len(fields) > 0 {
		cfg.IDField = fields[0]
	}
	for _, field := range fields {
		cfg.Columns = append(cfg.Columns, gridconfig.ColumnConfig{ID: field, Sort: "auto"})
	}
	return cfg
}
