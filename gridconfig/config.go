// Package gridconfig loads datagrid column models for map rows
// from YAML, TOML or JSON files (with comments).
//
// Example YAML:
//
//	idField: id
//	limit: 20
//	sort: {field: amount, direction: desc}
//	columns:
//	  - id: customer
//	    label: Customer
//	    sort: string
//	  - id: amount
//	    type: amount
//	    sort: currency
//	    align: right
//	    format: "%.2f EUR"
package gridconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	fs "github.com/ungerik/go-fs"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/domonda/go-datagrid"
)

// DefaultIDField is the row ID key if File.IDField is empty.
const DefaultIDField = "id"

// File is the configuration of a table with map[string]any rows.
type File struct {
	// IDField is the key of the row ID, default "id".
	IDField string `json:"idField,omitempty" yaml:"idField,omitempty" toml:"idField,omitempty"`
	// Limit is the page size and number of skeleton rows.
	Limit     int    `json:"limit,omitempty" yaml:"limit,omitempty" toml:"limit,omitempty"`
	EmptyText string `json:"emptyText,omitempty" yaml:"emptyText,omitempty" toml:"emptyText,omitempty"`
	// Placeholder for missing values, default "-".
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty" toml:"placeholder,omitempty"`
	// Language is a BCP 47 tag used for string collation
	// and number formatting.
	Language string         `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty"`
	Sort     SortConfig     `json:"sort" yaml:"sort" toml:"sort"`
	Style    StyleConfig    `json:"style" yaml:"style" toml:"style"`
	Columns  []ColumnConfig `json:"columns" yaml:"columns" toml:"columns"`
}

// SortConfig is the initial sort state.
type SortConfig struct {
	Field     string `json:"field,omitempty"     yaml:"field,omitempty"     toml:"field,omitempty"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty"`
}

// StyleConfig mirrors datagrid.Style.
type StyleConfig struct {
	Dark    bool  `json:"dark,omitempty"    yaml:"dark,omitempty"    toml:"dark,omitempty"`
	Hover   *bool `json:"hover,omitempty"   yaml:"hover,omitempty"   toml:"hover,omitempty"`
	Striped bool  `json:"striped,omitempty" yaml:"striped,omitempty" toml:"striped,omitempty"`
	Dense   bool  `json:"dense,omitempty"   yaml:"dense,omitempty"   toml:"dense,omitempty"`
}

// ColumnConfig configures one column.
// Type and Sort use the names of datagrid.ParseCellType
// and datagrid.ParseSortType, an empty Sort makes the column
// not sortable.
type ColumnConfig struct {
	ID       string `json:"id"                 yaml:"id"                 toml:"id"`
	Label    string `json:"label,omitempty"    yaml:"label,omitempty"    toml:"label,omitempty"`
	Type     string `json:"type,omitempty"     yaml:"type,omitempty"     toml:"type,omitempty"`
	Sort     string `json:"sort,omitempty"     yaml:"sort,omitempty"     toml:"sort,omitempty"`
	Align    string `json:"align,omitempty"    yaml:"align,omitempty"    toml:"align,omitempty"`
	Fixed    string `json:"fixed,omitempty"    yaml:"fixed,omitempty"    toml:"fixed,omitempty"`
	MinWidth int    `json:"minWidth,omitempty" yaml:"minWidth,omitempty" toml:"minWidth,omitempty"`
	MaxWidth int    `json:"maxWidth,omitempty" yaml:"maxWidth,omitempty" toml:"maxWidth,omitempty"`
	// Format is a fmt.Sprintf layout for the value.
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	// Currency is a symbol prefixed to amounts
	// formatted with the configured language.
	Currency string `json:"currency,omitempty" yaml:"currency,omitempty" toml:"currency,omitempty"`
}

// Load reads a configuration file
// choosing the format by the extension .yaml, .yml, .toml, .json or .jsonc.
func Load(path string) (*File, error) {
	file := fs.File(path)
	data, err := file.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("gridconfig: %w", err)
	}
	switch ext := strings.ToLower(file.Ext()); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	case ".json", ".jsonc":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("gridconfig: unsupported file extension %q of %s", ext, path)
	}
}

// ParseYAML parses a YAML configuration.
// Unknown keys are errors.
func ParseYAML(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("gridconfig: parsing YAML: %w", err)
	}
	return &f, nil
}

// ParseTOML parses a TOML configuration.
// Unknown keys are errors.
func ParseTOML(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("gridconfig: parsing TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("gridconfig: unknown TOML keys %v", undecoded)
	}
	return &f, nil
}

// ParseJSON parses a JSON configuration
// that may contain comments and trailing commas.
// Unknown keys are errors.
func ParseJSON(data []byte) (*File, error) {
	var f File
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("gridconfig: parsing JSON: %w", err)
	}
	return &f, nil
}

// Accessor returns the FieldAccessor for rows
// restricted to the configured column IDs.
func (f *File) Accessor() datagrid.MapFieldAccessor {
	ids := make([]string, 0, len(f.Columns))
	for i := range f.Columns {
		ids = append(ids, f.Columns[i].ID)
	}
	return datagrid.MapFields(f.idField(), ids...)
}

// GridColumns converts the column configurations.
// All invalid names and column configuration errors
// are returned joined.
func (f *File) GridColumns() (datagrid.Columns[map[string]any], error) {
	formatter, err := f.Formatter()
	if err != nil {
		return nil, err
	}
	var (
		errs    []error
		columns = make(datagrid.Columns[map[string]any], 0, len(f.Columns))
	)
	for i := range f.Columns {
		col, err := f.Columns[i].column(formatter)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		columns = append(columns, col)
	}
	if err := columns.Validate(f.Accessor()); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return columns, nil
}

// InitialSort returns the configured sort state.
func (f *File) InitialSort() (datagrid.SortState, error) {
	if f.Sort.Field == "" {
		return datagrid.SortState{}, nil
	}
	dir := datagrid.Ascending
	if f.Sort.Direction != "" {
		var err error
		dir, err = datagrid.ParseDirection(f.Sort.Direction)
		if err != nil {
			return datagrid.SortState{}, fmt.Errorf("gridconfig: sort: %w", err)
		}
	}
	return datagrid.SortState{Field: f.Sort.Field, Direction: dir}, nil
}

// LanguageTag returns the parsed Language
// or language.Und if not configured.
func (f *File) LanguageTag() (language.Tag, error) {
	if f.Language == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(f.Language)
	if err != nil {
		return language.Und, fmt.Errorf("gridconfig: language: %w", err)
	}
	return tag, nil
}

// Formatter returns a cell formatter
// using the configured placeholder and language.
func (f *File) Formatter() (*datagrid.Formatter, error) {
	tag, err := f.LanguageTag()
	if err != nil {
		return nil, err
	}
	formatter := datagrid.NewFormatter()
	if tag != language.Und {
		formatter.Language = tag
	}
	formatter.Placeholder = f.Placeholder
	return formatter, nil
}

// Options returns table options with the configured
// limit, empty text, initial sort, formatter and sorter.
func (f *File) Options() (datagrid.Options[map[string]any], error) {
	var opts datagrid.Options[map[string]any]
	sort, err := f.InitialSort()
	if err != nil {
		return opts, err
	}
	tag, err := f.LanguageTag()
	if err != nil {
		return opts, err
	}
	formatter, err := f.Formatter()
	if err != nil {
		return opts, err
	}
	opts.Limit = f.Limit
	opts.EmptyText = f.EmptyText
	opts.InitialSort = sort
	opts.Formatter = formatter
	opts.Sorter = datagrid.NewSorter(tag)
	return opts, nil
}

// GridStyle returns the configured style,
// Hover defaults to true.
func (f *File) GridStyle() datagrid.Style {
	style := datagrid.Style{
		Dark:    f.Style.Dark,
		Hover:   true,
		Striped: f.Style.Striped,
		Dense:   f.Style.Dense,
	}
	if f.Style.Hover != nil {
		style.Hover = *f.Style.Hover
	}
	return style
}

// NewTable returns a table for map rows configured by f.
func (f *File) NewTable() (*datagrid.Table[map[string]any], error) {
	columns, err := f.GridColumns()
	if err != nil {
		return nil, err
	}
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	return datagrid.NewTable(f.Accessor(), columns, opts)
}

func (f *File) idField() string {
	if f.IDField == "" {
		return DefaultIDField
	}
	return f.IDField
}

func (c *ColumnConfig) column(formatter *datagrid.Formatter) (col datagrid.Column[map[string]any], err error) {
	col = datagrid.Column[map[string]any]{
		ID:       c.ID,
		Label:    c.Label,
		MinWidth: c.MinWidth,
		MaxWidth: c.MaxWidth,
	}
	var errs []error
	if col.Type, err = datagrid.ParseCellType(c.Type); err != nil {
		errs = append(errs, err)
	}
	if c.Sort != "" {
		col.Sortable = true
		if col.Sort, err = datagrid.ParseSortType(c.Sort); err != nil {
			errs = append(errs, err)
		}
	}
	if col.Align, err = datagrid.ParseAlign(c.Align); err != nil {
		errs = append(errs, err)
	}
	if col.Fixed, err = datagrid.ParseFixed(c.Fixed); err != nil {
		errs = append(errs, err)
	}
	switch {
	case c.Format != "" && c.Currency != "":
		errs = append(errs, errors.New("format and currency are mutually exclusive"))
	case c.Format != "":
		col.Format = datagrid.PrintfFormat(c.Format)
	case c.Currency != "":
		col.Format = datagrid.CurrencyFormat(c.Currency, formatter)
	}
	if len(errs) > 0 {
		return col, &datagrid.ConfigError{Column: c.ID, Err: errors.Join(errs...)}
	}
	return col, nil
}
