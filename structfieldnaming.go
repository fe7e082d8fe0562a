package datagrid

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultStructFieldNaming uses the "col" struct tag as column ID,
// ignores fields tagged with "-" and uses the field name
// for untagged fields.
var DefaultStructFieldNaming = StructFieldNaming{
	Tag:    "col",
	Ignore: "-",
}

// StructFieldNaming defines how struct fields
// are mapped to column IDs.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as column ID.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column ID.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is the column ID of fields that are not mapped to a column.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a column ID in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (column string)
}

// String implements the fmt.Stringer interface for StructFieldNaming.
func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldColumn returns the column ID for a struct field.
func (n *StructFieldNaming) StructFieldColumn(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if n.Tag != "" {
		if tag, ok := structField.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

// ignored tells if a column ID marks a struct field
// that is not mapped to a column.
func (n *StructFieldNaming) ignored(column string) bool {
	return column == "" || (n != nil && n.Ignore != "" && column == n.Ignore)
}

// structFieldIndices maps the column IDs of the exported fields
// of structType, including the inlined fields of anonymously
// embedded structs, to their field index paths.
func (n *StructFieldNaming) structFieldIndices(structType reflect.Type) map[string][]int {
	indices := make(map[string][]int)
	for _, field := range StructFieldTypes(structType) {
		column := n.StructFieldColumn(field)
		if n.ignored(column) {
			continue
		}
		if _, exists := indices[column]; !exists {
			indices[column] = field.Index
		}
	}
	return indices
}
