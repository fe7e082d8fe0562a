package datagrid

import (
	"fmt"
	"reflect"
	"slices"
)

// FieldAccessor reads the identity and the named fields of rows of type R.
// The table engine has no other knowledge about rows.
type FieldAccessor[R any] interface {
	// RowID returns the stable unique identity of a row.
	RowID(row R) string
	// HasField tells if rows have a field that can be addressed by name.
	HasField(name string) bool
	// FieldValue returns the value of a named field of a row
	// or nil if the field does not exist.
	FieldValue(row R, name string) any
}

// StructFields returns a FieldAccessor for struct rows
// using DefaultStructFieldNaming.
// R must be a struct or a pointer to a struct type, else StructFields panics.
// The row ID is read from the field named "id" by DefaultStructFieldNaming,
// falling back to a field named "ID" or "Id".
func StructFields[R any]() *StructFieldAccessor[R] {
	return NewStructFieldAccessor[R](&DefaultStructFieldNaming, "id")
}

// StructFieldAccessor implements FieldAccessor for struct rows
// via reflection.
type StructFieldAccessor[R any] struct {
	indices map[string][]int
	idIndex []int
}

// NewStructFieldAccessor returns a StructFieldAccessor for R
// using naming to map struct fields to column IDs
// and the field mapped to idColumn as row ID.
// R must be a struct or a pointer to a struct type, else it panics.
func NewStructFieldAccessor[R any](naming *StructFieldNaming, idColumn string) *StructFieldAccessor[R] {
	structType := reflect.TypeFor[R]()
	for structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		panic(fmt.Errorf("datagrid: row type %s is not a struct", reflect.TypeFor[R]()))
	}
	a := &StructFieldAccessor[R]{indices: naming.structFieldIndices(structType)}
	a.idIndex = a.indices[idColumn]
	if a.idIndex == nil {
		for _, name := range []string{"ID", "Id"} {
			if field, ok := structType.FieldByName(name); ok && len(field.Index) > 0 {
				a.idIndex = field.Index
				break
			}
		}
	}
	return a
}

// Fields returns the sorted column IDs of all mapped struct fields.
func (a *StructFieldAccessor[R]) Fields() []string {
	names := make([]string, 0, len(a.indices))
	for name := range a.indices {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (a *StructFieldAccessor[R]) HasField(name string) bool {
	_, ok := a.indices[name]
	return ok
}

func (a *StructFieldAccessor[R]) FieldValue(row R, name string) any {
	index, ok := a.indices[name]
	if !ok {
		return nil
	}
	return a.field(row, index)
}

// RowID returns the ID field formatted with fmt.Sprint
// or an empty string if the row type has no ID field.
func (a *StructFieldAccessor[R]) RowID(row R) string {
	if a.idIndex == nil {
		return ""
	}
	id := a.field(row, a.idIndex)
	if IsNull(id) {
		return ""
	}
	return fmt.Sprint(deref(id))
}

func (a *StructFieldAccessor[R]) field(row R, index []int) any {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}
	f, err := v.FieldByIndexErr(index)
	if err != nil {
		// nil pointer to embedded struct
		return nil
	}
	return f.Interface()
}

// MapFields returns a FieldAccessor for map[string]any rows
// with the row ID stored under idKey.
// If keys are passed, then only those keys and idKey
// are valid field names, else every name is accepted.
func MapFields(idKey string, keys ...string) MapFieldAccessor {
	return MapFieldAccessor{IDKey: idKey, Keys: keys}
}

// MapFieldAccessor implements FieldAccessor for map[string]any rows.
type MapFieldAccessor struct {
	IDKey string
	// Keys restricts the valid field names if not empty.
	Keys []string
}

func (a MapFieldAccessor) RowID(row map[string]any) string {
	id := row[a.IDKey]
	if IsNull(id) {
		return ""
	}
	return fmt.Sprint(deref(id))
}

func (a MapFieldAccessor) HasField(name string) bool {
	if len(a.Keys) == 0 || name == a.IDKey {
		return true
	}
	return slices.Contains(a.Keys, name)
}

func (a MapFieldAccessor) FieldValue(row map[string]any, name string) any {
	return row[name]
}
