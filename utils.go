package datagrid

import (
	"database/sql/driver"
	"go/token"
	"reflect"
	"strings"
	"time"
	"unicode"
)

// StructFieldTypes returns the exported fields of a struct type
// including the inlined fields of any anonymously embedded structs.
// The Index of every returned field is the full index path
// usable with reflect.Value.FieldByIndex.
func StructFieldTypes(structType reflect.Type) (fields []reflect.StructField) {
	return structFieldTypes(structType, nil)
}

func structFieldTypes(structType reflect.Type, parentIndex []int) (fields []reflect.StructField) {
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		field.Index = append(append([]int(nil), parentIndex...), i)
		switch {
		case field.Anonymous:
			fields = append(fields, structFieldTypes(field.Type, field.Index)...)
		case token.IsExported(field.Name):
			fields = append(fields, field)
		}
	}
	return fields
}

// SpacePascalCase inserts spaces before upper case
// characters within PascalCase like names.
// It also replaces underscore '_' characters with spaces.
// Used for the header labels of columns without Label.
func SpacePascalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	lastWasUpper := true
	lastWasSpace := true
	for _, r := range name {
		if r == '_' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasUpper = false
			lastWasSpace = true
			continue
		}
		isUpper := unicode.IsUpper(r)
		if isUpper && !lastWasUpper && !lastWasSpace {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		lastWasUpper = isUpper
		lastWasSpace = unicode.IsSpace(r)
	}
	return strings.TrimSpace(b.String())
}

// ValueIsNil return true if passed reflect.Value
// is not valid, nil (of a type that can be nil),
// or is of type struct{}
func ValueIsNil(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	case reflect.Struct:
		if t := val.Type(); t.NumField() == 0 && t.NumMethod() == 0 {
			// Treat a value of type struct{} like nil
			return true
		}
	}
	return false
}

// IsNull tells if a cell value counts as missing.
// That is the case for nil, nil pointers and other nil-able types,
// struct{}, the zero time.Time and driver.Valuer
// implementations returning a nil value like sql.NullString.
func IsNull(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	case driver.Valuer:
		if ValueIsNil(reflect.ValueOf(v)) {
			return true
		}
		dv, err := v.Value()
		return err != nil || dv == nil
	}
	return ValueIsNil(reflect.ValueOf(value))
}

// deref returns the value pointed to by value
// or value itself if it is not a non-nil pointer.
// driver.Valuer implementations are replaced by their value.
func deref(value any) any {
	if valuer, ok := value.(driver.Valuer); ok && !ValueIsNil(reflect.ValueOf(valuer)) {
		if dv, err := valuer.Value(); err == nil {
			return dv
		}
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}
