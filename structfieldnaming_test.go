package datagrid

import (
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructFieldNaming_structFieldIndices(t *testing.T) {
	type StructWithFloat struct {
		Float float64 `col:"float"`
	}
	upperNaming := &StructFieldNaming{Tag: "col", Ignore: "-", Untagged: SpacePascalCase}
	tests := []struct {
		name   string
		naming *StructFieldNaming
		strct  any
		want   map[string][]int
	}{
		{
			name:   "empty struct, nil naming",
			naming: nil,
			strct:  struct{}{},
			want:   map[string][]int{},
		},
		{
			name:   "exported and private names, nil naming",
			naming: nil,
			strct: struct {
				Int    int
				Bool   bool
				hidden string
			}{},
			want: map[string][]int{"Int": {0}, "Bool": {1}},
		},
		{
			name:   "embedded, nil naming",
			naming: nil,
			strct: struct {
				Int int
				StructWithFloat
				Struct struct {
					Sub bool
				}
			}{},
			want: map[string][]int{"Int": {0}, "Float": {1, 0}, "Struct": {2}},
		},
		{
			name:   "tags, DefaultStructFieldNaming",
			naming: &DefaultStructFieldNaming,
			strct: struct {
				Int        int  `col:"integer,omitempty"`
				Bool       bool `col:"-"`
				hidden     string
				HelloWorld string
			}{},
			want: map[string][]int{"integer": {0}, "HelloWorld": {3}},
		},
		{
			name:   "embedded, DefaultStructFieldNaming",
			naming: &DefaultStructFieldNaming,
			strct: struct {
				hidden string `col:"-"`
				Int    int
				StructWithFloat
			}{},
			want: map[string][]int{"Int": {1}, "float": {2, 0}},
		},
		{
			name:   "untagged func",
			naming: upperNaming,
			strct: struct {
				HelloWorld string
				Tagged     string `col:"tagged"`
			}{},
			want: map[string][]int{"Hello World": {0}, "tagged": {1}},
		},
		{
			name:   "first of duplicate columns wins",
			naming: &DefaultStructFieldNaming,
			strct: struct {
				A string `col:"x"`
				B string `col:"x"`
			}{},
			want: map[string][]int{"x": {0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.naming.structFieldIndices(reflect.TypeOf(tt.strct))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStructFieldNaming_String(t *testing.T) {
	var naming *StructFieldNaming
	require.Equal(t, `StructFieldNaming{Tag: "", Ignore: ""}`, naming.String())
	require.Equal(t, `StructFieldNaming{Tag: "col", Ignore: "-"}`, DefaultStructFieldNaming.String())
}

func TestStructFieldAccessor(t *testing.T) {
	type Base struct {
		ID string
	}
	type order struct {
		Base
		Total  float64 `col:"total"`
		Secret string  `col:"-"`
	}
	accessor := StructFields[*order]()
	row := &order{Base: Base{ID: "o-1"}, Total: 9.5}

	require.Equal(t, "o-1", accessor.RowID(row), "falls back to embedded ID field")
	require.Equal(t, []string{"ID", "total"}, accessor.Fields())
	require.True(t, accessor.HasField("total"))
	require.False(t, accessor.HasField("Secret"))
	require.Equal(t, 9.5, accessor.FieldValue(row, "total"))
	require.Nil(t, accessor.FieldValue(row, "missing"))
	require.Nil(t, accessor.FieldValue(nil, "total"), "nil row")
	require.Equal(t, "", accessor.RowID(nil))

	require.Panics(t, func() { StructFields[string]() })
}

func TestMapFieldAccessor(t *testing.T) {
	row := map[string]any{"key": 7, "name": "Ada"}

	open := MapFields("key")
	require.Equal(t, "7", open.RowID(row))
	require.True(t, open.HasField("anything"))
	require.Nil(t, open.FieldValue(row, "anything"))

	restricted := MapFields("key", "name")
	require.True(t, restricted.HasField("key"))
	require.True(t, restricted.HasField("name"))
	require.False(t, restricted.HasField("email"))
	require.Equal(t, "Ada", restricted.FieldValue(row, "name"))
	require.Equal(t, "", restricted.RowID(map[string]any{}))
	require.True(t, slices.Equal([]string{"name"}, restricted.Keys))
}
