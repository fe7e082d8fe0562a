package datagrid

import (
	"database/sql"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpacePascalCase(t *testing.T) {
	tests := []struct {
		testName string
		name     string
		want     string
	}{
		{testName: "", name: "", want: ""},
		{testName: "HelloWorld", name: "HelloWorld", want: "Hello World"},
		{testName: "_Hello_World", name: "_Hello_World", want: "Hello World"},
		{testName: "helloWorld", name: "helloWorld", want: "hello World"},
		{testName: "helloWorld_", name: "helloWorld_", want: "hello World"},
		{testName: "dueDate", name: "due_date", want: "due date"},
		{testName: "ThisHasMoreSpacesForSure", name: "ThisHasMoreSpacesForSure", want: "This Has More Spaces For Sure"},
		{testName: "ThisHasMore_Spaces__ForSure", name: "ThisHasMore_Spaces__ForSure", want: "This Has More Spaces For Sure"},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			require.Equal(t, tt.want, SpacePascalCase(tt.name))
		})
	}
}

func TestIsNull(t *testing.T) {
	var (
		nilTime  *time.Time
		nilSlice []int
		nilMap   map[string]any
		nilNull  *sql.NullInt64
	)
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: true},
		{name: "nil pointer", value: nilTime, want: true},
		{name: "nil slice", value: nilSlice, want: true},
		{name: "nil map", value: nilMap, want: true},
		{name: "empty struct", value: struct{}{}, want: true},
		{name: "zero time", value: time.Time{}, want: true},
		{name: "null sql", value: sql.NullInt64{}, want: true},
		{name: "nil sql pointer", value: nilNull, want: true},
		{name: "empty string", value: "", want: false},
		{name: "zero int", value: 0, want: false},
		{name: "false", value: false, want: false},
		{name: "time", value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: false},
		{name: "valid sql", value: sql.NullInt64{Int64: 0, Valid: true}, want: false},
		{name: "empty slice", value: []int{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsNull(tt.value))
		})
	}
}

func TestStructFieldTypes(t *testing.T) {
	type Inner struct {
		A int
		b int
		C int
	}
	type Outer struct {
		X int
		Inner
		Y int
	}
	var paths [][]int
	var names []string
	for _, f := range StructFieldTypes(reflect.TypeOf(&Outer{})) {
		names = append(names, f.Name)
		paths = append(paths, f.Index)
	}
	require.Equal(t, []string{"X", "A", "C", "Y"}, names)
	require.Equal(t, [][]int{{0}, {1, 0}, {1, 2}, {2}}, paths)
	require.Nil(t, StructFieldTypes(reflect.TypeOf(0)))
}
