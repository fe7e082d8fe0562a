package datagrid

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter compares cell values and sorts rows.
//
// A Sorter owns a collator for locale-aware string comparison.
// Collators keep internal buffers, so a Sorter must not be used
// concurrently. Every Table has its own Sorter,
// the package level functions Compare and SortedView
// borrow one from a pool.
type Sorter struct {
	lang     language.Tag
	collator *collate.Collator
	logger   *slog.Logger

	// number of recovered panics of custom comparators
	// of the current sort
	panics int
}

// NewSorter returns a Sorter comparing strings case-insensitive
// according to the collation rules of lang.
func NewSorter(lang language.Tag) *Sorter {
	return &Sorter{
		lang:     lang,
		collator: collate.New(lang, collate.IgnoreCase),
		logger:   slog.Default(),
	}
}

// WithLogger returns the Sorter after setting the logger
// used for warnings about panicking custom comparators.
func (s *Sorter) WithLogger(logger *slog.Logger) *Sorter {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Language returns the collation language of the Sorter.
func (s *Sorter) Language() language.Tag {
	return s.lang
}

// DefaultLanguage is the collation language of Sorters
// created by the package, language.Und selects the CLDR root collation.
var DefaultLanguage = language.Und

var sorterPool = sync.Pool{
	New: func() any { return NewSorter(DefaultLanguage) },
}

func borrowSorter() (s *Sorter, giveBack func()) {
	s = sorterPool.Get().(*Sorter)
	return s, func() { sorterPool.Put(s) }
}

// Compare compares two cell values ascending according to sortType
// using the root collation for strings.
// It returns -1 if a sorts before b, 1 if a sorts after b and 0 else.
// Null values sort after all other values.
func Compare(a, b any, sortType SortType) int {
	s, giveBack := borrowSorter()
	defer giveBack()
	return s.Compare(a, b, sortType)
}

// Compare compares two cell values ascending according to sortType.
// It returns -1 if a sorts before b, 1 if a sorts after b and 0 else.
// Null values sort after all other values.
func (s *Sorter) Compare(a, b any, sortType SortType) int {
	return s.compareKeys(s.key(a, sortType), s.key(b, sortType), sortType)
}

// sortKey holds a cell value prepared for comparison.
type sortKey struct {
	null    bool
	num     float64
	hasNum  bool
	time    time.Time
	hasTime bool
	str     string
	raw     any
}

func (s *Sorter) key(value any, sortType SortType) (k sortKey) {
	if IsNull(value) {
		return sortKey{null: true}
	}
	switch sortType.(type) {
	case SortString:
		k.str = displayString(value)
	case SortNumber:
		k.num, k.hasNum = ParseNumber(value)
		k.null = !k.hasNum || math.IsNaN(k.num)
	case SortCurrency:
		k.num, k.hasNum = ParseCurrency(value)
		k.null = !k.hasNum || math.IsNaN(k.num)
	case SortDate:
		k.time, k.hasTime = ParseDate(value)
		k.null = !k.hasTime
	case SortCustom:
		k.raw = value
	default:
		k.num, k.hasNum = numberValue(value)
		if k.hasNum && math.IsNaN(k.num) {
			k.hasNum = false
		}
		if !k.hasNum {
			k.time, k.hasTime = isoTimeValue(value)
		}
		k.str = displayString(value)
	}
	return k
}

func (s *Sorter) compareKeys(a, b sortKey, sortType SortType) int {
	switch {
	case a.null && b.null:
		return 0
	case a.null:
		return 1
	case b.null:
		return -1
	}
	switch t := sortType.(type) {
	case SortString:
		return sign(s.collator.CompareString(a.str, b.str))
	case SortNumber, SortCurrency:
		return compareFloats(a.num, b.num)
	case SortDate:
		return a.time.Compare(b.time)
	case SortCustom:
		return s.compareCustom(t.Compare, a.raw, b.raw)
	default:
		switch {
		case a.hasNum && b.hasNum:
			return compareFloats(a.num, b.num)
		case a.hasTime && b.hasTime:
			return a.time.Compare(b.time)
		}
		return sign(s.collator.CompareString(a.str, b.str))
	}
}

// compareCustom calls compare and treats a and b as equal
// if it panics.
func (s *Sorter) compareCustom(compare func(a, b any) int, a, b any) (result int) {
	defer func() {
		if r := recover(); r != nil {
			s.panics++
			if s.panics == 1 {
				s.logger.Warn("datagrid: recovered panic in custom sort comparator", "panic", r)
			}
			result = 0
		}
	}()
	return sign(compare(a, b))
}

// SortedView returns the rows ordered by the column of state
// without modifying rows, using a pooled Sorter.
// See SortedViewWith.
func SortedView[R any](rows []R, state SortState, columns Columns[R], accessor FieldAccessor[R]) []R {
	s, giveBack := borrowSorter()
	defer giveBack()
	return SortedViewWith(s, rows, state, columns, accessor)
}

// SortedViewWith returns the rows ordered by the column of state.
//
// If state is unsorted, the column is not found or has no SortType,
// then rows is returned unchanged.
// Otherwise a new slice is returned and rows is not modified.
// The ascending sort is stable, rows comparing equal keep their input order.
// Descending order is the exact reverse of the ascending order
// of the non-null values, null values are always sorted last
// in input order.
func SortedViewWith[R any](sorter *Sorter, rows []R, state SortState, columns Columns[R], accessor FieldAccessor[R]) []R {
	if !state.IsSorted() || len(rows) < 2 {
		return rows
	}
	col := columns.ByID(state.Field)
	if col == nil || col.Sort == nil {
		return rows
	}

	type keyedRow struct {
		row R
		key sortKey
	}
	keyed := make([]keyedRow, len(rows))
	for i, row := range rows {
		keyed[i] = keyedRow{row: row, key: sorter.key(sortValue(col, row, accessor), col.Sort)}
	}

	sorter.panics = 0
	slices.SortStableFunc(keyed, func(a, b keyedRow) int {
		switch {
		case a.key.null && b.key.null:
			return 0
		case a.key.null:
			return 1
		case b.key.null:
			return -1
		}
		return sorter.compareKeys(a.key, b.key, col.Sort)
	})
	if state.Direction == Descending {
		numDefined := len(keyed)
		for numDefined > 0 && keyed[numDefined-1].key.null {
			numDefined--
		}
		slices.Reverse(keyed[:numDefined])
	}
	if sorter.panics > 0 {
		sorter.logger.Warn("datagrid: custom sort comparator panicked, affected rows compared as equal",
			"column", col.ID,
			"panics", sorter.panics,
		)
	}

	sorted := make([]R, len(keyed))
	for i := range keyed {
		sorted[i] = keyed[i].row
	}
	return sorted
}

// sortValue returns the value of the column used for sorting.
// Custom columns that don't address a row field
// are sorted by the whole row.
func sortValue[R any](col *Column[R], row R, accessor FieldAccessor[R]) any {
	if col.IsCustom() && !accessor.HasField(col.ID) {
		return row
	}
	return accessor.FieldValue(row, col.ID)
}

func isoTimeValue(value any) (time.Time, bool) {
	if t, ok := deref(value).(time.Time); ok {
		return t, true
	}
	str, ok := stringValue(value)
	if !ok {
		return time.Time{}, false
	}
	t, err := ParseISOTime(str)
	return t, err == nil
}

func displayString(value any) string {
	if str, ok := stringValue(value); ok {
		return str
	}
	return fmt.Sprint(deref(value))
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}
