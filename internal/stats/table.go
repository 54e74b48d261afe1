package stats

// Table is an in-memory list of records that stays sorted by its current
// field and order.
type Table struct {
	records []Record
	field   SortField
	order   SortOrder
}

// NewTable creates a table sorted by steps, ascending.
func NewTable(records ...Record) *Table {
	t := &Table{records: append([]Record(nil), records...)}
	t.resort()
	return t
}

// Add appends a record and re-sorts.
func (t *Table) Add(r Record) {
	t.records = append(t.records, r)
	t.resort()
}

// SetField changes the sort field and re-sorts.
func (t *Table) SetField(f SortField) {
	t.field = f
	t.resort()
}

// ToggleOrder flips between ascending and descending.
func (t *Table) ToggleOrder() {
	t.order = t.order.Toggle()
	t.resort()
}

// Field returns the current sort field.
func (t *Table) Field() SortField {
	return t.field
}

// Order returns the current sort order.
func (t *Table) Order() SortOrder {
	return t.order
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of the sorted records.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

func (t *Table) resort() {
	Sort(t.records, t.field, t.order)
}
