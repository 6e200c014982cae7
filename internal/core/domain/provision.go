package domain

// Column is one declared table column.
type Column struct {
	Name string
	Type string
}

// TableSpec declares a table's full column set. Provisioning reconciles an
// existing table against the spec: declared-but-missing columns are added
// (existing rows keep their values), present-but-undeclared columns are
// dropped. Dropping is destructive by design; tables track schema
// evolution, containers never do.
type TableSpec struct {
	Name    string
	Columns []Column
}

// ColumnNames returns the declared column names in order.
func (t TableSpec) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
