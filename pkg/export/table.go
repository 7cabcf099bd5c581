package export

// Table is the tabular content shared by the CSV and PDF renderers.
type Table struct {
	Columns []string
	Rows    [][]string
}
