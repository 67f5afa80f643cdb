package output

import (
	"bytes"
	"strings"
	"text/tabwriter"
)

// TableWriter writes kubectl-style aligned columns.
type TableWriter struct {
	buf  bytes.Buffer
	w    *tabwriter.Writer
	rows int
}

// NewTableWriter creates a TableWriter with the given header columns.
// Columns are padded by three spaces.
func NewTableWriter(header ...string) *TableWriter {
	t := &TableWriter{}
	t.w = tabwriter.NewWriter(&t.buf, 0, 0, 3, ' ', 0)
	if len(header) > 0 {
		t.write(header)
	}
	return t
}

// Row writes a data row. Empty cells are shown as "-".
func (t *TableWriter) Row(values ...string) {
	cells := make([]string, len(values))
	for i, v := range values {
		if v == "" {
			v = "-"
		}
		cells[i] = v
	}
	t.write(cells)
	t.rows++
}

// Rows returns the number of data rows written.
func (t *TableWriter) Rows() int {
	return t.rows
}

// String flushes the writer and returns the table without trailing newline.
func (t *TableWriter) String() string {
	_ = t.w.Flush()
	return strings.TrimSuffix(t.buf.String(), "\n")
}

func (t *TableWriter) write(cells []string) {
	_, _ = t.w.Write([]byte(strings.Join(cells, "\t") + "\n"))
}
