package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/storefront-api/internal/store"
)

// MaxBindParameters is the most placeholders PostgreSQL's extended protocol
// accepts in one statement.
const MaxBindParameters = 65535

// insertRows writes rows with one multi-row INSERT per batch. head is the
// statement up to and including VALUES; every row must have the same number
// of values. Batches are sized so no statement exceeds MaxBindParameters.
func insertRows(ctx context.Context, db store.DBTX, head string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	width := len(rows[0])
	perBatch := MaxBindParameters / width

	for start := 0; start < len(rows); start += perBatch {
		end := min(start+perBatch, len(rows))

		var b strings.Builder
		b.WriteString(head)
		args := make([]any, 0, (end-start)*width)
		for i, row := range rows[start:end] {
			if len(row) != width {
				return fmt.Errorf("row %d has %d values, expected %d", start+i, len(row), width)
			}
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('(')
			for j := range row {
				if j > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "$%d", len(args)+j+1)
			}
			b.WriteByte(')')
			args = append(args, row...)
		}

		if _, err := db.ExecContext(ctx, b.String(), args...); err != nil {
			return MapError(err)
		}
	}
	return nil
}
