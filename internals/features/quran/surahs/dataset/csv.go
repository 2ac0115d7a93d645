package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
)

// CSVSource reads a CSV export of the dataset with a header row.
type CSVSource struct {
	Path string
}

func (s CSVSource) Name() string { return "csv:" + s.Path }

func (s CSVSource) Load(ctx context.Context) (Table, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	all, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(all) == 0 {
		return Table{}, fmt.Errorf("csv is empty")
	}
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}
	return ParseRows(all[0], all[1:])
}
