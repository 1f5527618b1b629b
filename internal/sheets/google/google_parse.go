package google

import (
	"fmt"
	"strings"

	"khata/internal/core"
	ports "khata/internal/sheets"
)

// rowsFromValues maps a raw value grid to header-keyed rows. The first row
// is the header; short rows are padded with empty cells and cells beyond the
// header are ignored.
func rowsFromValues(values [][]any) []ports.Row {
	if len(values) < 2 {
		return nil
	}
	header := toStrings(values[0])
	out := make([]ports.Row, 0, len(values)-1)
	for _, raw := range values[1:] {
		cells := toStrings(raw)
		row := ports.Row{}
		empty := true
		for i, col := range header {
			if col == "" {
				continue
			}
			v := ""
			if i < len(cells) {
				v = cells[i]
			}
			if v != "" {
				empty = false
			}
			row[col] = v
		}
		if empty {
			continue
		}
		out = append(out, row)
	}
	return out
}

func saleFromRow(row ports.Row) core.SaleRow {
	return core.SaleRow{
		Date:        row["Date"],
		Customer:    row["Customer"],
		Quantity:    row["Quantity"],
		UnitPrice:   row["Unit Price"],
		TotalAmount: row["Total Amount"],
		Timestamp:   row["Timestamp"],
	}
}

func expenseFromRow(row ports.Row) core.ExpenseRow {
	return core.ExpenseRow{
		Date:        row["Date"],
		Category:    row["Category"],
		Description: row["Description"],
		Amount:      row["Amount"],
		Timestamp:   row["Timestamp"],
	}
}

func toStrings(in []any) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}
