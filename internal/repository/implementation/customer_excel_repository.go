package implementation

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcosalmeidaedp/bot-cliente/internal/entity"
	"github.com/marcosalmeidaedp/bot-cliente/internal/repository/contract"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/normalize"

	"github.com/xuri/excelize/v2"
)

// mandatoryColumns are the logical column names every source must provide,
// matched against diacritic-stripped lower-cased headers. "Instalação" in the
// spreadsheet therefore satisfies "instalacao".
var mandatoryColumns = []string{"nome", "instalacao", "medidor", "latitude", "longitude"}

// ExcelCustomerRepository loads customers from the first sheet of an xlsx
// file. Row 1 is the header; every following row becomes one record.
type ExcelCustomerRepository struct {
	path string
}

func NewExcelCustomerRepository(path string) *ExcelCustomerRepository {
	return &ExcelCustomerRepository{path: path}
}

func (r *ExcelCustomerRepository) Source() string {
	return r.path
}

func (r *ExcelCustomerRepository) Load(ctx context.Context) ([]entity.Customer, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", contract.ErrSourceUnavailable, r.path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %s: %v", contract.ErrSourceUnavailable, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %s is empty", contract.ErrMissingColumn, sheet)
	}

	// Map normalized header name -> column index.
	columns := make(map[string]int, len(rows[0]))
	for idx, header := range rows[0] {
		name := strings.TrimSpace(normalize.Normalize(header))
		if name != "" {
			columns[name] = idx
		}
	}
	for _, col := range mandatoryColumns {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("%w: %q (sheet %s)", contract.ErrMissingColumn, col, sheet)
		}
	}

	customers := make([]entity.Customer, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(col string) string {
			idx := columns[col]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		c := entity.Customer{
			Nome:       cell("nome"),
			Instalacao: cell("instalacao"),
			Medidor:    cell("medidor"),
			Latitude:   cell("latitude"),
			Longitude:  cell("longitude"),
		}
		for name, idx := range columns {
			if isMandatory(name) || idx >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[idx]); v != "" {
				if c.Extra == nil {
					c.Extra = make(map[string]string)
				}
				c.Extra[name] = v
			}
		}
		customers = append(customers, c)
	}

	return customers, nil
}

func isMandatory(name string) bool {
	for _, col := range mandatoryColumns {
		if name == col {
			return true
		}
	}
	return false
}
