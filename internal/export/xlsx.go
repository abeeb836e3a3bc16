package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
)

const (
	shipmentsSheet = "Shipments"
	statsSheet     = "Statistics"
)

// BuildWorkbook renders the records into an Excel workbook: one
// Shipments sheet with an invoice-group heading row before each
// invoice's shipments, and a Statistics sheet summarizing the run.
// Records are grouped by invoice number in first-seen order.
func BuildWorkbook(cat *catalog.Catalog, records []domain.ShipmentRecord, stats domain.RunStats) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", shipmentsSheet)
	cols := Columns(cat)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return nil, fmt.Errorf("export: header style: %w", err)
	}
	groupStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	})
	if err != nil {
		return nil, fmt.Errorf("export: group style: %w", err)
	}

	for i, c := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(shipmentsSheet, cell, c.Header); err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(cols))
	if err := f.SetCellStyle(shipmentsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("export: header row style: %w", err)
	}

	row := 2
	for _, group := range groupByInvoice(records) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		label := fmt.Sprintf("Invoice: %s (%d shipments)", group.invoiceNumber, len(group.records))
		if err := f.SetCellValue(shipmentsSheet, cell, label); err != nil {
			return nil, fmt.Errorf("export: group row: %w", err)
		}
		start, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(len(cols), row)
		if err := f.SetCellStyle(shipmentsSheet, start, end, groupStyle); err != nil {
			return nil, fmt.Errorf("export: group row style: %w", err)
		}
		row++

		for i := range group.records {
			for j, c := range cols {
				v := c.Value(&group.records[i])
				if v == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(j+1, row)
				if err != nil {
					return nil, fmt.Errorf("export: data cell: %w", err)
				}
				if err := f.SetCellValue(shipmentsSheet, cell, v); err != nil {
					return nil, fmt.Errorf("export: data cell: %w", err)
				}
			}
			row++
		}
	}

	if err := f.SetColWidth(shipmentsSheet, "A", "F", 22); err != nil {
		return nil, fmt.Errorf("export: column width: %w", err)
	}
	if err := f.SetPanes(shipmentsSheet, &excelize.Panes{
		Freeze: true, XSplit: 2, YSplit: 1, TopLeftCell: "C2", ActivePane: "bottomRight",
	}); err != nil {
		return nil, fmt.Errorf("export: freeze panes: %w", err)
	}

	if err := writeStatsSheet(f, stats); err != nil {
		return nil, err
	}
	return f, nil
}

type invoiceGroup struct {
	invoiceNumber string
	records       []domain.ShipmentRecord
}

func groupByInvoice(records []domain.ShipmentRecord) []invoiceGroup {
	var groups []invoiceGroup
	index := make(map[string]int)
	for _, r := range records {
		key := r.InvoiceNumber
		if key == "" {
			key = "Unknown"
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, invoiceGroup{invoiceNumber: key})
		}
		groups[i].records = append(groups[i].records, r)
	}
	return groups
}

func writeStatsSheet(f *excelize.File, stats domain.RunStats) error {
	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("export: stats sheet: %w", err)
	}

	rows := [][2]any{
		{"Total Invoices", stats.TotalInvoices},
		{"Total Shipments", stats.TotalShipments},
		{"Identity Corrected", stats.IdentityCorrected},
		{"Incentive Sign Warnings", stats.IncentiveSignWarnings},
		{"Validation Errors", stats.ValidationErrors},
		{"Validation Warnings", stats.ValidationWarnings},
		{"Total Published", fmt.Sprintf("$%.2f", stats.TotalPublished)},
		{"Total Incentive", fmt.Sprintf("$%.2f", stats.TotalIncentive)},
		{"Total Billed", fmt.Sprintf("$%.2f", stats.TotalBilled)},
	}
	for _, name := range sortedKeys(stats.ServiceTypes) {
		rows = append(rows, [2]any{"Service: " + name, stats.ServiceTypes[name]})
	}
	for _, zone := range sortedKeys(stats.Zones) {
		rows = append(rows, [2]any{"Zone " + zone, stats.Zones[zone]})
	}

	for i, kv := range rows {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(statsSheet, keyCell, kv[0]); err != nil {
			return fmt.Errorf("export: stats cell: %w", err)
		}
		if err := f.SetCellValue(statsSheet, valCell, kv[1]); err != nil {
			return fmt.Errorf("export: stats cell: %w", err)
		}
	}
	return f.SetColWidth(statsSheet, "A", "A", 28)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
