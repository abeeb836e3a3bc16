package export

import (
	"encoding/csv"
	"io"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter streams shipment records as CSV rows in the shared column
// layout.
type CSVWriter struct {
	csv  *csv.Writer
	cols []Column
}

// NewCSVWriter creates a CSVWriter that writes to w using the column
// layout derived from cat.
func NewCSVWriter(w io.Writer, cat *catalog.Catalog) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w), cols: Columns(cat)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	headers := make([]string, len(w.cols))
	for i, c := range w.cols {
		headers[i] = c.Header
	}
	return w.csv.Write(headers)
}

// WriteRecords converts a batch of records to CSV rows and writes them.
func (w *CSVWriter) WriteRecords(records []domain.ShipmentRecord) error {
	row := make([]string, len(w.cols))
	for i := range records {
		for j, c := range w.cols {
			row[j] = c.Value(&records[i])
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}
