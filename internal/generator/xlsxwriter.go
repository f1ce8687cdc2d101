package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "Sheet1"

// XLSXWriter streams rows into an Excel workbook. It mirrors the
// CSVWriter interface so the batch runner can target either format.
type XLSXWriter struct {
	file     *excelize.File
	stream   *excelize.StreamWriter
	path     string
	nextRow  int
	rowCount int64
	mu       sync.Mutex
	closed   bool
}

// XLSXWriterConfig holds configuration for creating an XLSX writer
type XLSXWriterConfig struct {
	// Directory where the file will be created
	OutputDir string
	// Filename without extension (e.g., "transactions")
	Filename string
	// Column headers
	Headers []string
}

// NewXLSXWriter creates a streaming XLSX writer and writes the header row
func NewXLSXWriter(cfg XLSXWriterConfig) (*XLSXWriter, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	file := excelize.NewFile()
	stream, err := file.NewStreamWriter(xlsxSheetName)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create stream writer: %w", err)
	}

	w := &XLSXWriter{
		file:    file,
		stream:  stream,
		path:    filepath.Join(cfg.OutputDir, cfg.Filename+".xlsx"),
		nextRow: 1,
	}

	if len(cfg.Headers) > 0 {
		if err := w.writeRaw(cfg.Headers); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to write headers: %w", err)
		}
	}

	return w, nil
}

// WriteRow writes a single data row. This method is thread-safe.
func (w *XLSXWriter) WriteRow(row []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("writer is closed")
	}

	if err := w.writeRaw(row); err != nil {
		return err
	}
	w.rowCount++
	return nil
}

func (w *XLSXWriter) writeRaw(row []string) error {
	cell, err := excelize.CoordinatesToCellName(1, w.nextRow)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}

	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	if err := w.stream.SetRow(cell, values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", w.nextRow, err)
	}
	w.nextRow++
	return nil
}

// Close flushes the stream and saves the workbook
func (w *XLSXWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.stream.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush stream: %w", err)
	}

	if err := w.file.SaveAs(w.path); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return w.file.Close()
}

// RowCount returns the number of data rows written (excludes header)
func (w *XLSXWriter) RowCount() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rowCount
}

// Path returns the full path to the output file
func (w *XLSXWriter) Path() string {
	return w.path
}
