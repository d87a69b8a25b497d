// Package importer provides plain-text, CSV, and Excel import functionality
// for box lists. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/BoxStack/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Boxes    []model.Box
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label    int
	DimA     int
	DimB     int
	DimC     int
	Quantity int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":    {"label", "name", "box", "box name", "description", "desc", "item"},
	"dima":     {"dim1", "width", "w", "x", "length", "len", "a"},
	"dimb":     {"dim2", "depth", "d", "y", "b"},
	"dimc":     {"dim3", "height", "h", "z", "c"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or a
// default positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Label:    -1,
		DimA:     -1,
		DimB:     -1,
		DimC:     -1,
		Quantity: -1,
	}

	assign := func(role string, i int) {
		switch role {
		case "label":
			if mapping.Label == -1 {
				mapping.Label = i
			}
		case "dima":
			if mapping.DimA == -1 {
				mapping.DimA = i
			}
		case "dimb":
			if mapping.DimB == -1 {
				mapping.DimB = i
			}
		case "dimc":
			if mapping.DimC == -1 {
				mapping.DimC = i
			}
		case "quantity":
			if mapping.Quantity == -1 {
				mapping.Quantity = i
			}
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					assign(role, i)
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Label, DimA, DimB, DimC, Quantity
		return ColumnMapping{
			Label:    0,
			DimA:     1,
			DimB:     2,
			DimC:     3,
			Quantity: 4,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a box and its quantity from a row using the given
// column mapping. Returns the box, the quantity, and any error message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, boxCount int) (model.Box, int, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Box %d", boxCount+1)
	}

	dims := make([]int, 3)
	for i, col := range []int{mapping.DimA, mapping.DimB, mapping.DimC} {
		raw := getCell(row, col)
		if raw == "" {
			return model.Box{}, 0, fmt.Sprintf("%s: Missing dimension %d", rowLabel, i+1)
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return model.Box{}, 0, fmt.Sprintf("%s: Invalid dimension '%s'", rowLabel, raw)
		}
		dims[i] = v
	}

	qty := 1
	if raw := getCell(row, mapping.Quantity); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return model.Box{}, 0, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, raw)
		}
		qty = v
	}

	if dims[0] <= 0 || dims[1] <= 0 || dims[2] <= 0 || qty <= 0 {
		return model.Box{}, 0, fmt.Sprintf("%s: Dimensions and quantity must be positive", rowLabel)
	}

	return model.NewBox(label, dims[0], dims[1], dims[2]), qty, ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportText imports boxes from a plain text file: one box per line as three
// whitespace-separated positive integers. Malformed lines are skipped with a
// warning rather than aborting the import.
func ImportText(path string) ImportResult {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	defer f.Close()
	return ImportTextFromReader(f)
}

// ImportTextFromReader is the reader-based form of ImportText.
func ImportTextFromReader(r io.Reader) ImportResult {
	result := ImportResult{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Line %d: expected 3 dimensions, got %d; skipping", lineNum, len(fields)))
			continue
		}

		dims := make([]int, 3)
		ok := true
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil || v <= 0 {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Line %d: invalid box dimensions %q; skipping", lineNum, line))
				ok = false
				break
			}
			dims[i] = v
		}
		if !ok {
			continue
		}

		result.Boxes = appendBox(result.Boxes,
			model.NewBox(fmt.Sprintf("Box %d", len(result.Boxes)+1), dims[0], dims[1], dims[2]))
	}
	if err := scanner.Err(); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read file: %v", err))
	}

	if len(result.Boxes) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No valid boxes found")
	}

	return result
}

// ImportCSV imports boxes from a CSV file. It automatically detects the
// delimiter and maps columns by header names. Supports comma, semicolon,
// tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports boxes from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already
// known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports boxes from an Excel (.xlsx) file. Reads the first
// sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, parses each row into a box, and expands
// the quantity column into identical boxes.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.DimA == -1 {
			missing = append(missing, "Dim1")
		}
		if mapping.DimB == -1 {
			missing = append(missing, "Dim2")
		}
		if mapping.DimC == -1 {
			missing = append(missing, "Dim3")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if the first data column is numeric. If not,
		// treat the row as an unrecognized header and skip it.
		if len(rows[0]) >= 4 {
			if _, err := strconv.Atoi(strings.TrimSpace(rows[0][1])); err != nil {
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		box, qty, errMsg := parseRow(row, mapping, rowLabel, len(result.Boxes))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		for n := 0; n < qty; n++ {
			b := box
			if qty > 1 {
				b = model.NewBox(fmt.Sprintf("%s #%d", box.Label, n+1), box.DimA, box.DimB, box.DimC)
			}
			result.Boxes = appendBox(result.Boxes, b)
		}
	}

	return result
}

// appendBox adds a box to the list, assigning its input index.
func appendBox(boxes []model.Box, b model.Box) []model.Box {
	b.Index = len(boxes)
	return append(boxes, b)
}
