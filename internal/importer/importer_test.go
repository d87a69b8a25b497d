package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestImportTextFromReader(t *testing.T) {
	input := `4 4 4
3 3 3

2 2 2
`
	result := ImportTextFromReader(strings.NewReader(input))

	require.Empty(t, result.Errors)
	require.Len(t, result.Boxes, 3)
	assert.Equal(t, 4, result.Boxes[0].DimA)
	assert.Equal(t, 2, result.Boxes[2].DimC)

	// Input indices are assigned in order
	for i, b := range result.Boxes {
		assert.Equal(t, i, b.Index)
	}
}

func TestImportTextSkipsMalformedLines(t *testing.T) {
	input := `4 4 4
not a box
5 5
3 3 3
1 2 -3
`
	result := ImportTextFromReader(strings.NewReader(input))

	require.Empty(t, result.Errors)
	assert.Len(t, result.Boxes, 2)
	assert.Len(t, result.Warnings, 3)
}

func TestImportTextEmptyInput(t *testing.T) {
	result := ImportTextFromReader(strings.NewReader(""))
	assert.NotEmpty(t, result.Errors)
	assert.Empty(t, result.Boxes)
}

func TestDetectCSVDelimiter(t *testing.T) {
	assert.Equal(t, ',', DetectCSVDelimiter([]byte("a,b,c\n1,2,3\n")))
	assert.Equal(t, ';', DetectCSVDelimiter([]byte("a;b;c\n1;2;3\n")))
	assert.Equal(t, '\t', DetectCSVDelimiter([]byte("a\tb\tc\n1\t2\t3\n")))
	assert.Equal(t, '|', DetectCSVDelimiter([]byte("a|b|c\n1|2|3\n")))
}

func TestDetectColumns(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"Name", "Width", "Depth", "Height", "Qty"})
	assert.True(t, hasHeader)
	assert.Equal(t, 0, mapping.Label)
	assert.Equal(t, 1, mapping.DimA)
	assert.Equal(t, 2, mapping.DimB)
	assert.Equal(t, 3, mapping.DimC)
	assert.Equal(t, 4, mapping.Quantity)

	// No recognizable header falls back to positional mapping
	mapping, hasHeader = DetectColumns([]string{"4", "4", "4"})
	assert.False(t, hasHeader)
	assert.Equal(t, 1, mapping.DimA)
}

func TestImportCSVFromReaderWithHeader(t *testing.T) {
	input := `name,width,depth,height,qty
Crate,10,8,6,1
Carton,5,4,3,2
`
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Boxes, 3) // quantity 2 expands into two boxes
	assert.Equal(t, "Crate", result.Boxes[0].Label)
	assert.Equal(t, "Carton #1", result.Boxes[1].Label)
	assert.Equal(t, "Carton #2", result.Boxes[2].Label)
	assert.Equal(t, result.Boxes[1].DimA, result.Boxes[2].DimA)
}

func TestImportCSVFromReaderRejectsBadRows(t *testing.T) {
	input := `width,depth,height
10,8,6
10,eight,6
`
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	assert.Len(t, result.Boxes, 1)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Invalid dimension")
}

func TestImportCSVMissingRequiredColumns(t *testing.T) {
	input := `name,width
Crate,10
`
	result := ImportCSVFromReader(strings.NewReader(input), ',')
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Required columns not found")
}

func TestImportExcel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boxes.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Label", "Dim1", "Dim2", "Dim3", "Quantity"},
		{"Crate", 10, 8, 6, 1},
		{"Carton", 5, 4, 3, 3},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := ImportExcel(path)

	require.Empty(t, result.Errors)
	assert.Len(t, result.Boxes, 4)
	assert.Equal(t, "Crate", result.Boxes[0].Label)
	assert.Equal(t, 10, result.Boxes[0].DimA)
}

func TestImportExcelMissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.NotEmpty(t, result.Errors)
}
