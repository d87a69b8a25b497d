package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BoxStack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStack() model.Stack {
	return model.Stack{
		{Width: 10, Depth: 12, Height: 4, SourceBox: 0},
		{Width: 7, Depth: 9, Height: 6, SourceBox: 1},
		{Width: 3, Depth: 4, Height: 5, SourceBox: 2},
	}
}

func assertFileWritten(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.pdf")
	require.NoError(t, ExportPDF(path, sampleStack()))
	assertFileWritten(t, path)
}

func TestExportPDFEmptyStack(t *testing.T) {
	err := ExportPDF(filepath.Join(t.TempDir(), "stack.pdf"), model.Stack{})
	assert.Error(t, err)
}

func TestExportLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	require.NoError(t, ExportLabels(path, sampleStack()))
	assertFileWritten(t, path)
}

func TestExportLabelsManyLevels(t *testing.T) {
	// More levels than fit on one label page forces a page break.
	var stack model.Stack
	dim := 80
	for i := 0; i < 35; i++ {
		stack = append(stack, model.Orientation{
			Width: dim - i, Depth: dim - i + 5, Height: 2, SourceBox: i,
		})
	}

	path := filepath.Join(t.TempDir(), "labels.pdf")
	require.NoError(t, ExportLabels(path, stack))
	assertFileWritten(t, path)
}

func TestExportLabelsEmptyStack(t *testing.T) {
	err := ExportLabels(filepath.Join(t.TempDir(), "labels.pdf"), nil)
	assert.Error(t, err)
}

func TestExportDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.dxf")
	require.NoError(t, ExportDXF(path, sampleStack()))
	assertFileWritten(t, path)
}

func TestExportDXFEmptyStack(t *testing.T) {
	err := ExportDXF(filepath.Join(t.TempDir(), "stack.dxf"), nil)
	assert.Error(t, err)
}
