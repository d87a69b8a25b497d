// Package export provides functionality for exporting stack results to
// various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BoxStack/internal/model"
)

// levelColor represents an RGB color for a stack level.
type levelColor struct {
	R, G, B int
}

// levelColors cycles through distinct fills so adjacent levels stay readable.
var levelColors = []levelColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// ExportPDF generates a PDF document for a solved stack: a front elevation
// and a plan view of the nested footprints on the first page, followed by a
// summary page listing every level top-to-bottom.
func ExportPDF(path string, stack model.Stack) error {
	if len(stack) == 0 {
		return fmt.Errorf("no stack to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderElevationPage(pdf, stack)

	pdf.AddPage()
	renderSummaryPage(pdf, stack)

	return pdf.OutputFileAndClose(path)
}

// renderElevationPage draws the stack side-on (width x height per level) on
// the left and the nested footprints seen from above on the right.
func renderElevationPage(pdf *fpdf.Fpdf, stack model.Stack) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Box Stack: %d levels, total height %d", len(stack), stack.Height())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	halfWidth := (pageWidth - marginLeft - marginRight - 10) / 2
	drawHeight := pageHeight - drawAreaTop - marginBottom

	// Scale the elevation so the widest level and the total height both fit.
	maxWidth := 0
	for _, o := range stack {
		if o.Width > maxWidth {
			maxWidth = o.Width
		}
	}
	scale := math.Min(halfWidth/float64(maxWidth), drawHeight/float64(stack.Height()))

	baseY := drawAreaTop + float64(stack.Height())*scale
	centerX := marginLeft + halfWidth/2

	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.3)

	y := baseY
	for i, o := range stack {
		w := float64(o.Width) * scale
		h := float64(o.Height) * scale
		col := levelColors[i%len(levelColors)]

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(centerX-w/2, y-h, w, h, "FD")

		if w > 14 && h > 6 {
			label := fmt.Sprintf("%dx%dx%d", o.Width, o.Depth, o.Height)
			pdf.SetFont("Helvetica", "", labelFontSize(w, h))
			pdf.SetTextColor(0, 0, 0)
			labelW := pdf.GetStringWidth(label)
			if labelW < w-2 {
				pdf.SetXY(centerX-labelW/2, y-h/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}

		y -= h
	}

	// Plan view: footprints nest strictly, so draw bottom-up around a shared
	// center.
	planX := marginLeft + halfWidth + 10
	planScale := math.Min(halfWidth/float64(stack[0].Width), drawHeight/float64(stack[0].Depth))
	planCenterX := planX + float64(stack[0].Width)*planScale/2
	planCenterY := drawAreaTop + float64(stack[0].Depth)*planScale/2

	for i, o := range stack {
		w := float64(o.Width) * planScale
		d := float64(o.Depth) * planScale
		col := levelColors[i%len(levelColors)]

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(planCenterX-w/2, planCenterY-d/2, w, d, "FD")
	}

	// View captions
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(marginLeft, baseY+2)
	pdf.CellFormat(halfWidth, 4, "Front elevation", "", 0, "C", false, 0, "")
	pdf.SetXY(planX, drawAreaTop+float64(stack[0].Depth)*planScale+2)
	pdf.CellFormat(halfWidth, 4, "Plan view (nested footprints)", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the summary table, one row per level in
// top-to-bottom order.
func renderSummaryPage(pdf *fpdf.Fpdf, stack model.Stack) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Stack Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	summaryItems := []struct {
		label string
		value string
	}{
		{"Levels", fmt.Sprintf("%d", len(stack))},
		{"Total Height", fmt.Sprintf("%d", stack.Height())},
		{"Base Footprint", fmt.Sprintf("%d x %d", stack[0].Width, stack[0].Depth)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Level table, top of the stack first
	colWidths := []float64{20, 30, 30, 30, 40}
	headers := []string{"Level", "Width", "Depth", "Height", "Cum. Height"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, level := range stack.Levels() {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", len(stack)-i),
			fmt.Sprintf("%d", level.Width),
			fmt.Sprintf("%d", level.Depth),
			fmt.Sprintf("%d", level.Height),
			fmt.Sprintf("%d", level.CumulativeHeight),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by BoxStack - Box Stacking Optimizer", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
