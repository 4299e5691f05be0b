package report

import (
	"fmt"
	"time"

	mullion "Mullion/internal/calc/mullion"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Request mullion.Input `json:"request"`
}

// Build renders the mullion check as an A4 report: inputs, load-case
// tables, the ranked section table and the recommendation.
func Build(in Input, res mullion.Result) *gofpdf.Fpdf {
	title := in.Title
	if title == "" {
		title = "Mullion Design Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	req := in.Request
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Design Parameters")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Material: %s    Wind: %.2f kPa    Bay: %.0f mm    Span: %.0f mm    Barrier: %.2f kN/m",
		req.Material, req.WindPressureKPa, req.BayWidthMM, req.MullionLengthMM, req.BarrierLoadKNM))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("ULS case %d, SLS case %d", req.ULSCase, req.SLSCase))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Design Requirements")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Required Z: %.2f cm3    Required I: %.2f cm4    Deflection limit: %.2f mm",
		res.ZReqCm3, res.IReqCm4, res.DeflLimitMM))
	pdf.Ln(5)
	if res.Degenerate {
		pdf.Cell(0, 5, "Note: barrier-load deflection case is degenerate for this span; required I is not meaningful.")
		pdf.Ln(5)
	}
	pdf.Ln(3)

	caseTables(pdf, res)
	rankedTable(pdf, res)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Recommendation")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, res.Recommendation.Note)
	pdf.Ln(5)
	return pdf
}

func caseTables(pdf *gofpdf.Fpdf, res mullion.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "ULS Load Cases")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range res.ULSCaseTable {
		pdf.Cell(0, 5, fmt.Sprintf("ULS %d: %s    Required Z = %.2f cm3", row.Case, row.Loading, row.ZReqCm3))
		pdf.Ln(5)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "SLS Load Cases")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range res.SLSCaseTable {
		line := fmt.Sprintf("SLS %d: %s    Required I = %.2f cm4", row.Case, row.Loading, row.IReqCm4)
		if row.Degenerate {
			line += " (degenerate)"
		}
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(3)
}

func rankedTable(pdf *gofpdf.Fpdf, res mullion.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Section Database")
	pdf.Ln(8)

	widths := []float64{32, 42, 18, 20, 20, 22, 22, 14}
	headers := []string{"Supplier", "Profile", "Depth", "Z (cm3)", "I (cm4)", "ULS (%)", "SLS (%)", "Pass"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, s := range res.Ranked {
		pass := "No"
		if s.MaxUtil <= 1.0 {
			pass = "Yes"
		}
		cells := []string{
			s.Supplier,
			s.Profile,
			fmt.Sprintf("%.0f", s.DepthMM),
			fmt.Sprintf("%.2f", s.ZCm3),
			fmt.Sprintf("%.2f", s.ICm4),
			fmt.Sprintf("%.1f", s.ULSUtil*100),
			fmt.Sprintf("%.1f", s.SLSUtil*100),
			pass,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 5, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(5)
}
