package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"loan-compare/domain"
	"loan-compare/format"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfText makes text safe for the core PDF fonts, which have no rupee glyph.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs. ")
}

func money(amount float64) string {
	return pdfText(format.Indian(amount, 0))
}

type comparisonPDF struct {
	pdf    *fpdf.Fpdf
	result domain.ComparisonResult
}

// ComparisonPDF renders a comparison as a one or two page A4 report.
func ComparisonPDF(result domain.ComparisonResult, generated time.Time) ([]byte, error) {
	r := &comparisonPDF{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		result: result,
	}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle("Home Loan Comparison", false)

	r.pdf.AddPage()
	r.addHeader(generated)
	r.addSummary()
	r.addYearly()
	r.addVerdict()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *comparisonPDF) addHeader(generated time.Time) {
	in := r.result.Input

	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Home Loan Comparison", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", generated.Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Loan %s over %d years, %.0f%% tax slab (%s regime, %s)",
		money(in.Amount), in.TenureMonths/12, in.Tax.SlabPercent, regimeName(in.Tax), propertyName(in.Tax)), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)
}

func (r *comparisonPDF) addSummary() {
	reg, od := r.result.Regular, r.result.Overdraft
	in := r.result.Input

	rows := [][3]string{
		{"Bank", string(in.RegularBank), string(in.OverdraftBank)},
		{"Interest rate", fmt.Sprintf("%.2f%%", reg.InterestRate), fmt.Sprintf("%.2f%%", od.InterestRate)},
		{"Monthly EMI", money(reg.EMI), money(od.EMI)},
		{"Total interest", money(reg.TotalInterest), money(od.TotalInterest)},
		{"Processing fee", money(reg.ProcessingFee), money(od.ProcessingFee)},
		{"Account charge", "-", money(od.AccountCharge)},
		{"Tax benefit", money(reg.TaxBenefit.Total()), money(od.TaxBenefit.Total())},
		{"Net cost", money(reg.NetCost), money(od.NetCost)},
		{"Months to close", fmt.Sprintf("%d", reg.MonthsToClose), fmt.Sprintf("%d", od.MonthsToClose)},
	}

	r.sectionTitle("Summary")
	r.tableRow([3]string{"", "Regular loan", "Overdraft loan"}, true, 0)
	for i, row := range rows {
		r.tableRow(row, false, i)
	}
	r.pdf.Ln(6)
}

func (r *comparisonPDF) addYearly() {
	if len(r.result.YearlyComparison) == 0 {
		return
	}

	r.sectionTitle("Interest paid by year")
	widths := []float64{20, 55, 55, 50}
	header := []string{"Year", "Regular", "Overdraft", "Saved"}

	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	for i, h := range header {
		r.pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	for i, y := range r.result.YearlyComparison {
		r.stripe(i)
		cells := []string{fmt.Sprintf("%d", y.Year), money(y.RegularInterest), money(y.OverdraftInterest), money(y.InterestSaved)}
		for j, c := range cells {
			align := "R"
			if j == 0 {
				align = "C"
			}
			r.pdf.CellFormat(widths[j], 5, c, "1", 0, align, true, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.Ln(6)
}

func (r *comparisonPDF) addVerdict() {
	r.sectionTitle("Verdict")

	r.pdf.SetFont("Arial", "B", 11)
	if r.result.Cheaper == domain.LoanKindOverdraft {
		r.pdf.SetTextColor(0, 110, 50)
		r.pdf.MultiCell(contentWidth, 6, fmt.Sprintf("The overdraft loan saves %s (%.1f%%).",
			money(r.result.NetSavings), r.result.SavingsPercent), "", "L", false)
	} else {
		r.pdf.SetTextColor(160, 60, 0)
		r.pdf.MultiCell(contentWidth, 6, fmt.Sprintf("The regular loan is cheaper by %s.",
			money(-r.result.NetSavings)), "", "L", false)
	}

	if !r.result.OverdraftEligible {
		r.pdf.SetFont("Arial", "I", 9)
		r.pdf.SetTextColor(160, 0, 0)
		r.pdf.MultiCell(contentWidth, 5, "The loan amount is below the overdraft bank's minimum.", "", "L", false)
	}

	if r.result.Advice != "" {
		r.pdf.Ln(2)
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.SetTextColor(50, 50, 50)
		r.pdf.MultiCell(contentWidth, 5, pdfText(r.result.Advice), "", "L", false)
	}
}

func (r *comparisonPDF) sectionTitle(title string) {
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 7, title, "B", 1, "L", false, 0, "")
	r.pdf.Ln(2)
}

func (r *comparisonPDF) tableRow(row [3]string, header bool, i int) {
	if header {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(0, 51, 102)
		r.pdf.SetTextColor(255, 255, 255)
	} else {
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.SetTextColor(50, 50, 50)
		r.stripe(i)
	}
	r.pdf.CellFormat(60, 6, row[0], "1", 0, "L", true, 0, "")
	r.pdf.CellFormat(60, 6, row[1], "1", 0, "R", true, 0, "")
	r.pdf.CellFormat(60, 6, row[2], "1", 1, "R", true, 0, "")
}

func (r *comparisonPDF) stripe(i int) {
	if i%2 == 0 {
		r.pdf.SetFillColor(245, 247, 250)
	} else {
		r.pdf.SetFillColor(255, 255, 255)
	}
}

func regimeName(t domain.TaxProfile) string {
	if t.OldRegime() {
		return "old"
	}
	return "new"
}

func propertyName(t domain.TaxProfile) string {
	if t.SelfOccupied() {
		return "self-occupied"
	}
	return "let-out"
}
