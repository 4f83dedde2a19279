package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/kabecheck/kabecheck/internal/domain"
)

// CSVFormatter renders a result as field,value rows for spreadsheets.
type CSVFormatter struct{}

// FormatParttime renders the part-time result as CSV.
func (cf *CSVFormatter) FormatParttime(r domain.ParttimeResult) (string, error) {
	rows := [][]string{
		{"field", "value"},
		{"totalIncome", formatInt(r.TotalIncome)},
		{"monthlyAverage", formatInt(r.MonthlyAverage)},
		{"incomeTax", formatInt(r.IncomeTax)},
		{"residentTax", formatInt(r.ResidentTax)},
		{"socialInsuranceRequired", strconv.FormatBool(r.SocialInsurance.IsRequired)},
		{"socialInsuranceType", r.SocialInsurance.Type},
		{"healthInsurance", formatInt(r.SocialInsurance.HealthInsurance)},
		{"pensionInsurance", formatInt(r.SocialInsurance.PensionInsurance)},
		{"socialInsuranceTotal", formatInt(r.SocialInsurance.Total)},
		{"netIncome", formatInt(r.NetIncome)},
		{"wallsExceeded", wallNames(r.WallsExceeded)},
	}
	rows = append(rows, nextWallRows(r.NextWall)...)
	rows = append(rows, []string{"advice", r.Advice})
	return writeRows(rows)
}

// FormatFreelance renders the freelance result as CSV.
func (cf *CSVFormatter) FormatFreelance(r domain.FreelanceResult) (string, error) {
	rows := [][]string{
		{"field", "value"},
		{"totalRevenue", formatInt(r.TotalRevenue)},
		{"totalExpense", formatInt(r.TotalExpense)},
		{"expenseRate", r.ExpenseRate.StringFixed(1)},
		{"industryAverageExpenseRate", r.IndustryAverageExpenseRate.StringFixed(1)},
		{"blueFilingDeduction", formatInt(r.BlueFilingDeduction)},
		{"businessIncome", formatInt(r.BusinessIncome)},
		{"incomeTax", formatInt(r.IncomeTax)},
		{"residentTax", formatInt(r.ResidentTax)},
		{"businessTax", formatInt(r.BusinessTax)},
		{"healthInsurance", formatInt(r.HealthInsurance)},
		{"pensionInsurance", formatInt(r.PensionInsurance)},
		{"studentPensionExemption", strconv.FormatBool(r.StudentPensionExemption)},
		{"totalTax", formatInt(r.TotalTax)},
		{"totalInsurance", formatInt(r.TotalInsurance)},
		{"netIncome", formatInt(r.NetIncome)},
		{"whiteTax", formatInt(r.Comparison.White.Tax)},
		{"blue10Tax", formatInt(r.Comparison.Blue10.Tax)},
		{"blue65Tax", formatInt(r.Comparison.Blue65.Tax)},
		{"savingsBlue10", formatInt(r.Comparison.SavingsBlue10)},
		{"savingsBlue65", formatInt(r.Comparison.SavingsBlue65)},
		{"remainingExpenseCapacity", formatInt(r.RemainingExpenseCapacity)},
		{"confirmationRequired", strconv.FormatBool(r.ConfirmationRequired)},
		{"wallsExceeded", wallNames(r.WallsExceeded)},
	}
	rows = append(rows, nextWallRows(r.NextWall)...)
	rows = append(rows, []string{"advice", r.Advice})
	return writeRows(rows)
}

func writeRows(rows [][]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func wallNames(walls []domain.ExceededWall) string {
	names := make([]string, len(walls))
	for i, w := range walls {
		names[i] = w.Name
	}
	return strings.Join(names, ";")
}

func nextWallRows(next *domain.NextWall) [][]string {
	if next == nil {
		return [][]string{{"nextWall", ""}}
	}
	return [][]string{
		{"nextWall", next.Name},
		{"nextWallRemaining", formatInt(next.Remaining)},
	}
}
