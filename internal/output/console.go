package output

import (
	"fmt"
	"strings"

	"github.com/kabecheck/kabecheck/internal/calculation"
	"github.com/kabecheck/kabecheck/internal/domain"
)

const ruleWidth = 60

// ConsoleFormatter renders a result as sectioned plain text.
type ConsoleFormatter struct{}

// FormatParttime renders the part-time result.
func (cf *ConsoleFormatter) FormatParttime(r domain.ParttimeResult) (string, error) {
	var sb strings.Builder

	sb.WriteString("アルバイト・パート 計算結果\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	writeAmount(&sb, "年収", r.TotalIncome)
	writeAmount(&sb, "月収（平均）", r.MonthlyAverage)
	writeAmount(&sb, "所得税", r.IncomeTax)
	writeAmount(&sb, "住民税", r.ResidentTax)
	writeAmount(&sb, "社会保険料", r.SocialInsurance.Total)
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	writeAmount(&sb, "手取り", r.NetIncome)

	if r.SocialInsurance.IsRequired {
		sb.WriteString("\n社会保険加入義務があります（106万円の壁）\n")
		c := r.SocialInsurance.Conditions
		sb.WriteString(fmt.Sprintf("  週20時間以上:       %s\n", checkMark(c.WeeklyHours)))
		sb.WriteString(fmt.Sprintf("  月88,000円以上:     %s\n", checkMark(c.MonthlyIncome)))
		sb.WriteString(fmt.Sprintf("  2ヶ月超雇用:        %s\n", checkMark(c.EmploymentPeriod)))
		sb.WriteString(fmt.Sprintf("  学生でない:         %s\n", checkMark(c.NotStudent)))
		sb.WriteString(fmt.Sprintf("  101人以上の企業:    %s\n", checkMark(c.CompanySize)))
	}

	writeWalls(&sb, r.WallsExceeded, r.NextWall)

	sb.WriteString("\nアドバイス\n")
	sb.WriteString("  " + r.Advice + "\n")

	return sb.String(), nil
}

// FormatFreelance renders the freelance result.
func (cf *ConsoleFormatter) FormatFreelance(r domain.FreelanceResult) (string, error) {
	var sb strings.Builder

	sb.WriteString("業務委託・フリーランス 計算結果\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	writeAmount(&sb, "年間売上", r.TotalRevenue)
	writeAmount(&sb, "年間経費", r.TotalExpense)
	sb.WriteString(fmt.Sprintf("%-14s %s%%（業種平均 %s%%）\n", "経費率",
		r.ExpenseRate.StringFixed(1), r.IndustryAverageExpenseRate.StringFixed(1)))
	writeAmount(&sb, "青色申告特別控除", r.BlueFilingDeduction)
	writeAmount(&sb, "事業所得", r.BusinessIncome)
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	writeAmount(&sb, "所得税", r.IncomeTax)
	writeAmount(&sb, "住民税", r.ResidentTax)
	writeAmount(&sb, "個人事業税", r.BusinessTax)
	writeAmount(&sb, "国民健康保険料", r.HealthInsurance)
	if r.StudentPensionExemption {
		sb.WriteString(fmt.Sprintf("%-14s %s円（学生納付特例で猶予）\n", "国民年金保険料",
			calculation.FormatYen(r.PensionInsurance)))
	} else {
		writeAmount(&sb, "国民年金保険料", r.PensionInsurance)
	}
	writeAmount(&sb, "合計税額", r.TotalTax)
	writeAmount(&sb, "合計保険料", r.TotalInsurance)
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	writeAmount(&sb, "手取り", r.NetIncome)

	sb.WriteString("\n青色申告 vs 白色申告\n")
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	writeFilingRow(&sb, "白色申告", r.Comparison.White, 0, false)
	writeFilingRow(&sb, "青色10万円", r.Comparison.Blue10, r.Comparison.SavingsBlue10, true)
	writeFilingRow(&sb, "青色65万円", r.Comparison.Blue65, r.Comparison.SavingsBlue65, true)

	if r.RemainingExpenseCapacity > 0 && r.ExpenseRate.LessThan(r.IndustryAverageExpenseRate) {
		sb.WriteString(fmt.Sprintf("\n経費率が業種平均より低いです。あと%s円計上できる可能性があります。\n",
			calculation.FormatYen(r.RemainingExpenseCapacity)))
	}

	writeWalls(&sb, r.WallsExceeded, r.NextWall)

	sb.WriteString("\n確定申告\n")
	if r.ConfirmationRequired {
		sb.WriteString("  確定申告が必要です（期限: 翌年3月15日）\n")
	} else {
		sb.WriteString("  確定申告は不要です\n")
	}

	sb.WriteString("\nアドバイス\n")
	sb.WriteString("  " + r.Advice + "\n")

	return sb.String(), nil
}

func writeAmount(sb *strings.Builder, label string, amount int64) {
	sb.WriteString(fmt.Sprintf("%-14s %s円\n", label, calculation.FormatYen(amount)))
}

func writeFilingRow(sb *strings.Builder, label string, o domain.FilingOutcome, savings int64, showSavings bool) {
	sb.WriteString(fmt.Sprintf("%-10s 所得 %s円 / 税額 %s円 / 手取り %s円",
		label,
		calculation.FormatYen(o.Income),
		calculation.FormatYen(o.Tax),
		calculation.FormatYen(o.NetIncome)))
	if showSavings {
		sb.WriteString(fmt.Sprintf("（節税 %s円）", calculation.FormatYen(savings)))
	}
	sb.WriteString("\n")
}

func writeWalls(sb *strings.Builder, exceeded []domain.ExceededWall, next *domain.NextWall) {
	if len(exceeded) > 0 {
		sb.WriteString("\n超えた壁\n")
		for _, w := range exceeded {
			sb.WriteString(fmt.Sprintf("  - %s: %s\n", w.Name, w.Impact))
		}
	}
	if next != nil {
		sb.WriteString(fmt.Sprintf("\n次の壁: %s まで あと%s円\n",
			next.Name, calculation.FormatYen(next.Remaining)))
	}
}

func checkMark(ok bool) string {
	if ok {
		return "満たす"
	}
	return "満たさない"
}
