package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kabecheck/kabecheck/internal/domain"
)

// Advice is assembled from ordered (predicate, message) rules. Every
// matching rule contributes its text, joined by single spaces; when
// nothing matches the fallback message is used. Keeping the rules in a
// flat list rather than nested branches keeps the thresholds auditable.

const adviceFallback = "適切に収入管理ができています。"

// adviceInput carries everything the freelance rules look at.
type adviceInput struct {
	businessIncome   int64
	next             *domain.NextWall
	isStudent        bool
	dependentType    domain.DependentType
	filingType       domain.FilingType
	expenseRate      decimal.Decimal
	industryAverage  decimal.Decimal
	remainingExpense int64
}

type adviceRule[T any] struct {
	when func(T) bool
	text func(T) string
}

func runAdvice[T any](rules []adviceRule[T], in T) string {
	var parts []string
	for _, r := range rules {
		if r.when(in) {
			parts = append(parts, r.text(in))
		}
	}
	if len(parts) == 0 {
		return adviceFallback
	}
	return strings.Join(parts, " ")
}

// parttimeAdviceInput carries everything the part-time rules look at.
type parttimeAdviceInput struct {
	annualIncome  int64
	next          *domain.NextWall
	isStudent     bool
	dependentType domain.DependentType
}

// Part-time income bands are mutually exclusive, so exactly one rule
// fires for any input.
var parttimeRules = []adviceRule[parttimeAdviceInput]{
	{
		when: func(in parttimeAdviceInput) bool {
			return in.annualIncome < 1030000 && in.next != nil && in.next.Amount == 1030000
		},
		text: func(in parttimeAdviceInput) string {
			return fmt.Sprintf("現在の年収は%s円です。103万円の壁まであと%s円です。このまま働いても扶養内で所得税もかかりません。",
				FormatYen(in.annualIncome), FormatYen(in.next.Remaining))
		},
	},
	{
		when: func(in parttimeAdviceInput) bool {
			return in.annualIncome < 1030000 && (in.next == nil || in.next.Amount != 1030000)
		},
		text: func(in parttimeAdviceInput) string {
			return "安全圏です。このまま働いても問題ありません。"
		},
	},
	{
		when: func(in parttimeAdviceInput) bool {
			return in.annualIncome >= 1030000 && in.annualIncome < 1060000 &&
				in.dependentType == domain.DependentParent
		},
		text: func(in parttimeAdviceInput) string {
			return fmt.Sprintf("103万円を超えています。本人に所得税が発生し、親の扶養控除も外れるため、親の税負担が年間5〜16万円増えます。106万円の壁まであと%s円です。",
				FormatYen(in.next.Remaining))
		},
	},
	{
		when: func(in parttimeAdviceInput) bool {
			return in.annualIncome >= 1030000 && in.annualIncome < 1060000 &&
				in.dependentType != domain.DependentParent
		},
		text: func(in parttimeAdviceInput) string {
			return "103万円を超えています。所得税が発生します。"
		},
	},
	{
		when: func(in parttimeAdviceInput) bool {
			return in.annualIncome >= 1060000 && in.annualIncome < 1300000 && in.isStudent
		},
		text: func(in parttimeAdviceInput) string {
			return "106万円を超えていますが、学生の場合は学生除外特例により社会保険加入義務はありません（夜間・通信制除く）。130万円の壁まで注意しましょう。"
		},
	},
	{
		when: func(in parttimeAdviceInput) bool {
			return in.annualIncome >= 1060000 && in.annualIncome < 1300000 && !in.isStudent
		},
		text: func(in parttimeAdviceInput) string {
			return "106万円を超えています。大企業で条件を満たすと社会保険加入義務が発生します（年間約15万円の負担）。"
		},
	},
	{
		when: func(in parttimeAdviceInput) bool {
			return in.annualIncome >= 1300000 && in.annualIncome < 1500000
		},
		text: func(in parttimeAdviceInput) string {
			return "130万円を超えています。親の社会保険扶養から外れ、国民健康保険・国民年金に加入する必要があります（年間約30万円の負担）。"
		},
	},
	{
		when: func(in parttimeAdviceInput) bool {
			return in.annualIncome >= 1500000
		},
		text: func(in parttimeAdviceInput) string {
			return "150万円を超えています。配偶者控除も減少し、完全自立ゾーンです。"
		},
	},
}

func parttimeAdvice(annualIncome int64, next *domain.NextWall, isStudent bool, dependentType domain.DependentType) string {
	return runAdvice(parttimeRules, parttimeAdviceInput{
		annualIncome:  annualIncome,
		next:          next,
		isStudent:     isStudent,
		dependentType: dependentType,
	})
}

var blueSavingsRate = decimal.NewFromFloat(0.15)

// Freelance rules: one income-band rule at most, then independent rules
// for filing type, expense-rate gap, student deferral and the next wall,
// all of which may stack.
var freelanceRules = []adviceRule[adviceInput]{
	{
		when: func(in adviceInput) bool { return in.businessIncome < 480000 },
		text: func(in adviceInput) string {
			return fmt.Sprintf("現在の所得は%s円です。基礎控除48万円以下のため所得税は発生しません。",
				FormatYen(in.businessIncome))
		},
	},
	{
		when: func(in adviceInput) bool {
			return in.businessIncome >= 480000 && in.businessIncome < 1030000
		},
		text: func(in adviceInput) string {
			return "所得が48万円を超えているため所得税が発生します。"
		},
	},
	{
		when: func(in adviceInput) bool {
			return in.businessIncome >= 1030000 && in.businessIncome < 1300000 &&
				in.dependentType == domain.DependentParent
		},
		text: func(in adviceInput) string {
			return "103万円（給与所得換算）を超えているため、親の扶養控除が外れます。親の税負担が年間5〜16万円増える可能性があります。"
		},
	},
	{
		when: func(in adviceInput) bool {
			return in.businessIncome >= 1300000 && in.businessIncome < 2900000
		},
		text: func(in adviceInput) string {
			return "130万円を超えているため、親の社会保険扶養から外れます。国民健康保険・国民年金に加入が必要です。"
		},
	},
	{
		when: func(in adviceInput) bool { return in.businessIncome >= 2900000 },
		text: func(in adviceInput) string {
			return "290万円を超えているため、個人事業税が発生します。"
		},
	},
	{
		when: func(in adviceInput) bool {
			return in.filingType == domain.FilingWhite && in.businessIncome > 480000
		},
		text: func(in adviceInput) string {
			saving := decimal.NewFromInt(in.businessIncome).Mul(blueSavingsRate).Abs().Round(0)
			return fmt.Sprintf("青色申告65万円控除を使えば、年間約%s円の節税が可能です。",
				FormatYen(saving.IntPart()))
		},
	},
	{
		when: func(in adviceInput) bool {
			return in.expenseRate.LessThan(in.industryAverage) && in.remainingExpense > 0
		},
		text: func(in adviceInput) string {
			return fmt.Sprintf("経費率が業種平均(%s%%)より低いです。適切な経費計上であと%s円計上できる可能性があります。",
				in.industryAverage.StringFixed(1), FormatYen(in.remainingExpense))
		},
	},
	{
		when: func(in adviceInput) bool {
			return in.isStudent && in.businessIncome <= 1180000
		},
		text: func(in adviceInput) string {
			return "学生納付特例により、国民年金の納付を猶予できます。"
		},
	},
	{
		when: func(in adviceInput) bool { return in.next != nil },
		text: func(in adviceInput) string {
			return fmt.Sprintf("次の壁は%s（あと%s円）です。", in.next.Name, FormatYen(in.next.Remaining))
		},
	},
}

func freelanceAdvice(in adviceInput) string {
	return runAdvice(freelanceRules, in)
}
