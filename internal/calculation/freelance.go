package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kabecheck/kabecheck/internal/domain"
	"github.com/kabecheck/kabecheck/internal/walls"
)

const (
	// 事業主控除: per-proprietor deduction before business tax applies.
	businessTaxDeduction = 2900000

	// National health insurance approximation: 10% of income over the
	// 430,000 basic deduction plus a flat per-capita component.
	healthFlatComponent = 40000

	// FY2024 national pension premium, 16,980 yen per month.
	nationalPensionMonthly = 16980

	// 学生納付特例: pension payments can be deferred while business
	// income stays at or under this ceiling.
	studentPensionCeiling = 1180000
)

var (
	businessTaxRate  = decimal.NewFromFloat(0.05)
	healthIncomeRate = decimal.NewFromFloat(0.10)
	oneHundred       = decimal.NewFromInt(100)
)

// BusinessTax computes 個人事業税: 5% of business income over the
// 2,900,000 proprietor deduction. The statutory rate varies 3-5% by
// industry; the flat 5% upper bound is used for every business type.
func BusinessTax(businessIncome int64) int64 {
	taxable := businessIncome - businessTaxDeduction
	if taxable <= 0 {
		return 0
	}
	return decimal.NewFromInt(taxable).Mul(businessTaxRate).IntPart()
}

// NationalHealthInsurance approximates the annual NHI premium from
// business income. Municipal variation is not modeled.
func NationalHealthInsurance(businessIncome int64) int64 {
	income := businessIncome - residentBasicDeduction
	if income < 0 {
		income = 0
	}
	return decimal.NewFromInt(income).Mul(healthIncomeRate).IntPart() + healthFlatComponent
}

// NationalPension returns the fixed annual national pension premium.
func NationalPension() int64 {
	return nationalPensionMonthly * 12
}

// CalculateFreelance derives taxes, insurance premiums, the filing-type
// comparison, wall crossings and advice for a freelance worker.
func (e *Engine) CalculateFreelance(in domain.FreelanceInput) domain.FreelanceResult {
	log := e.logger()

	filingDeduction := in.FilingType.FilingDeduction()

	// Business income may legitimately go negative; later steps clamp
	// their own bases instead of clamping here.
	businessIncome := in.AnnualRevenue - in.AnnualExpense - filingDeduction

	taxableIncome := businessIncome - basicDeduction
	if taxableIncome < 0 {
		taxableIncome = 0
	}

	incomeTax := IncomeTax(taxableIncome)
	residentTax := ResidentTax(businessIncome)
	businessTax := BusinessTax(businessIncome)
	healthInsurance := NationalHealthInsurance(businessIncome)
	pensionInsurance := NationalPension()

	studentExemption := in.IsStudent && businessIncome <= studentPensionCeiling

	totalTax := incomeTax + residentTax + businessTax
	totalInsurance := healthInsurance
	if !studentExemption {
		totalInsurance += pensionInsurance
	}
	netIncome := in.AnnualRevenue - in.AnnualExpense - totalTax - totalInsurance

	expenseRate := decimal.Zero
	if in.AnnualRevenue > 0 {
		expenseRate = decimal.NewFromInt(in.AnnualExpense).
			Div(decimal.NewFromInt(in.AnnualRevenue)).
			Mul(oneHundred).
			Round(1)
	}

	profile := walls.ExpenseProfileFor(string(in.BusinessType))
	remainingCapacity := decimal.NewFromInt(in.AnnualRevenue).
		Mul(profile.AverageRate).
		Div(oneHundred).
		IntPart() - in.AnnualExpense
	if remainingCapacity < 0 {
		remainingCapacity = 0
	}

	exceeded := walls.Exceeded(businessIncome, walls.Freelance)
	next := toNextWall(walls.Next(businessIncome, walls.Freelance))

	comparison := CompareFilingTypes(in.AnnualRevenue, in.AnnualExpense)

	confirmationRequired := businessIncome > basicDeduction

	log.Debugf("freelance: revenue=%d expense=%d income=%d taxable=%d totalTax=%d totalInsurance=%d",
		in.AnnualRevenue, in.AnnualExpense, businessIncome, taxableIncome, totalTax, totalInsurance)

	return domain.FreelanceResult{
		TotalRevenue:               in.AnnualRevenue,
		TotalExpense:               in.AnnualExpense,
		ExpenseRate:                expenseRate,
		IndustryAverageExpenseRate: profile.AverageRate,
		BlueFilingDeduction:        filingDeduction,
		BusinessIncome:             businessIncome,
		IncomeTax:                  incomeTax,
		ResidentTax:                residentTax,
		BusinessTax:                businessTax,
		HealthInsurance:            healthInsurance,
		PensionInsurance:           pensionInsurance,
		StudentPensionExemption:    studentExemption,
		TotalTax:                   totalTax,
		TotalInsurance:             totalInsurance,
		NetIncome:                  netIncome,
		WallsExceeded:              reduceWalls(exceeded),
		NextWall:                   next,
		Comparison:                 comparison,
		RemainingExpenseCapacity:   remainingCapacity,
		ConfirmationRequired:       confirmationRequired,
		Advice: freelanceAdvice(adviceInput{
			businessIncome:   businessIncome,
			next:             next,
			isStudent:        in.IsStudent,
			dependentType:    in.DependentType,
			filingType:       in.FilingType,
			expenseRate:      expenseRate,
			industryAverage:  profile.AverageRate,
			remainingExpense: remainingCapacity,
		}),
	}
}

// filingOutcome recomputes one filing treatment from scratch so the
// three legs of the comparison stay independent of the caller's result.
func filingOutcome(revenue, expense, deduction int64) domain.FilingOutcome {
	income := revenue - expense - deduction
	taxable := income - basicDeduction
	if taxable < 0 {
		taxable = 0
	}
	totalTax := IncomeTax(taxable) + ResidentTax(income)
	return domain.FilingOutcome{
		Income:    income,
		Tax:       totalTax,
		NetIncome: revenue - expense - totalTax,
	}
}

// CompareFilingTypes recomputes income tax and resident tax under each
// of the three filing treatments for a fixed revenue/expense pair.
// Savings are relative to the white filing.
func CompareFilingTypes(revenue, expense int64) domain.FilingComparison {
	white := filingOutcome(revenue, expense, domain.FilingWhite.FilingDeduction())
	blue10 := filingOutcome(revenue, expense, domain.FilingBlue10.FilingDeduction())
	blue65 := filingOutcome(revenue, expense, domain.FilingBlue65.FilingDeduction())

	return domain.FilingComparison{
		White:         white,
		Blue10:        blue10,
		Blue65:        blue65,
		SavingsBlue10: white.Tax - blue10.Tax,
		SavingsBlue65: white.Tax - blue65.Tax,
	}
}
