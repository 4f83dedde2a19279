package calculation

import "github.com/shopspring/decimal"

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Income tax uses the quick-formula progressive schedule
//    (tax = taxable x rate - adjustment) up to the 33% band.
//    Reconstruction surtax is not modeled.
// 2. Resident tax is the simplified municipal model: 10% income levy on
//    taxable income after the 430,000 yen basic deduction, plus a flat
//    5,000 yen per-capita levy. Municipal variation is not modeled.
// 3. All amounts are integer yen; every rate multiplication truncates
//    toward zero, matching withholding-table arithmetic.

// taxBracket is one band of the quick-formula schedule. Ceiling is the
// inclusive upper bound of taxable income for the band.
type taxBracket struct {
	Ceiling    int64
	Rate       decimal.Decimal
	Adjustment decimal.Decimal
}

var incomeTaxBrackets = []taxBracket{
	{1950000, decimal.NewFromFloat(0.05), decimal.Zero},
	{3300000, decimal.NewFromFloat(0.10), decimal.NewFromInt(97500)},
	{6950000, decimal.NewFromFloat(0.20), decimal.NewFromInt(427500)},
	{9000000, decimal.NewFromFloat(0.23), decimal.NewFromInt(636000)},
}

var topIncomeTaxBracket = taxBracket{
	Rate:       decimal.NewFromFloat(0.33),
	Adjustment: decimal.NewFromInt(1536000),
}

// IncomeTax computes national income tax on taxable income using the
// progressive quick-formula schedule, truncated toward zero.
func IncomeTax(taxableIncome int64) int64 {
	if taxableIncome <= 0 {
		return 0
	}

	bracket := topIncomeTaxBracket
	for _, b := range incomeTaxBrackets {
		if taxableIncome <= b.Ceiling {
			bracket = b
			break
		}
	}

	return decimal.NewFromInt(taxableIncome).
		Mul(bracket.Rate).
		Sub(bracket.Adjustment).
		IntPart()
}

const (
	// residentBasicDeduction is the municipal basic deduction, which is
	// 430,000 yen rather than the national 480,000.
	residentBasicDeduction = 430000
	residentPerCapitaLevy  = 5000
)

var residentTaxRate = decimal.NewFromFloat(0.10)

// ResidentTax computes the simplified resident tax from an income basis.
// Part-time callers pass annual income net of the employment-income
// deduction; freelance callers pass business income directly.
func ResidentTax(incomeBasis int64) int64 {
	taxable := incomeBasis - residentBasicDeduction
	if taxable <= 0 {
		return 0
	}

	return decimal.NewFromInt(taxable).
		Mul(residentTaxRate).
		IntPart() + residentPerCapitaLevy
}

// deductionBracket is one band of the employment-income deduction table.
type deductionBracket struct {
	Ceiling int64
	Rate    decimal.Decimal
	Offset  decimal.Decimal
}

var employmentDeductionBrackets = []deductionBracket{
	{1800000, decimal.NewFromFloat(0.4), decimal.NewFromInt(-100000)},
	{3600000, decimal.NewFromFloat(0.3), decimal.NewFromInt(80000)},
	{6600000, decimal.NewFromFloat(0.2), decimal.NewFromInt(440000)},
	{8500000, decimal.NewFromFloat(0.1), decimal.NewFromInt(1100000)},
}

const (
	employmentDeductionFloor        = 550000
	employmentDeductionFloorCeiling = 1625000
	employmentDeductionCap          = 1950000
)

// EmploymentIncomeDeduction returns the standard salary deduction for an
// annual income: a 550,000 floor up to 1,625,000, four linear bands, and
// a 1,950,000 cap above 8,500,000.
func EmploymentIncomeDeduction(annualIncome int64) int64 {
	if annualIncome <= employmentDeductionFloorCeiling {
		return employmentDeductionFloor
	}
	for _, b := range employmentDeductionBrackets {
		if annualIncome <= b.Ceiling {
			return decimal.NewFromInt(annualIncome).
				Mul(b.Rate).
				Add(b.Offset).
				IntPart()
		}
	}
	return employmentDeductionCap
}
