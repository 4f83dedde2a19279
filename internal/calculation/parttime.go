package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kabecheck/kabecheck/internal/domain"
	"github.com/kabecheck/kabecheck/internal/walls"
)

const (
	basicDeduction       = 480000
	studentDeduction     = 270000
	studentIncomeCeiling = 750000

	insuranceHoursThreshold   = 20
	insuranceMonthlyThreshold = 88000

	// Fallback premiums once the 130万 wall removes dependent coverage:
	// rough national health insurance plus the FY2024 national pension.
	dependentLossHealthPremium  = 100000
	dependentLossPensionPremium = 203760
)

var (
	healthInsuranceRate  = decimal.NewFromFloat(0.05)
	pensionInsuranceRate = decimal.NewFromFloat(0.0915)
)

// checkInsuranceRequirement evaluates the five 106万-wall criteria.
// Employment period longer than two months cannot be judged from the
// inputs and is taken as satisfied.
func checkInsuranceRequirement(monthlyIncome int64, weeklyHours float64, isStudent bool, companySize domain.CompanySize) domain.InsuranceConditions {
	return domain.InsuranceConditions{
		WeeklyHours:      weeklyHours >= insuranceHoursThreshold,
		MonthlyIncome:    monthlyIncome >= insuranceMonthlyThreshold,
		EmploymentPeriod: true,
		NotStudent:       !isStudent,
		CompanySize:      companySize == domain.LargeCompany,
	}
}

// CalculateParttime derives taxes, social-insurance premiums, wall
// crossings and advice for a part-time worker.
func (e *Engine) CalculateParttime(in domain.ParttimeInput) domain.ParttimeResult {
	log := e.logger()

	monthlyIncome := in.MonthlyIncome
	if monthlyIncome == 0 {
		monthlyIncome = in.AnnualIncome / 12
	}

	deduction := EmploymentIncomeDeduction(in.AnnualIncome)
	income := in.AnnualIncome - deduction

	// 勤労学生控除: students with income at or under 750,000.
	var student int64
	if in.IsStudent && income <= studentIncomeCeiling {
		student = studentDeduction
	}

	taxableIncome := income - basicDeduction - student
	if taxableIncome < 0 {
		taxableIncome = 0
	}

	incomeTax := IncomeTax(taxableIncome)

	// Resident tax uses its own basis: annual income net of the
	// employment-income deduction, without the student deduction.
	residentTax := ResidentTax(in.AnnualIncome - EmploymentIncomeDeduction(in.AnnualIncome))

	conditions := checkInsuranceRequirement(monthlyIncome, in.WeeklyHours, in.IsStudent, in.CompanySize)
	required := conditions.WeeklyHours && conditions.MonthlyIncome &&
		conditions.EmploymentPeriod && conditions.NotStudent && conditions.CompanySize

	insurance := domain.SocialInsurance{IsRequired: required, Conditions: conditions}
	switch {
	case required:
		health := decimal.NewFromInt(monthlyIncome).Mul(healthInsuranceRate).IntPart() * 12
		pension := decimal.NewFromInt(monthlyIncome).Mul(pensionInsuranceRate).IntPart() * 12
		insurance.HealthInsurance = health
		insurance.PensionInsurance = pension
		insurance.Total = health + pension
		insurance.Type = "106万"
	case in.AnnualIncome >= 1300000:
		insurance.HealthInsurance = dependentLossHealthPremium
		insurance.PensionInsurance = dependentLossPensionPremium
		insurance.Total = dependentLossHealthPremium + dependentLossPensionPremium
		insurance.Type = "130万"
	}

	netIncome := in.AnnualIncome - incomeTax - residentTax - insurance.Total

	exceeded := walls.Exceeded(in.AnnualIncome, walls.Parttime)
	next := toNextWall(walls.Next(in.AnnualIncome, walls.Parttime))

	log.Debugf("parttime: income=%d deduction=%d taxable=%d incomeTax=%d residentTax=%d insurance=%d",
		in.AnnualIncome, deduction, taxableIncome, incomeTax, residentTax, insurance.Total)

	return domain.ParttimeResult{
		TotalIncome:     in.AnnualIncome,
		MonthlyAverage:  monthlyIncome,
		IncomeTax:       incomeTax,
		ResidentTax:     residentTax,
		SocialInsurance: insurance,
		NetIncome:       netIncome,
		WallsExceeded:   reduceWalls(exceeded),
		NextWall:        next,
		Advice:          parttimeAdvice(in.AnnualIncome, next, in.IsStudent, in.DependentType),
	}
}

// reduceWalls maps registry walls to the result's reduced view.
func reduceWalls(ws []walls.Wall) []domain.ExceededWall {
	var out []domain.ExceededWall
	for _, w := range ws {
		out = append(out, domain.ExceededWall{
			Amount: w.Amount,
			Name:   w.Name,
			Impact: w.Impact(),
		})
	}
	return out
}

// toNextWall flattens the registry's next-wall record.
func toNextWall(n *walls.NextWall) *domain.NextWall {
	if n == nil {
		return nil
	}
	return &domain.NextWall{
		Amount:       n.Amount,
		Name:         n.Name,
		Category:     n.Category,
		Description:  n.Description,
		SelfImpact:   n.Impacts.Self,
		FamilyImpact: n.Impacts.Family,
		Conditions:   n.Conditions,
		Note:         n.Note,
		Level:        n.Level,
		Remaining:    n.Remaining,
	}
}
