package domain

import (
	"github.com/shopspring/decimal"
)

// DependentType identifies whose dependent the worker currently is.
type DependentType string

const (
	DependentNone   DependentType = "none"
	DependentParent DependentType = "parent"
	DependentSpouse DependentType = "spouse"
)

// CompanySize classifies the employer by headcount. Only LargeCompany
// (101+ employees) can trigger the 106万 social-insurance wall.
type CompanySize string

const (
	SmallCompany  CompanySize = "small"
	MediumCompany CompanySize = "medium"
	LargeCompany  CompanySize = "large"
)

// FilingType is the income tax filing regime for freelance workers.
type FilingType string

const (
	FilingWhite  FilingType = "white"
	FilingBlue10 FilingType = "blue10"
	FilingBlue65 FilingType = "blue65"
)

// FilingDeduction returns the special filing deduction in yen.
func (f FilingType) FilingDeduction() int64 {
	switch f {
	case FilingBlue65:
		return 650000
	case FilingBlue10:
		return 100000
	default:
		return 0
	}
}

// BusinessType selects the industry expense-rate benchmark.
type BusinessType string

const (
	BusinessWriter      BusinessType = "writer"
	BusinessDesigner    BusinessType = "designer"
	BusinessEngineer    BusinessType = "engineer"
	BusinessVideoEditor BusinessType = "video_editor"
	BusinessOther       BusinessType = "other"
)

// ParttimeInput holds everything the part-time calculator needs.
// MonthlyIncome of zero means "derive from AnnualIncome / 12".
type ParttimeInput struct {
	Age           int           `yaml:"age" json:"age"`
	AnnualIncome  int64         `yaml:"annual_income" json:"annualIncome"`
	MonthlyIncome int64         `yaml:"monthly_income" json:"monthlyIncome,omitempty"`
	IsStudent     bool          `yaml:"is_student" json:"isStudent"`
	DependentType DependentType `yaml:"dependent_type" json:"dependentType"`
	CompanySize   CompanySize   `yaml:"company_size" json:"companySize"`
	WeeklyHours   float64       `yaml:"weekly_hours" json:"weeklyHours"`
}

// FreelanceInput holds everything the freelance calculator needs.
// Expense greater than revenue is not rejected here; bounded-range
// input controls own that constraint.
type FreelanceInput struct {
	Age           int           `yaml:"age" json:"age"`
	AnnualRevenue int64         `yaml:"annual_revenue" json:"annualRevenue"`
	AnnualExpense int64         `yaml:"annual_expense" json:"annualExpense"`
	IsStudent     bool          `yaml:"is_student" json:"isStudent"`
	DependentType DependentType `yaml:"dependent_type" json:"dependentType"`
	FilingType    FilingType    `yaml:"tax_filing_type" json:"taxFilingType"`
	BusinessType  BusinessType  `yaml:"business_type" json:"businessType"`
}

// InsuranceConditions records the five 106万-wall eligibility criteria.
// EmploymentPeriod (employed longer than two months) cannot be derived
// from the inputs and is always reported true.
type InsuranceConditions struct {
	WeeklyHours      bool `json:"weeklyHours"`
	MonthlyIncome    bool `json:"monthlyIncome"`
	EmploymentPeriod bool `json:"employmentPeriod"`
	NotStudent       bool `json:"notStudent"`
	CompanySize      bool `json:"companySize"`
}

// SocialInsurance is the part-time social-insurance outcome. Type names
// the wall that produced the premiums ("106万" or "130万") and is empty
// when no premiums apply.
type SocialInsurance struct {
	IsRequired       bool                `json:"isRequired"`
	Type             string              `json:"type,omitempty"`
	HealthInsurance  int64               `json:"healthInsurance"`
	PensionInsurance int64               `json:"pensionInsurance"`
	Total            int64               `json:"total"`
	Conditions       InsuranceConditions `json:"conditions"`
}

// ExceededWall is the reduced view of a wall the income has crossed.
type ExceededWall struct {
	Amount int64  `json:"amount"`
	Name   string `json:"name"`
	Impact string `json:"impact"`
}

// NextWall is the first wall not yet crossed, with the distance to it.
type NextWall struct {
	Amount       int64    `json:"amount"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	SelfImpact   string   `json:"selfImpact,omitempty"`
	FamilyImpact string   `json:"familyImpact,omitempty"`
	Conditions   []string `json:"conditions,omitempty"`
	Note         string   `json:"note,omitempty"`
	Level        int      `json:"level"`
	Remaining    int64    `json:"remaining"`
}

// ParttimeResult is the flat record returned by the part-time calculator.
type ParttimeResult struct {
	TotalIncome     int64           `json:"totalIncome"`
	MonthlyAverage  int64           `json:"monthlyAverage"`
	IncomeTax       int64           `json:"incomeTax"`
	ResidentTax     int64           `json:"residentTax"`
	SocialInsurance SocialInsurance `json:"socialInsurance"`
	NetIncome       int64           `json:"netIncome"`
	WallsExceeded   []ExceededWall  `json:"wallsExceeded"`
	NextWall        *NextWall       `json:"nextWall"`
	Advice          string          `json:"advice"`
}

// FilingOutcome is one leg of the white/blue filing comparison.
type FilingOutcome struct {
	Income    int64 `json:"income"`
	Tax       int64 `json:"tax"`
	NetIncome int64 `json:"netIncome"`
}

// FilingComparison recomputes the three filing treatments for a fixed
// revenue/expense pair. Savings are measured against the white filing.
type FilingComparison struct {
	White         FilingOutcome `json:"white"`
	Blue10        FilingOutcome `json:"blue10"`
	Blue65        FilingOutcome `json:"blue65"`
	SavingsBlue10 int64         `json:"savingsBlue10"`
	SavingsBlue65 int64         `json:"savingsBlue65"`
}

// FreelanceResult is the flat record returned by the freelance calculator.
type FreelanceResult struct {
	TotalRevenue               int64            `json:"totalRevenue"`
	TotalExpense               int64            `json:"totalExpense"`
	ExpenseRate                decimal.Decimal  `json:"expenseRate"`
	IndustryAverageExpenseRate decimal.Decimal  `json:"industryAverageExpenseRate"`
	BlueFilingDeduction        int64            `json:"blueFilingDeduction"`
	BusinessIncome             int64            `json:"businessIncome"`
	IncomeTax                  int64            `json:"incomeTax"`
	ResidentTax                int64            `json:"residentTax"`
	BusinessTax                int64            `json:"businessTax"`
	HealthInsurance            int64            `json:"healthInsurance"`
	PensionInsurance           int64            `json:"pensionInsurance"`
	StudentPensionExemption    bool             `json:"studentPensionExemption"`
	TotalTax                   int64            `json:"totalTax"`
	TotalInsurance             int64            `json:"totalInsurance"`
	NetIncome                  int64            `json:"netIncome"`
	WallsExceeded              []ExceededWall   `json:"wallsExceeded"`
	NextWall                   *NextWall        `json:"nextWall"`
	Comparison                 FilingComparison `json:"blueVsWhiteComparison"`
	RemainingExpenseCapacity   int64            `json:"remainingExpenseCapacity"`
	ConfirmationRequired       bool             `json:"confirmationRequired"`
	Advice                     string           `json:"advice"`
}
