package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kabecheck/kabecheck/internal/domain"
)

// Per-month input bounds, matching the bounded form controls. Entries
// are clamped individually; the annual total is never clamped so twelve
// in-range months always sum exactly.
const (
	maxMonthlyIncome  = 1000000
	maxMonthlyRevenue = 10000000
	maxMonthlyExpense = 10000000
)

// Profile is a saved calculation input. Exactly one of the two sections
// must be present, selected by Kind.
type Profile struct {
	Kind      string            `yaml:"kind"`
	Parttime  *ParttimeProfile  `yaml:"parttime,omitempty"`
	Freelance *FreelanceProfile `yaml:"freelance,omitempty"`
}

// ParttimeProfile mirrors domain.ParttimeInput with optional per-month
// income entries that replace the annual figure when present.
type ParttimeProfile struct {
	Age            int     `yaml:"age"`
	AnnualIncome   int64   `yaml:"annual_income"`
	MonthlyIncome  int64   `yaml:"monthly_income"`
	MonthlyIncomes []int64 `yaml:"monthly_incomes"`
	IsStudent      bool    `yaml:"is_student"`
	DependentType  string  `yaml:"dependent_type"`
	CompanySize    string  `yaml:"company_size"`
	WeeklyHours    float64 `yaml:"weekly_hours"`
}

// FreelanceProfile mirrors domain.FreelanceInput with optional per-month
// revenue and expense entries.
type FreelanceProfile struct {
	Age             int     `yaml:"age"`
	AnnualRevenue   int64   `yaml:"annual_revenue"`
	AnnualExpense   int64   `yaml:"annual_expense"`
	MonthlyRevenues []int64 `yaml:"monthly_revenues"`
	MonthlyExpenses []int64 `yaml:"monthly_expenses"`
	IsStudent       bool    `yaml:"is_student"`
	DependentType   string  `yaml:"dependent_type"`
	TaxFilingType   string  `yaml:"tax_filing_type"`
	BusinessType    string  `yaml:"business_type"`
}

// InputParser loads and validates calculation profiles.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// Validate checks the profile shape. Numeric wall semantics are not
// validated here; only structure, enums and monthly-entry counts.
func (ip *InputParser) Validate(p *Profile) error {
	switch p.Kind {
	case "parttime":
		if p.Parttime == nil {
			return fmt.Errorf("kind is parttime but parttime section is missing")
		}
		return ip.validateParttime(p.Parttime)
	case "freelance":
		if p.Freelance == nil {
			return fmt.Errorf("kind is freelance but freelance section is missing")
		}
		return ip.validateFreelance(p.Freelance)
	case "":
		return fmt.Errorf("kind is required (parttime or freelance)")
	default:
		return fmt.Errorf("unknown kind %q (valid: parttime, freelance)", p.Kind)
	}
}

func (ip *InputParser) validateParttime(p *ParttimeProfile) error {
	if len(p.MonthlyIncomes) != 0 && len(p.MonthlyIncomes) != 12 {
		return fmt.Errorf("monthly_incomes must have exactly 12 entries, got %d", len(p.MonthlyIncomes))
	}
	if p.AnnualIncome < 0 {
		return fmt.Errorf("annual_income must not be negative")
	}
	if err := validateDependentType(p.DependentType); err != nil {
		return err
	}
	switch domain.CompanySize(p.CompanySize) {
	case domain.SmallCompany, domain.MediumCompany, domain.LargeCompany, "":
	default:
		return fmt.Errorf("unknown company_size %q (valid: small, medium, large)", p.CompanySize)
	}
	return nil
}

func (ip *InputParser) validateFreelance(p *FreelanceProfile) error {
	if len(p.MonthlyRevenues) != 0 && len(p.MonthlyRevenues) != 12 {
		return fmt.Errorf("monthly_revenues must have exactly 12 entries, got %d", len(p.MonthlyRevenues))
	}
	if len(p.MonthlyExpenses) != 0 && len(p.MonthlyExpenses) != 12 {
		return fmt.Errorf("monthly_expenses must have exactly 12 entries, got %d", len(p.MonthlyExpenses))
	}
	if p.AnnualRevenue < 0 {
		return fmt.Errorf("annual_revenue must not be negative")
	}
	if p.AnnualExpense < 0 {
		return fmt.Errorf("annual_expense must not be negative")
	}
	if err := validateDependentType(p.DependentType); err != nil {
		return err
	}
	switch domain.FilingType(p.TaxFilingType) {
	case domain.FilingWhite, domain.FilingBlue10, domain.FilingBlue65, "":
	default:
		return fmt.Errorf("unknown tax_filing_type %q (valid: white, blue10, blue65)", p.TaxFilingType)
	}
	// Business type is deliberately not validated: unknown values fall
	// back to the "other" expense profile downstream.
	return nil
}

func validateDependentType(s string) error {
	switch domain.DependentType(s) {
	case domain.DependentNone, domain.DependentParent, domain.DependentSpouse, "":
		return nil
	default:
		return fmt.Errorf("unknown dependent_type %q (valid: none, parent, spouse)", s)
	}
}

func clampMonthly(entries []int64, max int64) []int64 {
	out := make([]int64, len(entries))
	for i, v := range entries {
		if v < 0 {
			v = 0
		}
		if v > max {
			v = max
		}
		out[i] = v
	}
	return out
}

func sum(entries []int64) int64 {
	var total int64
	for _, v := range entries {
		total += v
	}
	return total
}

// ParttimeInput converts the profile into a calculator input. When
// twelve monthly entries are present their clamped sum replaces the
// annual figure.
func (p *ParttimeProfile) ParttimeInput() domain.ParttimeInput {
	annual := p.AnnualIncome
	if len(p.MonthlyIncomes) == 12 {
		annual = sum(clampMonthly(p.MonthlyIncomes, maxMonthlyIncome))
	}

	dependent := domain.DependentType(p.DependentType)
	if dependent == "" {
		dependent = domain.DependentNone
	}
	size := domain.CompanySize(p.CompanySize)
	if size == "" {
		size = domain.SmallCompany
	}

	return domain.ParttimeInput{
		Age:           p.Age,
		AnnualIncome:  annual,
		MonthlyIncome: p.MonthlyIncome,
		IsStudent:     p.IsStudent,
		DependentType: dependent,
		CompanySize:   size,
		WeeklyHours:   p.WeeklyHours,
	}
}

// FreelanceInput converts the profile into a calculator input.
func (p *FreelanceProfile) FreelanceInput() domain.FreelanceInput {
	revenue := p.AnnualRevenue
	if len(p.MonthlyRevenues) == 12 {
		revenue = sum(clampMonthly(p.MonthlyRevenues, maxMonthlyRevenue))
	}
	expense := p.AnnualExpense
	if len(p.MonthlyExpenses) == 12 {
		expense = sum(clampMonthly(p.MonthlyExpenses, maxMonthlyExpense))
	}

	dependent := domain.DependentType(p.DependentType)
	if dependent == "" {
		dependent = domain.DependentNone
	}
	filing := domain.FilingType(p.TaxFilingType)
	if filing == "" {
		filing = domain.FilingWhite
	}
	business := domain.BusinessType(p.BusinessType)
	if business == "" {
		business = domain.BusinessOther
	}

	return domain.FreelanceInput{
		Age:           p.Age,
		AnnualRevenue: revenue,
		AnnualExpense: expense,
		IsStudent:     p.IsStudent,
		DependentType: dependent,
		FilingType:    filing,
		BusinessType:  business,
	}
}
