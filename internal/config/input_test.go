package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabecheck/kabecheck/internal/domain"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileParttime(t *testing.T) {
	path := writeProfile(t, `
kind: parttime
parttime:
  age: 20
  annual_income: 1200000
  is_student: true
  dependent_type: parent
  company_size: large
  weekly_hours: 25
`)

	parser := NewInputParser()
	profile, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, profile.Parttime)

	in := profile.Parttime.ParttimeInput()
	assert.Equal(t, 20, in.Age)
	assert.Equal(t, int64(1200000), in.AnnualIncome)
	assert.True(t, in.IsStudent)
	assert.Equal(t, domain.DependentParent, in.DependentType)
	assert.Equal(t, domain.LargeCompany, in.CompanySize)
	assert.Equal(t, 25.0, in.WeeklyHours)
}

func TestLoadFromFileFreelance(t *testing.T) {
	path := writeProfile(t, `
kind: freelance
freelance:
  age: 22
  annual_revenue: 1500000
  annual_expense: 300000
  is_student: true
  dependent_type: parent
  tax_filing_type: blue65
  business_type: writer
`)

	parser := NewInputParser()
	profile, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, profile.Freelance)

	in := profile.Freelance.FreelanceInput()
	assert.Equal(t, int64(1500000), in.AnnualRevenue)
	assert.Equal(t, int64(300000), in.AnnualExpense)
	assert.Equal(t, domain.FilingBlue65, in.FilingType)
	assert.Equal(t, domain.BusinessWriter, in.BusinessType)
}

func TestLoadFromFileErrors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = parser.LoadFromFile(writeProfile(t, "kind: [broken"))
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr string
	}{
		{
			name:    "Missing kind",
			profile: Profile{},
			wantErr: "kind is required",
		},
		{
			name:    "Unknown kind",
			profile: Profile{Kind: "salaried"},
			wantErr: "unknown kind",
		},
		{
			name:    "Kind without section",
			profile: Profile{Kind: "parttime"},
			wantErr: "parttime section is missing",
		},
		{
			name: "Wrong monthly entry count",
			profile: Profile{Kind: "parttime", Parttime: &ParttimeProfile{
				MonthlyIncomes: []int64{100000, 100000, 100000},
			}},
			wantErr: "exactly 12 entries",
		},
		{
			name: "Negative annual income",
			profile: Profile{Kind: "parttime", Parttime: &ParttimeProfile{
				AnnualIncome: -1,
			}},
			wantErr: "must not be negative",
		},
		{
			name: "Unknown dependent type",
			profile: Profile{Kind: "parttime", Parttime: &ParttimeProfile{
				DependentType: "uncle",
			}},
			wantErr: "unknown dependent_type",
		},
		{
			name: "Unknown company size",
			profile: Profile{Kind: "parttime", Parttime: &ParttimeProfile{
				CompanySize: "huge",
			}},
			wantErr: "unknown company_size",
		},
		{
			name: "Unknown filing type",
			profile: Profile{Kind: "freelance", Freelance: &FreelanceProfile{
				TaxFilingType: "green",
			}},
			wantErr: "unknown tax_filing_type",
		},
		{
			name: "Unknown business type passes",
			profile: Profile{Kind: "freelance", Freelance: &FreelanceProfile{
				BusinessType: "juggler",
			}},
		},
		{
			name: "Valid parttime",
			profile: Profile{Kind: "parttime", Parttime: &ParttimeProfile{
				AnnualIncome: 1000000,
			}},
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.Validate(&tt.profile)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestMonthlyAggregation(t *testing.T) {
	months := make([]int64, 12)
	for i := range months {
		months[i] = 100000
	}

	p := &ParttimeProfile{AnnualIncome: 1, MonthlyIncomes: months}
	in := p.ParttimeInput()
	assert.Equal(t, int64(1200000), in.AnnualIncome, "twelve monthly entries replace the annual figure")
}

func TestMonthlyClamping(t *testing.T) {
	months := make([]int64, 12)
	months[0] = -50000  // below zero, clamped up
	months[1] = 2000000 // above the per-month cap, clamped down
	months[2] = 300000

	p := &ParttimeProfile{MonthlyIncomes: months}
	in := p.ParttimeInput()
	assert.Equal(t, int64(1300000), in.AnnualIncome)
}

func TestFreelanceMonthlyAggregation(t *testing.T) {
	revenues := make([]int64, 12)
	expenses := make([]int64, 12)
	for i := range revenues {
		revenues[i] = 125000
		expenses[i] = 25000
	}

	p := &FreelanceProfile{MonthlyRevenues: revenues, MonthlyExpenses: expenses}
	in := p.FreelanceInput()
	assert.Equal(t, int64(1500000), in.AnnualRevenue)
	assert.Equal(t, int64(300000), in.AnnualExpense)
}

func TestProfileDefaults(t *testing.T) {
	pt := (&ParttimeProfile{}).ParttimeInput()
	assert.Equal(t, domain.DependentNone, pt.DependentType)
	assert.Equal(t, domain.SmallCompany, pt.CompanySize)

	fl := (&FreelanceProfile{}).FreelanceInput()
	assert.Equal(t, domain.DependentNone, fl.DependentType)
	assert.Equal(t, domain.FilingWhite, fl.FilingType)
	assert.Equal(t, domain.BusinessOther, fl.BusinessType)
}
