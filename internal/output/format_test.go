package output

import (
	"encoding/csv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabecheck/kabecheck/internal/calculation"
	"github.com/kabecheck/kabecheck/internal/domain"
)

func sampleParttimeResult(t *testing.T) domain.ParttimeResult {
	t.Helper()
	engine := calculation.NewEngine()
	return engine.CalculateParttime(domain.ParttimeInput{
		Age:           20,
		AnnualIncome:  1200000,
		IsStudent:     true,
		DependentType: domain.DependentParent,
		CompanySize:   domain.LargeCompany,
		WeeklyHours:   25,
	})
}

func sampleFreelanceResult(t *testing.T) domain.FreelanceResult {
	t.Helper()
	engine := calculation.NewEngine()
	return engine.CalculateFreelance(domain.FreelanceInput{
		Age:           22,
		AnnualRevenue: 1500000,
		AnnualExpense: 300000,
		IsStudent:     true,
		DependentType: domain.DependentParent,
		FilingType:    domain.FilingBlue65,
		BusinessType:  domain.BusinessWriter,
	})
}

func TestByName(t *testing.T) {
	assert.IsType(t, &ConsoleFormatter{}, ByName("console"))
	assert.IsType(t, &ConsoleFormatter{}, ByName("table"))
	assert.IsType(t, &ConsoleFormatter{}, ByName(""))
	assert.IsType(t, &JSONFormatter{}, ByName("json"))
	assert.IsType(t, &CSVFormatter{}, ByName("csv"))
	assert.Nil(t, ByName("xml"))
}

func TestConsoleFormatterParttime(t *testing.T) {
	out, err := (&ConsoleFormatter{}).FormatParttime(sampleParttimeResult(t))
	require.NoError(t, err)

	assert.Contains(t, out, "アルバイト・パート 計算結果")
	assert.Contains(t, out, "1,200,000円")
	assert.Contains(t, out, "住民税")
	assert.Contains(t, out, "27,000円")
	assert.Contains(t, out, "手取り")
	assert.Contains(t, out, "1,173,000円")
	assert.Contains(t, out, "103万円の壁")
	assert.Contains(t, out, "次の壁: 130万円の壁 まで あと100,000円")
	assert.Contains(t, out, "アドバイス")
	// Insurance is not required for this student, so the criteria
	// checklist stays hidden.
	assert.NotContains(t, out, "社会保険加入義務があります")
}

func TestConsoleFormatterFreelance(t *testing.T) {
	out, err := (&ConsoleFormatter{}).FormatFreelance(sampleFreelanceResult(t))
	require.NoError(t, err)

	assert.Contains(t, out, "業務委託・フリーランス 計算結果")
	assert.Contains(t, out, "事業所得")
	assert.Contains(t, out, "550,000円")
	assert.Contains(t, out, "学生納付特例で猶予")
	assert.Contains(t, out, "青色申告 vs 白色申告")
	assert.Contains(t, out, "白色申告")
	assert.Contains(t, out, "確定申告が必要です")
}

func TestJSONFormatterParttime(t *testing.T) {
	out, err := (&JSONFormatter{}).FormatParttime(sampleParttimeResult(t))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, float64(1200000), decoded["totalIncome"])
	assert.Equal(t, float64(27000), decoded["residentTax"])
	assert.Contains(t, decoded, "socialInsurance")
	assert.Contains(t, decoded, "wallsExceeded")
	assert.Contains(t, decoded, "nextWall")
	assert.Contains(t, decoded, "advice")
}

func TestJSONFormatterFreelance(t *testing.T) {
	out, err := (&JSONFormatter{Pretty: true}).FormatFreelance(sampleFreelanceResult(t))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, float64(550000), decoded["businessIncome"])
	assert.Equal(t, true, decoded["studentPensionExemption"])
	assert.Contains(t, decoded, "blueVsWhiteComparison")
	assert.Contains(t, decoded, "confirmationRequired")
}

func TestCSVFormatter(t *testing.T) {
	out, err := (&CSVFormatter{}).FormatParttime(sampleParttimeResult(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"field", "value"}, records[0])

	fields := make(map[string]string, len(records))
	for _, rec := range records[1:] {
		require.Len(t, rec, 2)
		fields[rec[0]] = rec[1]
	}

	assert.Equal(t, "1200000", fields["totalIncome"])
	assert.Equal(t, "27000", fields["residentTax"])
	assert.Equal(t, "103万円の壁;106万円の壁", fields["wallsExceeded"])
	assert.Equal(t, "130万円の壁", fields["nextWall"])
	assert.Equal(t, "100000", fields["nextWallRemaining"])
}

func TestCSVFormatterFreelance(t *testing.T) {
	out, err := (&CSVFormatter{}).FormatFreelance(sampleFreelanceResult(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)

	fields := make(map[string]string, len(records))
	for _, rec := range records[1:] {
		fields[rec[0]] = rec[1]
	}

	assert.Equal(t, "550000", fields["businessIncome"])
	assert.Equal(t, "20.0", fields["expenseRate"])
	assert.Equal(t, "true", fields["studentPensionExemption"])
	assert.Equal(t, "true", fields["confirmationRequired"])
}
