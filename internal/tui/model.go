package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kabecheck/kabecheck/internal/calculation"
	"github.com/kabecheck/kabecheck/internal/domain"
)

// choiceField is a form field that cycles through a fixed option set.
type choiceField struct {
	label   string
	options []string
	values  []string
	index   int
}

func (c *choiceField) value() string { return c.values[c.index] }

func (c *choiceField) next() { c.index = (c.index + 1) % len(c.options) }

func (c *choiceField) prev() { c.index = (c.index + len(c.options) - 1) % len(c.options) }

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Calculation engine
	engine *calculation.Engine

	// Form state
	mode    Mode
	modeSel int
	inputs  []textinput.Model
	choices []*choiceField
	focus   int

	// Results
	parttimeResult  *domain.ParttimeResult
	freelanceResult *domain.FreelanceResult

	// Error state
	err error
}

// NewModel creates a new application model
func NewModel() Model {
	return Model{
		currentScene: SceneHome,
		engine:       calculation.NewEngine(),
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// fieldCount is the number of focusable form fields plus the submit row.
func (m Model) fieldCount() int {
	return len(m.inputs) + len(m.choices) + 1
}

// buildForm rebuilds the form fields for the selected mode.
func (m *Model) buildForm() {
	m.inputs = nil
	m.choices = nil
	m.focus = 0

	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		ti.CharLimit = 10
		ti.Width = 14
		return ti
	}

	switch m.mode {
	case ModeParttime:
		m.inputs = []textinput.Model{
			newInput("20"),
			newInput("1200000"),
			newInput(""),
			newInput("20"),
		}
		m.choices = []*choiceField{
			{label: "学生", options: []string{"いいえ", "はい"}, values: []string{"no", "yes"}},
			{label: "扶養", options: []string{"なし", "親の扶養", "配偶者の扶養"},
				values: []string{"none", "parent", "spouse"}},
			{label: "勤務先の規模", options: []string{"100人以下", "101〜500人", "501人以上"},
				values: []string{"small", "medium", "large"}},
		}
	case ModeFreelance:
		m.inputs = []textinput.Model{
			newInput("22"),
			newInput("1500000"),
			newInput("300000"),
		}
		m.choices = []*choiceField{
			{label: "学生", options: []string{"いいえ", "はい"}, values: []string{"no", "yes"}},
			{label: "扶養", options: []string{"なし", "親の扶養", "配偶者の扶養"},
				values: []string{"none", "parent", "spouse"}},
			{label: "申告方法", options: []string{"白色申告", "青色申告（10万円控除）", "青色申告（65万円控除）"},
				values: []string{"white", "blue10", "blue65"}},
			{label: "業種", options: []string{"ライター", "デザイナー", "エンジニア", "動画編集", "その他"},
				values: []string{"writer", "designer", "engineer", "video_editor", "other"}},
		}
	}

	m.inputs[0].Focus()
}

// formLabels returns the label for each text input in order.
func (m Model) formLabels() []string {
	switch m.mode {
	case ModeFreelance:
		return []string{"年齢", "年間売上（円）", "年間経費（円）"}
	default:
		return []string{"年齢", "年収（円）", "月収（円、空欄可）", "週の労働時間"}
	}
}

func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parttimeInput assembles the calculator input from the form fields.
func (m Model) parttimeInput() domain.ParttimeInput {
	return domain.ParttimeInput{
		Age:           int(parseInt64(m.inputs[0].Value())),
		AnnualIncome:  parseInt64(m.inputs[1].Value()),
		MonthlyIncome: parseInt64(m.inputs[2].Value()),
		WeeklyHours:   parseFloat(m.inputs[3].Value()),
		IsStudent:     m.choices[0].value() == "yes",
		DependentType: domain.DependentType(m.choices[1].value()),
		CompanySize:   domain.CompanySize(m.choices[2].value()),
	}
}

// freelanceInput assembles the calculator input from the form fields.
func (m Model) freelanceInput() domain.FreelanceInput {
	return domain.FreelanceInput{
		Age:           int(parseInt64(m.inputs[0].Value())),
		AnnualRevenue: parseInt64(m.inputs[1].Value()),
		AnnualExpense: parseInt64(m.inputs[2].Value()),
		IsStudent:     m.choices[0].value() == "yes",
		DependentType: domain.DependentType(m.choices[1].value()),
		FilingType:    domain.FilingType(m.choices[2].value()),
		BusinessType:  domain.BusinessType(m.choices[3].value()),
	}
}

// calculateCmd runs the calculation for the current form values.
func (m Model) calculateCmd() tea.Cmd {
	engine := m.engine
	switch m.mode {
	case ModeFreelance:
		in := m.freelanceInput()
		return func() tea.Msg {
			return FreelanceResultMsg{Result: engine.CalculateFreelance(in)}
		}
	default:
		in := m.parttimeInput()
		return func() tea.Msg {
			return ParttimeResultMsg{Result: engine.CalculateParttime(in)}
		}
	}
}
