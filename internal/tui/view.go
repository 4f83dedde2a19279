package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kabecheck/kabecheck/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render("エラー: " + m.err.Error()))
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.renderHome()
	case SceneForm:
		content = m.renderForm()
	case SceneResult:
		content = m.renderResult()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with the title bar and status bar
func (m Model) renderApp(content string) string {
	title := TitleStyle.Render("かべチェック - 収入の壁シミュレーター")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		breadcrumb,
		content,
		m.renderStatusBar(),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	var shortcuts []string
	switch m.currentScene {
	case SceneHome:
		shortcuts = []string{
			formatShortcut("↑/↓", "選択"),
			formatShortcut("enter", "決定"),
			formatShortcut("?", "ヘルプ"),
			formatShortcut("q", "終了"),
		}
	case SceneForm:
		shortcuts = []string{
			formatShortcut("tab/↑/↓", "移動"),
			formatShortcut("←/→", "切替"),
			formatShortcut("enter", "計算"),
			formatShortcut("esc", "戻る"),
		}
	case SceneResult:
		shortcuts = []string{
			formatShortcut("e", "入力へ戻る"),
			formatShortcut("esc", "戻る"),
			formatShortcut("q", "終了"),
		}
	default:
		shortcuts = []string{formatShortcut("esc", "戻る"), formatShortcut("q", "終了")}
	}

	return StatusBarStyle.Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderHome renders the mode picker
func (m Model) renderHome() string {
	rows := []string{"働き方を選んでください", ""}
	labels := []string{"アルバイト・パート", "業務委託・フリーランス"}
	for i, label := range labels {
		if i == m.modeSel {
			rows = append(rows, SelectedItemStyle.Render("> "+label))
		} else {
			rows = append(rows, UnselectedItemStyle.Render("  "+label))
		}
	}
	return BorderStyle.Render(strings.Join(rows, "\n"))
}

// renderForm renders the input form for the selected mode
func (m Model) renderForm() string {
	labels := m.formLabels()
	var rows []string

	for i, ti := range m.inputs {
		label := FieldLabelStyle.Render(labels[i])
		if m.focus == i {
			label = FocusedLabelStyle.Render(labels[i])
		}
		rows = append(rows, label+ti.View())
	}

	for i, c := range m.choices {
		idx := len(m.inputs) + i
		label := FieldLabelStyle.Render(c.label)
		value := c.options[c.index]
		if m.focus == idx {
			label = FocusedLabelStyle.Render(c.label)
			value = SelectedItemStyle.Render("◀ " + value + " ▶")
		}
		rows = append(rows, label+value)
	}

	submit := "[ 計算する ]"
	if m.focus == m.fieldCount()-1 {
		submit = SelectedItemStyle.Render("[ 計算する ]")
	}
	rows = append(rows, "", submit)

	return BorderStyle.Render(strings.Join(rows, "\n"))
}

// renderResult renders the calculation result using the console formatter
func (m Model) renderResult() string {
	formatter := &output.ConsoleFormatter{}

	var (
		text string
		err  error
	)
	switch {
	case m.parttimeResult != nil:
		text, err = formatter.FormatParttime(*m.parttimeResult)
	case m.freelanceResult != nil:
		text, err = formatter.FormatFreelance(*m.freelanceResult)
	default:
		text = "まだ計算していません。"
	}
	if err != nil {
		return ErrorStyle.Render(fmt.Sprintf("表示エラー: %v", err))
	}

	return BorderStyle.Render(text)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `かべチェック

ホームで働き方（アルバイト・パート / 業務委託・フリーランス）を選び、
収入などを入力すると、所得税・住民税・社会保険料の見込みと
超えた「収入の壁」を表示します。

キー操作:
  tab / ↑ / ↓   項目の移動
  ← / →         選択肢の切替
  enter          計算（[計算する] にフォーカス時）
  esc            前の画面へ戻る
  q / Ctrl+C     終了`

	return BorderStyle.Render(helpText)
}
