package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ParttimeResultMsg:
		m.parttimeResult = &msg.Result
		m.freelanceResult = nil
		m.previousScene = m.currentScene
		m.currentScene = SceneResult
		return m, nil

	case FreelanceResultMsg:
		m.freelanceResult = &msg.Result
		m.parttimeResult = nil
		m.previousScene = m.currentScene
		m.currentScene = SceneResult
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global shortcuts. "q" quits everywhere except while typing in the form.
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.currentScene != SceneForm {
			return m, tea.Quit
		}
	case "?":
		if m.currentScene != SceneForm {
			m.previousScene = m.currentScene
			m.currentScene = SceneHelp
			return m, nil
		}
	case "esc":
		if m.currentScene == SceneHome {
			return m, tea.Quit
		}
		m.currentScene, m.previousScene = m.previousScene, SceneHome
		return m, nil
	}

	switch m.currentScene {
	case SceneHome:
		return m.updateHome(key)
	case SceneForm:
		return m.updateForm(msg)
	case SceneResult:
		if key == "enter" || key == "e" {
			m.previousScene = m.currentScene
			m.currentScene = SceneForm
		}
		return m, nil
	case SceneHelp:
		m.currentScene, m.previousScene = m.previousScene, SceneHome
		return m, nil
	}

	return m, nil
}

// updateHome handles the mode picker.
func (m Model) updateHome(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k", "down", "j", "tab":
		m.modeSel = 1 - m.modeSel
	case "enter", " ":
		m.mode = Mode(m.modeSel)
		m.buildForm()
		m.previousScene = m.currentScene
		m.currentScene = SceneForm
	}
	return m, nil
}

// updateForm handles focus movement, choice cycling and text entry.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onInput := m.focus < len(m.inputs)
	onChoice := !onInput && m.focus < len(m.inputs)+len(m.choices)
	onSubmit := m.focus == m.fieldCount()-1

	switch msg.String() {
	case "tab", "down", "enter":
		if msg.String() == "enter" && onSubmit {
			return m, m.calculateCmd()
		}
		m.setFocus((m.focus + 1) % m.fieldCount())
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus + m.fieldCount() - 1) % m.fieldCount())
		return m, nil

	case "left":
		if onChoice {
			m.choices[m.focus-len(m.inputs)].prev()
			return m, nil
		}

	case "right", " ":
		if onChoice {
			m.choices[m.focus-len(m.inputs)].next()
			return m, nil
		}
	}

	if onInput {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// setFocus moves keyboard focus to the given field index.
func (m *Model) setFocus(idx int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = idx
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}
