package tui

import "github.com/kabecheck/kabecheck/internal/domain"

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneForm
	SceneResult
	SceneHelp
)

// Mode selects which calculator the form drives
type Mode int

const (
	ModeParttime Mode = iota
	ModeFreelance
)

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ParttimeResultMsg carries a finished part-time calculation
type ParttimeResultMsg struct {
	Result domain.ParttimeResult
}

// FreelanceResultMsg carries a finished freelance calculation
type FreelanceResultMsg struct {
	Result domain.FreelanceResult
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "ホーム"
	case SceneForm:
		return "入力"
	case SceneResult:
		return "結果"
	case SceneHelp:
		return "ヘルプ"
	default:
		return "Unknown"
	}
}
