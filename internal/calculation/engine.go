package calculation

import "strconv"

// Engine runs the wall-check calculations. Both calculators are pure
// functions of their inputs; the engine only carries the optional
// tracing logger, so a zero-value Engine is ready to use and a single
// Engine is safe for concurrent use.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with tracing disabled.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a tracing logger. Passing nil restores the no-op
// logger rather than leaving a nil field behind.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// FormatYen renders an integer yen amount with comma grouping, the way
// every user-facing surface displays money.
func FormatYen(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	if len(s) > 3 {
		var out []byte
		lead := len(s) % 3
		if lead > 0 {
			out = append(out, s[:lead]...)
		}
		for i := lead; i < len(s); i += 3 {
			if len(out) > 0 {
				out = append(out, ',')
			}
			out = append(out, s[i:i+3]...)
		}
		s = string(out)
	}

	if neg {
		return "-" + s
	}
	return s
}
