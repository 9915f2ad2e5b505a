package bottombar

import (
	"strings"
	"time"

	"github.com/muesli/reflow/truncate"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/tui/theme"
)

// Mode represents the UI mode that influences footer layout.
type Mode int

const (
	ModeSidebar Mode = iota
	ModeEditor
	ModeConfirm
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeEditor:
		return "EDIT"
	case ModeConfirm:
		return "CONFIRM"
	case ModeHelp:
		return "HELP"
	default:
		return "BROWSE"
	}
}

// Model tracks footer/help/notice rendering state.
type Model struct {
	theme theme.FooterTheme

	mode     Mode
	helpLine string

	notice  app.Notice
	expires time.Time
	width   int
}

// New returns a footer model.
func New(th theme.FooterTheme) Model {
	return Model{theme: th}
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) { m.mode = mode }

// Mode returns the current mode.
func (m Model) Mode() Mode { return m.mode }

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) { m.helpLine = help }

// SetWidth sets the number of columns available.
func (m *Model) SetWidth(w int) { m.width = w }

// ShowNotice displays n until the given deadline.
func (m *Model) ShowNotice(n app.Notice, until time.Time) {
	m.notice = n
	m.expires = until
}

// Notice returns the notice on display.
func (m Model) Notice() app.Notice { return m.notice }

// Expire clears the notice when now has reached its deadline. It reports
// whether anything changed.
func (m *Model) Expire(now time.Time) bool {
	if m.notice.IsZero() || now.Before(m.expires) {
		return false
	}
	m.notice = app.Notice{}
	return true
}

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int { return 1 }

// View renders the footer line.
func (m Model) View() string {
	segments := []string{m.theme.Mode.Render(m.mode.String())}
	if m.helpLine != "" {
		segments = append(segments, m.theme.Help.Render(m.helpLine))
	}
	if !m.notice.IsZero() {
		style := m.theme.Success
		if m.notice.Kind == app.NoticeError {
			style = m.theme.Error
		}
		segments = append(segments, style.Render(m.notice.Message))
	}
	line := strings.Join(segments, " │ ")
	if m.width > 0 {
		line = truncate.String(line, uint(m.width))
	}
	return line
}
