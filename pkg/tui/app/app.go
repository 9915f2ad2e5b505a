// Package teaui hosts the Bubble Tea program for the diary TUI.
package teaui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/tui/components/bottombar"
	"tableflip.dev/diary/pkg/tui/components/editor"
	"tableflip.dev/diary/pkg/tui/components/help"
	"tableflip.dev/diary/pkg/tui/components/sidebar"
	"tableflip.dev/diary/pkg/tui/events"
	"tableflip.dev/diary/pkg/tui/theme"
	"tableflip.dev/diary/pkg/viewmodel"
)

const (
	defaultNoticeTTL = 4 * time.Second

	sidebarHelp = "tab editor · a new · b box · d delete · ? help · q quit"
	editorHelp  = "tab/esc sidebar · ctrl+↑/↓ field · pgup/pgdn box"
	confirmHelp = "y delete · n cancel"
	helpHelp    = "? or esc to close"
)

// Options tune the program.
type Options struct {
	// NoticeTTL is how long a notice stays in the footer.
	NoticeTTL time.Duration
	// Clock drives notice expiry and the calendar's today marker.
	Clock func() time.Time
	Log   *zap.Logger
}

type noticeTickMsg struct{}

type serviceEventMsg struct {
	event app.Event
}

type watchClosedMsg struct{}

type pendingDelete struct {
	id    string
	date  entry.Date
	label string
}

// Model is the root Bubble Tea model: sidebar, editor, footer and overlays.
type Model struct {
	ctx context.Context
	svc *app.Service
	log *zap.Logger

	theme   theme.Theme
	sidebar *sidebar.Model
	editor  *editor.Model
	bottom  bottombar.Model
	help    *help.Model

	showHelp bool
	confirm  *pendingDelete

	termWidth  int
	termHeight int

	noticeTTL time.Duration
	now       func() time.Time
	watch     <-chan app.Event
}

// New constructs the root model bound to svc.
func New(ctx context.Context, svc *app.Service, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if svc == nil {
		svc = app.New(nil, nil)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = defaultNoticeTTL
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	th := theme.Default()
	today := entry.DateOf(opts.Clock())
	if snap := svc.Snapshot(ctx); !snap.SelectedDate.IsZero() {
		today = snap.SelectedDate
	}
	m := &Model{
		ctx:       ctx,
		svc:       svc,
		log:       opts.Log.Named("tui"),
		theme:     th,
		sidebar:   sidebar.NewModel(today, th.Sidebar),
		editor:    editor.NewModel(th.Editor),
		bottom:    bottombar.New(th.Footer),
		noticeTTL: opts.NoticeTTL,
		now:       opts.Clock,
	}
	m.sidebar.SetFocused(true)
	m.refresh()
	m.sidebar.Reveal(today)
	m.updateBottomContext()
	return m
}

// Run launches the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, svc *app.Service, opts Options) error {
	p := tea.NewProgram(New(ctx, svc, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	watch, err := m.svc.Watch(m.ctx)
	if err != nil {
		m.log.Warn("watch", zap.Error(err))
		return nil
	}
	m.watch = watch
	return m.waitForEvent()
}

func (m *Model) waitForEvent() tea.Cmd {
	ch := m.watch
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return serviceEventMsg{event: ev}
	}
}

// Update routes Bubble Tea messages to composed components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = v.Width
		m.termHeight = v.Height
		m.applySizes()
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(v)
	case events.YearActivateMsg:
		if _, err := m.svc.FocusPeriod(m.ctx, v.Year, 0); err != nil {
			m.log.Debug("focus year", zap.Int("year", v.Year), zap.Error(err))
		}
		m.refresh()
		return m, nil
	case events.MonthActivateMsg:
		if _, err := m.svc.FocusPeriod(m.ctx, v.Year, v.Month); err != nil {
			m.log.Debug("focus month", zap.Int("year", v.Year), zap.Int("month", v.Month), zap.Error(err))
		}
		m.refresh()
		return m, nil
	case events.EntrySelectMsg:
		if _, err := m.svc.SelectEntry(m.ctx, v.EntryID); err != nil {
			m.log.Debug("select entry", zap.String("id", v.EntryID), zap.Error(err))
		}
		m.refresh()
		return m, nil
	case events.EntryEditMsg:
		m.applyEdit(v)
		return m, nil
	case serviceEventMsg:
		m.refresh()
		return m, m.waitForEvent()
	case watchClosedMsg:
		m.watch = nil
		return m, nil
	case noticeTickMsg:
		m.bottom.Expire(m.now())
		return m, nil
	}

	if m.showHelp && m.help != nil {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}
	if m.editor.Focused() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(key tea.KeyPressMsg) tea.Cmd {
	k := key.String()
	if k == "ctrl+c" {
		return tea.Quit
	}

	if m.confirm != nil {
		switch k {
		case "y", "Y", "enter":
			return m.confirmDelete()
		case "n", "N", "esc", "q":
			m.confirm = nil
			m.updateBottomContext()
		}
		return nil
	}

	if m.showHelp {
		switch k {
		case "?", "esc", "q":
			m.showHelp = false
			m.updateBottomContext()
			return nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(key)
		return cmd
	}

	if m.editor.Focused() {
		switch k {
		case "tab", "esc", "shift+tab":
			return m.focusSidebar()
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(key)
		return cmd
	}

	switch k {
	case "q":
		return tea.Quit
	case "tab", "shift+tab":
		return m.focusEditor()
	case "?":
		m.openHelp()
		return nil
	case "a":
		return m.addNext()
	case "b":
		return m.addBox()
	case "d", "delete", "backspace":
		m.askDelete()
		return nil
	}
	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(key)
	return cmd
}

func (m *Model) focusEditor() tea.Cmd {
	m.sidebar.SetFocused(false)
	cmd := m.editor.Focus()
	m.updateBottomContext()
	return cmd
}

func (m *Model) focusSidebar() tea.Cmd {
	cmd := m.editor.Blur()
	m.sidebar.SetFocused(true)
	m.updateBottomContext()
	return cmd
}

func (m *Model) openHelp() {
	w, h := m.overlaySize()
	if m.help == nil {
		m.help = help.New(w, h)
	} else {
		m.help.SetSize(w, h)
	}
	m.showHelp = true
	m.updateBottomContext()
}

func (m *Model) addNext() tea.Cmd {
	e, notice, err := m.svc.AddNext(m.ctx)
	m.refresh()
	if err == nil {
		m.sidebar.Reveal(e.Date)
	}
	return m.notify(notice)
}

func (m *Model) addBox() tea.Cmd {
	e, notice := m.svc.AddBox(m.ctx)
	m.refresh()
	m.sidebar.Reveal(e.Date)
	return m.notify(notice)
}

func (m *Model) askDelete() {
	row, ok := m.sidebar.Current()
	if !ok || row.Kind != viewmodel.RowEntry {
		return
	}
	m.confirm = &pendingDelete{
		id:    row.Entry.ID,
		date:  row.Entry.Date,
		label: sidebar.EntryLabel(row.Entry),
	}
	m.updateBottomContext()
}

func (m *Model) confirmDelete() tea.Cmd {
	pending := m.confirm
	m.confirm = nil
	notice, err := m.svc.Delete(m.ctx, pending.date, pending.id)
	if err != nil {
		m.log.Debug("delete", zap.String("id", pending.id), zap.Error(err))
	}
	m.refresh()
	m.updateBottomContext()
	return m.notify(notice)
}

func (m *Model) applyEdit(msg events.EntryEditMsg) {
	var err error
	switch msg.Field {
	case events.FieldTitle:
		_, err = m.svc.EditTitle(m.ctx, msg.EntryID, msg.Value)
	default:
		_, err = m.svc.EditContent(m.ctx, msg.EntryID, msg.Value)
	}
	if err != nil {
		m.log.Debug("edit", zap.String("id", msg.EntryID), zap.Error(err))
	}
}

func (m *Model) notify(n app.Notice) tea.Cmd {
	if n.IsZero() {
		return nil
	}
	m.bottom.ShowNotice(n, m.now().Add(m.noticeTTL))
	return tea.Tick(m.noticeTTL, func(time.Time) tea.Msg { return noticeTickMsg{} })
}

// refresh pulls a fresh snapshot into the components.
func (m *Model) refresh() {
	snap := m.svc.Snapshot(m.ctx)
	m.sidebar.SetData(viewmodel.Group(snap.Entries), viewmodel.Selection{
		Date:  snap.SelectedDate,
		Level: snap.SelectedLevel,
	})
	m.editor.SetEntries(snap.SelectedDate, m.svc.EntriesForSelectedDate(m.ctx))
}

func (m *Model) updateBottomContext() {
	switch {
	case m.confirm != nil:
		m.bottom.SetMode(bottombar.ModeConfirm)
		m.bottom.SetHelp(confirmHelp)
	case m.showHelp:
		m.bottom.SetMode(bottombar.ModeHelp)
		m.bottom.SetHelp(helpHelp)
	case m.editor.Focused():
		m.bottom.SetMode(bottombar.ModeEditor)
		m.bottom.SetHelp(editorHelp)
	default:
		m.bottom.SetMode(bottombar.ModeSidebar)
		m.bottom.SetHelp(sidebarHelp)
	}
}

// applySizes recalculates component sizes based on the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	// Allocate ~1/3 for the sidebar with sensible bounds.
	left := m.termWidth / 3
	if left < 28 {
		left = 28
	}
	if left > 40 {
		left = 40
	}
	if left > m.termWidth {
		left = m.termWidth
	}
	bodyHeight := max(m.termHeight-m.bottom.Height(), 1)
	m.sidebar.SetSize(left, bodyHeight)
	m.editor.SetSize(max(m.termWidth-left, 1), bodyHeight)
	m.bottom.SetWidth(m.termWidth)
	if m.help != nil {
		m.help.SetSize(m.overlaySize())
	}
}

func (m *Model) overlaySize() (int, int) {
	w := m.termWidth * 2 / 3
	h := (m.termHeight - m.bottom.Height()) * 3 / 4
	return max(w, 32), max(h, 8)
}

// View renders the composed UI.
func (m *Model) View() (string, *tea.Cursor) {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "initializing…", nil
	}
	bodyHeight := max(m.termHeight-m.bottom.Height(), 1)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.editor.View())
	switch {
	case m.confirm != nil:
		body = lipgloss.Place(m.termWidth, bodyHeight, lipgloss.Center, lipgloss.Center, m.confirmView())
	case m.showHelp && m.help != nil:
		body = lipgloss.Place(m.termWidth, bodyHeight, lipgloss.Center, lipgloss.Center, m.help.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.bottom.View()), nil
}

func (m *Model) confirmView() string {
	title := m.theme.Modal.Title.Render("Delete this entry?")
	body := m.theme.Modal.Body.Render(m.confirm.date.Format(editor.DateHeaderLayout) + "\n" + m.confirm.label + "\n\ny / n")
	return m.theme.Modal.Frame.Render(title + "\n\n" + body)
}
