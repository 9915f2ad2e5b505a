// Package events defines the messages components use to report user intent
// to the root model.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// YearActivateMsg is emitted when a year row is activated in the sidebar.
type YearActivateMsg struct {
	Component ComponentID
	Year      int
}

// Describe renders the message for logs.
func (m YearActivateMsg) Describe() string {
	return fmt.Sprintf("year:%04d", m.Year)
}

// MonthActivateMsg is emitted when a month row is activated in the sidebar.
type MonthActivateMsg struct {
	Component ComponentID
	Year      int
	Month     int
}

// Describe renders the message for logs.
func (m MonthActivateMsg) Describe() string {
	return fmt.Sprintf("month:%04d-%02d", m.Year, m.Month)
}

// EntrySelectMsg is emitted when an entry row is activated.
type EntrySelectMsg struct {
	Component ComponentID
	EntryID   string
}

// Describe renders the message for logs.
func (m EntrySelectMsg) Describe() string {
	return fmt.Sprintf("entry:%q", m.EntryID)
}

// EntryDeleteMsg asks for the entry to be deleted after confirmation.
type EntryDeleteMsg struct {
	Component ComponentID
	EntryID   string
}

// Field names an editable entry field.
type Field string

const (
	FieldTitle   Field = "title"
	FieldContent Field = "content"
)

// EntryEditMsg carries the new value of a field after a keystroke.
type EntryEditMsg struct {
	Component ComponentID
	EntryID   string
	Field     Field
	Value     string
}

// Describe renders the message for logs without the value.
func (m EntryEditMsg) Describe() string {
	return fmt.Sprintf("entry:%q field:%s len:%d", m.EntryID, m.Field, len(m.Value))
}

// FocusMsg indicates that a component gained focus.
type FocusMsg struct {
	Component ComponentID
}

// BlurMsg indicates that a component lost focus.
type BlurMsg struct {
	Component ComponentID
}

// FocusCmd emits a FocusMsg for the component.
func FocusCmd(id ComponentID) tea.Cmd {
	return func() tea.Msg { return FocusMsg{Component: id} }
}

// BlurCmd emits a BlurMsg for the component.
func BlurCmd(id ComponentID) tea.Cmd {
	return func() tea.Msg { return BlurMsg{Component: id} }
}

// Emit wraps msg in a command.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
