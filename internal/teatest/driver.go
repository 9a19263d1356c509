// Package teatest drives bubbletea models synchronously in tests.
//
// Every message goes straight into Update, and the Cmd it returns is run to
// completion before the next key, so assertions see the state a user would
// see after each key press.
package teatest

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// maxCmdChain bounds how many Cmd→Msg→Cmd hops one input may cause.
	maxCmdChain = 100
	// cmdTimeout separates instant Cmds from timers. Cursor blinks sleep
	// for about half a second and are dropped.
	cmdTimeout = 10 * time.Millisecond
)

// Driver holds the model under test and feeds it input.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting reports that the model returned tea.Quit. The bubbletea
	// runtime normally swallows tea.QuitMsg, so the driver records it.
	Quitting bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(width, height int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	}
}

// New wraps model. Call DrainInit to run the model's Init Cmd.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and every message it produces.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send delivers msg and runs whatever it triggers. Input after quit is
// ignored.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd, 0)
}

// PressKey types a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressKeys types each rune of keys in turn, e.g. "++]".
func (d *Driver) PressKeys(keys string) {
	d.T.Helper()
	for _, r := range keys {
		d.PressKey(r)
	}
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// Type replaces the text of the focused input: ctrl+u clears the line,
// then s is typed.
func (d *Driver) Type(s string) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	d.PressKeys(s)
}

func (d *Driver) View() string {
	return d.Model.View()
}

var ansiSequence = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// PlainView is View without ANSI styling.
func (d *Driver) PlainView() string {
	return ansiSequence.ReplaceAllString(d.View(), "")
}

// run executes cmd and feeds its message back into the model, depth first,
// so nested batches resolve in the order the runtime would deliver them.
func (d *Driver) run(cmd tea.Cmd, hops int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if hops >= maxCmdChain {
		d.T.Logf("teatest: stopped after %d chained commands", maxCmdChain)
		return
	}

	msg, ok := await(cmd)
	if !ok || msg == nil || fromCursor(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, c := range m {
			d.run(c, hops+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(m)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(m)
		d.run(next, hops+1)
	}
}

// await runs cmd off the test goroutine and gives up after cmdTimeout.
func await(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// fromCursor matches the blink messages of bubbles/cursor. Feeding them
// back schedules another blink timer.
func fromCursor(msg tea.Msg) bool {
	t := reflect.TypeOf(msg)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.HasSuffix(t.PkgPath(), "bubbles/cursor")
}
