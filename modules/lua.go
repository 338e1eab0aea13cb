package modules

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/cockroachdb/errors"
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/element"
	"github.com/drake/plank/theme"
)

// Lua produces its text from a user-supplied Lua chunk. The chunk runs once
// per tick and its return value becomes the module text; Update compares
// the result against the cached text for change detection. A chunk error
// keeps the previous text and reports no change.
//
// The VM is owned by this module and only ever touched from Update, which
// the bar already serializes against rendering.
type Lua struct {
	id    string
	state *glua.LState
	fn    *glua.LFunction
	text  string
}

// NewLua compiles the chunk and creates the module. The chunk must return
// a string, e.g. `return os.date("%H:%M")`.
func NewLua(id, chunk string) (*Lua, error) {
	state := glua.NewState()
	fn, err := state.Load(strings.NewReader(chunk), id)
	if err != nil {
		state.Close()
		return nil, errors.Wrapf(err, "lua module %q", id)
	}
	m := &Lua{id: id, state: state, fn: fn}
	m.Update()
	return m, nil
}

// Close releases the Lua VM.
func (l *Lua) Close() {
	l.state.Close()
}

func (l *Lua) ID() string { return l.id }

func (l *Lua) Measure() bar.Size {
	return bar.Size{Width: ansi.StringWidth(l.text), Height: 1}
}

func (l *Lua) Update() bool {
	l.state.Push(l.fn)
	if err := l.state.PCall(0, 1, nil); err != nil {
		return false
	}
	ret := l.state.Get(-1)
	l.state.Pop(1)

	next := glua.LVAsString(ret)
	if next == l.text {
		return false
	}
	l.text = next
	return true
}

func (l *Lua) IsLoading() bool { return false }

func (l *Lua) Render(th theme.Theme) element.Element {
	return element.Styled(l.text, th.Text)
}
