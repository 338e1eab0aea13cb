package modules

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/drake/plank/theme"
)

func luaText(t *testing.T, l *Lua) string {
	t.Helper()
	th := theme.Default()
	return ansi.Strip(l.Render(th).Render(th))
}

func TestLuaCounterChunk(t *testing.T) {
	l, err := NewLua("counter", `
		n = (n or 0) + 1
		return "tick " .. n
	`)
	require.NoError(t, err)
	defer l.Close()

	// The constructor already ran the chunk once.
	require.Equal(t, "tick 1", luaText(t, l))

	require.True(t, l.Update())
	require.Equal(t, "tick 2", luaText(t, l))
	require.Equal(t, len("tick 2"), l.Measure().Width)
}

func TestLuaConstantChunkReportsNoChange(t *testing.T) {
	l, err := NewLua("const", `return "fixed"`)
	require.NoError(t, err)
	defer l.Close()

	require.Equal(t, "fixed", luaText(t, l))
	require.False(t, l.Update())
	require.False(t, l.IsLoading())
}

func TestLuaCompileError(t *testing.T) {
	_, err := NewLua("broken", `return return`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `lua module "broken"`)
}

func TestLuaRuntimeErrorKeepsText(t *testing.T) {
	l, err := NewLua("flaky", `
		n = (n or 0) + 1
		if n > 1 then error("boom") end
		return "ok"
	`)
	require.NoError(t, err)
	defer l.Close()

	require.Equal(t, "ok", luaText(t, l))
	require.False(t, l.Update())
	require.Equal(t, "ok", luaText(t, l))
}
