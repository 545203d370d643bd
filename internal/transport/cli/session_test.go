package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedConsole struct {
	inputs []string
	out    strings.Builder
}

func (c *scriptedConsole) Ask(_ context.Context, _ string) (string, error) {
	if len(c.inputs) == 0 {
		return "", io.EOF
	}
	line := c.inputs[0]
	c.inputs = c.inputs[1:]
	return line, nil
}

func (c *scriptedConsole) Print(text string) {
	c.out.WriteString(text)
}

type stubActivity struct {
	name  string
	plays int
	err   error
}

func (a *stubActivity) Name() string        { return a.name }
func (a *stubActivity) Description() string { return "Stub " + a.name }

func (a *stubActivity) Play(_ context.Context, console core.Console) error {
	a.plays++
	console.Print("played " + a.name + "\n")
	return a.err
}

func TestSession_DispatchesUntilExit(t *testing.T) {
	first := &stubActivity{name: "first"}
	second := &stubActivity{name: "second"}
	menu := command.New([]core.Activity{first, second})

	console := &scriptedConsole{inputs: []string{"1", "9", "two", "2", "1", "3"}}
	session := NewSession(menu, console)
	require.NotEmpty(t, session.ID)

	require.NoError(t, session.Run(context.Background()))

	assert.Equal(t, 2, first.plays)
	assert.Equal(t, 1, second.plays)

	out := console.out.String()
	assert.Contains(t, out, "1. Stub first")
	assert.Contains(t, out, "3. Exit")
	assert.Equal(t, 2, strings.Count(out, "Please choose one of the listed options."))
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestSession_EOFIsNormalExit(t *testing.T) {
	act := &stubActivity{name: "only"}
	console := &scriptedConsole{inputs: []string{"1"}}

	require.NoError(t, NewSession(command.New([]core.Activity{act}), console).Run(context.Background()))
	assert.Equal(t, 1, act.plays)
}

func TestSession_ExitFromActivity(t *testing.T) {
	act := &stubActivity{name: "only", err: core.ErrExit}
	console := &scriptedConsole{inputs: []string{"1", "1"}}

	require.NoError(t, NewSession(command.New([]core.Activity{act}), console).Run(context.Background()))
	assert.Equal(t, 1, act.plays)
	assert.Contains(t, console.out.String(), "Goodbye!")
}

func TestSession_PropagatesActivityFailure(t *testing.T) {
	boom := errors.New("boom")
	act := &stubActivity{name: "only", err: boom}
	console := &scriptedConsole{inputs: []string{"1"}}

	err := NewSession(command.New([]core.Activity{act}), console).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSession_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	act := &stubActivity{name: "only"}
	err := NewSession(command.New([]core.Activity{act}), &scriptedConsole{inputs: []string{"1"}}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, act.plays)
}

func TestSession_TypedExitAtMenu(t *testing.T) {
	for _, input := range []string{"exit", "QUIT"} {
		act := &stubActivity{name: "only"}
		console := &scriptedConsole{inputs: []string{input, "1"}}

		require.NoError(t, NewSession(command.New([]core.Activity{act}), console).Run(context.Background()))
		assert.Zero(t, act.plays)
		assert.True(t, strings.HasSuffix(console.out.String(), "Goodbye!\n"), input)
	}
}
