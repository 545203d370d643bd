package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/fakenews/internal/config"
	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/pkg/log"
)

// ReadLine is the terminal console. It also runs the menu session as a
// service.
type ReadLine struct {
	cfg  *config.AppConfig
	menu core.Menu
	rl   *readline.Instance
}

func NewReadLine(menu core.Menu, cfg *config.AppConfig) (*ReadLine, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}

	return &ReadLine{
		cfg:  cfg,
		menu: menu,
		rl:   rl,
	}, nil
}

func (r *ReadLine) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lead, rest := splitLead(prompt)
	if lead != "" {
		r.Print(lead)
	}
	r.rl.SetPrompt(r.promptFor(rest))

	line, err := r.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", io.EOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptFor puts the configured prompt marker in front of a question.
func (r *ReadLine) promptFor(question string) string {
	return r.cfg.Prompt + question
}

// splitLead separates leading blank lines, which readline cannot render as
// part of its prompt.
func splitLead(prompt string) (string, string) {
	rest := strings.TrimLeft(prompt, "\n")
	return prompt[:len(prompt)-len(rest)], rest
}

func (r *ReadLine) Print(text string) {
	fmt.Fprint(r.rl.Stdout(), text)
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("fakenews session started. Type 'exit' to quit.")

	return NewSession(r.menu, r).Run(ctx)
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
