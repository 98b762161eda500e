package session

import (
	"errors"
	"fmt"
	"os"
	"strings"

	. "tabedit/internal/logger"

	"github.com/peterh/liner"
)

// LinePrompter reads input with line editing and an optional history file.
type LinePrompter struct {
	state   *liner.State
	history string
}

func NewLinePrompter(history string) *LinePrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &LinePrompter{state: state, history: history}
}

func (p *LinePrompter) Prompt(tip string) (string, error) {
	line, err := p.state.Prompt(tip)
	if errors.Is(err, liner.ErrPromptAborted) { return "", ErrAborted }
	if err != nil { return "", err }
	if strings.TrimSpace(line) != "" { p.state.AppendHistory(line) }
	return line, nil
}

func (p *LinePrompter) Close() error {
	if p.history != "" {
		if f, err := os.Create(p.history); err == nil {
			_, _ = p.state.WriteHistory(f)
			_ = f.Close()
		} else {
			Log.Error("history", err.Error())
		}
	}
	err := p.state.Close()
	if err != nil { return fmt.Errorf("error restoring terminal: %w", err) }
	return nil
}
