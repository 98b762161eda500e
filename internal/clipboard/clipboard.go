package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type Clipboard interface {
	Get() (string, error)
	Set(text string) error
}

// System is the desktop clipboard.
type System struct{}

func (System) Get() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil { return "", fmt.Errorf("error reading clipboard: %w", err) }
	return text, nil
}

func (System) Set(text string) error {
	err := clipboard.WriteAll(text)
	if err != nil { return fmt.Errorf("error writing clipboard: %w", err) }
	return nil
}

func Available() bool { return !clipboard.Unsupported }

// Memory keeps the text in process, for tests and piped input.
type Memory struct {
	Text   string
	Writes int
}

func (m *Memory) Get() (string, error) { return m.Text, nil }

func (m *Memory) Set(text string) error {
	m.Text = text
	m.Writes++
	return nil
}
