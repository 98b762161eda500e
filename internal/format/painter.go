package format

import (
	"fmt"

	. "tabedit/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell"
)

type Role int

const (
	IndexNormal Role = iota
	IndexMarked
	Changed
	Separator
	Input
	Tip
	Confirm
	Title
	Error
)

// Painter decorates a piece of output text for its role.
type Painter interface {
	Paint(role Role, text string) string
}

type Plain struct{}

func (Plain) Paint(_ Role, text string) string { return text }

// Styled paints with lipgloss foreground colors resolved from tcell color names.
type Styled struct {
	styles map[Role]lipgloss.Style
}

func NewStyled(colors Colors) Styled {
	names := map[Role]string{
		IndexNormal: colors.IndexNormal,
		IndexMarked: colors.IndexMarked,
		Changed:     colors.Changed,
		Separator:   colors.Separator,
		Input:       colors.Input,
		Tip:         colors.Tip,
		Confirm:     colors.Confirm,
		Title:       colors.Title,
		Error:       colors.Error,
	}
	styles := make(map[Role]lipgloss.Style, len(names))
	for role, name := range names {
		hex := resolveColor(name)
		if hex == "" { continue }
		styles[role] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return Styled{styles: styles}
}

func (s Styled) Paint(role Role, text string) string {
	style, ok := s.styles[role]
	if !ok || text == "" { return text }
	return style.Render(text)
}

// resolveColor maps a tcell color name to "#rrggbb", or "" when unknown.
func resolveColor(name string) string {
	if name == "" { return "" }
	hex := tcell.GetColor(name).Hex()
	if hex < 0 { return "" }
	return fmt.Sprintf("#%06x", hex)
}
