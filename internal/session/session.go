package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"tabedit/internal/clipboard"
	. "tabedit/internal/config"
	. "tabedit/internal/diff"
	"tabedit/internal/format"
	. "tabedit/internal/logger"
	. "tabedit/internal/operations"
	. "tabedit/internal/table"
	. "tabedit/internal/utils"
)

var ErrAborted = errors.New("input aborted")

const prompt = ": "

type Prompter interface {
	Prompt(tip string) (string, error)
}

// Session owns one clipboard editing loop. LastScope lives as long as the session.
type Session struct {
	Config    Config
	Clipboard clipboard.Clipboard
	Prompter  Prompter
	Out       io.Writer
	Painter   format.Painter
	LastScope LastScope

	formatter format.Formatter
}

func New(config Config, board clipboard.Clipboard, prompter Prompter, out io.Writer, painter format.Painter) *Session {
	if painter == nil { painter = format.Plain{} }
	return &Session{
		Config:    config,
		Clipboard: board,
		Prompter:  prompter,
		Out:       out,
		Painter:   painter,
		formatter: format.New(config.Layout, painter),
	}
}

const help = `commands:
  get   edit the table on the clipboard
  show  print the table on the clipboard
  last  print the last applied scope
  exit  quit`

// Run reads commands until "exit" or the end of input. Errors of a single
// "get" are reported and the loop goes on.
func (s *Session) Run() error {
	for {
		fmt.Fprintln(s.Out)
		command, err := s.Prompter.Prompt("input command: ")
		if isEnd(err) { return nil }
		if err != nil { return err }

		switch strings.ToLower(strings.TrimSpace(command)) {
		case "exit":
			return nil
		case "get":
			err = s.Get()
		case "show":
			err = s.Show(false)
		case "last":
			fmt.Fprintln(s.Out, "last scope:", s.LastScope)
		case "help":
			fmt.Fprintln(s.Out, help)
		case "":
		default:
			fmt.Fprintf(s.Out, "unknown command %q, type help\n", command)
		}

		if isEnd(err) { return nil }
		if err != nil {
			Log.Error(command, err.Error())
			s.println(format.Error, "\nFatal: runtime error: "+err.Error())
		}
	}
}

func isEnd(err error) bool { return errors.Is(err, io.EOF) || errors.Is(err, ErrAborted) }

// Get runs one edit: read the clipboard, ask scope, columns and changes,
// preview every change and write back when confirmed.
func (s *Session) Get() error {
	data, err := s.read()
	if err != nil { return err }

	s.println(format.Title, "\nclipboard content:")
	fmt.Fprint(s.Out, s.formatter.Format(data, nil, -1))

	scope, err := ask(s, "input scope", "(start end)(-)", func(line string) (Scope, error) {
		return ParseScope(line, len(data), s.LastScope)
	})
	if err != nil { return err }

	indexes, err := ask(s, "input index", "(start on 1)", ParseIndexes)
	if err != nil { return err }

	columns := make([]int, len(indexes))
	for i, index := range indexes { columns[i] = index + 1 }
	deltas, err := ask(s, fmt.Sprintf("input changes on %v", columns), "(d deletes last)", ParseDeltas)
	if err != nil { return err }

	ops, err := Pair(indexes, deltas)
	if err != nil { return err }

	edited, err := s.edit(data, scope, ops)
	if err != nil { return err }

	answer, err := s.Prompter.Prompt(s.tip("apply", "(y/n)"))
	if err != nil { return err }
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Fprintln(s.Out, "discarded")
		return nil
	}
	return s.commit(edited, scope)
}

// Apply is Get without prompts. Changes are written back only when confirm is set.
func (s *Session) Apply(scopeText, indexText, changeText string, confirm bool) error {
	data, err := s.read()
	if err != nil { return err }

	scope, err := ParseScope(scopeText, len(data), s.LastScope)
	if err != nil { return err }
	indexes, err := ParseIndexes(indexText)
	if err != nil { return err }
	deltas, err := ParseDeltas(changeText)
	if err != nil { return err }
	ops, err := Pair(indexes, deltas)
	if err != nil { return err }

	edited, err := s.edit(data, scope, ops)
	if err != nil { return err }
	if !confirm {
		fmt.Fprintln(s.Out, "dry run, clipboard untouched")
		return nil
	}
	return s.commit(edited, scope)
}

func (s *Session) Show(asJSON bool) error {
	data, err := s.read()
	if err != nil { return err }
	if asJSON {
		text, err := ToJSON(data)
		if err != nil { return err }
		fmt.Fprintln(s.Out, text)
		return nil
	}
	fmt.Fprint(s.Out, s.formatter.Format(data, nil, -1))
	return nil
}

func (s *Session) read() (Table, error) {
	text, err := s.Clipboard.Get()
	if err != nil { return nil, err }
	return Parse(text)
}

// edit applies ops one after another, printing the table after each op and
// a summary of changed rows at the end.
func (s *Session) edit(data Table, scope Scope, ops []ColumnOp) (Table, error) {
	Log.Info("edit", scope.String(), fmt.Sprint(ops))
	before := data.Clone()
	highlight := Range(scope.Start-1, scope.End-1)

	edited, err := ApplyAll(data, scope, ops, func(current Table, op ColumnOp) {
		s.println(format.Title, "\ncurrent values:")
		fmt.Fprint(s.Out, s.formatter.Format(current, highlight, op.Column))
	})
	if err != nil { return nil, err }

	changed := ChangedRows(before, edited)
	fmt.Fprintf(s.Out, "%d rows changed %v\n", len(changed), changed.GetKeys())
	if s.Config.ShowDiff && len(changed) > 0 {
		text, err := Unified(before, edited)
		if err != nil { return nil, err }
		fmt.Fprint(s.Out, text)
	}
	return edited, nil
}

func (s *Session) commit(data Table, scope Scope) error {
	err := s.Clipboard.Set(Serialize(data))
	if err != nil { return err }
	s.LastScope.Set(scope)
	Log.Info("applied", scope.String())
	s.println(format.Confirm, "copied to clipboard")
	return nil
}

// tip prints the painted label and hint on a line of their own and returns
// the bare prompt. The line editor redraws its line from column 0.
func (s *Session) tip(label, hint string) string {
	fmt.Fprintln(s.Out, s.Painter.Paint(format.Input, fmt.Sprintf("%-*s ", s.Config.Layout.InputAlign, label))+
		s.Painter.Paint(format.Tip, hint))
	return prompt
}

// println paints text without its leading newlines.
func (s *Session) println(role format.Role, text string) {
	trimmed := strings.TrimLeft(text, "\n")
	fmt.Fprint(s.Out, text[:len(text)-len(trimmed)])
	fmt.Fprintln(s.Out, s.Painter.Paint(role, trimmed))
}

// ask prompts until parse accepts the input. Only prompt errors are returned.
func ask[T any](s *Session, label, hint string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.Prompter.Prompt(s.tip(label, hint))
		if err != nil {
			var zero T
			return zero, err
		}
		value, err := parse(line)
		if err == nil { return value, nil }
		s.println(format.Error, "\nErr: invalid input: "+err.Error())
	}
}
