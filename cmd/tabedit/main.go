package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"tabedit/internal/clipboard"
	. "tabedit/internal/config"
	"tabedit/internal/format"
	. "tabedit/internal/logger"
	"tabedit/internal/session"

	"github.com/spf13/cobra"
)

var (
	configFile string
	noColor    bool
	fromStdin  bool
	asJSON     bool
	scopeText  string
	indexText  string
	changeText string
	confirm    bool
)

var rootCmd = &cobra.Command{
	Use:   "tabedit",
	Short: "Edit integer tables on the clipboard column by column",
	Long: `tabedit reads a table such as [1,2,3
4,5,6] from the clipboard, adds to, appends or deletes a column over a
range of rows, previews every change and copies the result back.

Run without arguments to start the interactive loop (get, show, last, exit).`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the table on the clipboard",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply one edit without prompts",
	Long: `Applies changes to columns over a row scope.

Example:
  tabedit apply --scope "2 -" --index "1 3" --change "10 d" --yes

Changes are integers to add, or d/del/x to delete the last value of each row.
Without --yes the edit is only previewed.`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $TABEDIT_CONF or tabedit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	showCmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the table from stdin instead of the clipboard")
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print the table as JSON")

	applyCmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the table from stdin and print the result")
	applyCmd.Flags().StringVar(&scopeText, "scope", "", `row scope "start end", "-" for first or last row`)
	applyCmd.Flags().StringVar(&indexText, "index", "", "1-based columns, space separated")
	applyCmd.Flags().StringVar(&changeText, "change", "", "one change per column")
	applyCmd.Flags().BoolVarP(&confirm, "yes", "y", false, "write the result back")
	_ = applyCmd.MarkFlagRequired("scope")
	_ = applyCmd.MarkFlagRequired("index")
	_ = applyCmd.MarkFlagRequired("change")

	rootCmd.AddCommand(showCmd, applyCmd)
}

func main() {
	if err := Log.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	err := rootCmd.Execute()
	Log.Stop()
	if err != nil { os.Exit(1) }
}

func loadConfig() Config {
	if configFile != "" { return Load(configFile) }
	return GetConfig()
}

func newPainter(conf Config) format.Painter {
	if noColor { return format.Plain{} }
	return format.NewStyled(conf.Colors)
}

func openClipboard(cmd *cobra.Command) (clipboard.Clipboard, error) {
	if fromStdin {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil { return nil, fmt.Errorf("error reading stdin: %w", err) }
		return &clipboard.Memory{Text: string(data)}, nil
	}
	if !clipboard.Available() { return nil, errors.New("no clipboard available, try --stdin") }
	return clipboard.System{}, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	conf := loadConfig()
	board, err := openClipboard(cmd)
	if err != nil { return err }

	prompter := session.NewLinePrompter(conf.History)
	defer prompter.Close()

	Log.Info("starting tabedit")
	s := session.New(conf, board, prompter, cmd.OutOrStdout(), newPainter(conf))
	return s.Run()
}

func runShow(cmd *cobra.Command, args []string) error {
	conf := loadConfig()
	board, err := openClipboard(cmd)
	if err != nil { return err }

	s := session.New(conf, board, nil, cmd.OutOrStdout(), newPainter(conf))
	return s.Show(asJSON)
}

func runApply(cmd *cobra.Command, args []string) error {
	conf := loadConfig()
	board, err := openClipboard(cmd)
	if err != nil { return err }

	s := session.New(conf, board, nil, cmd.OutOrStdout(), newPainter(conf))
	err = s.Apply(scopeText, indexText, changeText, confirm)
	if err != nil { return err }

	if memory, ok := board.(*clipboard.Memory); ok && confirm {
		fmt.Fprint(cmd.OutOrStdout(), memory.Text)
	}
	return nil
}
