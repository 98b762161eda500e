package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabedit/internal/operations"
)

func stdinCmd(input string) (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	return cmd, out
}

func resetFlags(t *testing.T) {
	fromStdin, noColor, asJSON, confirm = true, true, false, false
	scopeText, indexText, changeText, configFile = "", "", "", ""
	t.Cleanup(func() { fromStdin, noColor, asJSON, confirm = false, false, false, false })
	t.Setenv("TABEDIT_CONF", t.TempDir()+"/none.yaml")
}

func TestShowCmdJSON(t *testing.T) {
	resetFlags(t)
	asJSON = true

	cmd, out := stdinCmd("[1,2\n3,4]")
	require.NoError(t, runShow(cmd, nil))
	assert.Equal(t, "[[1,2],[3,4]]\n", out.String())
}

func TestApplyCmd(t *testing.T) {
	resetFlags(t)
	scopeText, indexText, changeText, confirm = "1 2", "3", "7", true

	cmd, out := stdinCmd("[1,2\n3,4]")
	require.NoError(t, runApply(cmd, nil))
	assert.True(t, strings.HasSuffix(out.String(), "[1, 2, 7]\n[3, 4, 7]\n"), out.String())
}

func TestApplyCmdDryRun(t *testing.T) {
	resetFlags(t)
	scopeText, indexText, changeText = "1 2", "2", "10"

	cmd, out := stdinCmd("[1,2,3\n4,5,6]")
	require.NoError(t, runApply(cmd, nil))
	assert.Contains(t, out.String(), "dry run")
	assert.NotContains(t, out.String(), "[1, 12, 3]")
}

func TestApplyCmdInvalidOperation(t *testing.T) {
	resetFlags(t)
	scopeText, indexText, changeText, confirm = "1 2", "3", "d", true

	cmd, _ := stdinCmd("[1,2\n3,4]")
	err := runApply(cmd, nil)
	assert.ErrorIs(t, err, operations.ErrInvalidOperation)
}
