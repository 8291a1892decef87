package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, verbose = "", false
	parseTree, parseEngine = false, ""
	fmtWrite = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLex(t *testing.T) {
	out, _, err := execute(t, "let x = 5;", "lex", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"1:1", "Let", "let"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1:5", "Ident", "x"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1:11", "Eof"}, strings.Fields(lines[5]))
}

func TestParse(t *testing.T) {
	path := writeFile(t, "add.mn", "let add = fn(x, y) { x + y; };\nadd(1, 2 * 3);\n")

	out, stderr, err := execute(t, "", "parse", path)
	require.NoError(t, err)
	assert.Equal(t, "let add = fn(x, y) { (x + y); };add(1, (2 * 3))\n", out)
	assert.Contains(t, stderr, "Successfully parsed")
}

func TestParseTreeWithGrammarEngine(t *testing.T) {
	out, _, err := execute(t, "-a", "parse", "--tree", "--engine", "grammar", "-")
	require.NoError(t, err)
	assert.Equal(t, "Program\n  ExprStmt\n    PrefixExpr -\n      Ident a\n", out)
}

func TestParseReportsErrors(t *testing.T) {
	out, stderr, err := execute(t, "let = 5;\nlet y = ;\n", "parse", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 syntax errors")
	assert.Empty(t, out)
	assert.Contains(t, stderr, "error[E0100]: expected Ident, found Assign")
	assert.Contains(t, stderr, "error[E0101]: expected expression, found Semicolon")
	assert.Contains(t, stderr, "Parsing failed")
}

func TestParseUnknownEngine(t *testing.T) {
	_, _, err := execute(t, "x", "parse", "--engine", "yacc", "-")
	assert.EqualError(t, err, `unknown engine "yacc"`)
}

func TestParseUsesConfig(t *testing.T) {
	cfgPath := writeFile(t, "mnlang.yaml", "color: false\nrender: tree\n")

	out, _, err := execute(t, "x", "--config", cfgPath, "parse", "-")
	require.NoError(t, err)
	assert.Equal(t, "Program\n  ExprStmt\n    Ident x\n", out)
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := writeFile(t, "mnlang.toml", "engine = \"yacc\"\n")

	_, _, err := execute(t, "x", "--config", cfgPath, "parse", "-")
	assert.ErrorContains(t, err, "engine must be")
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.mn", "if (a < b) { a } else { b }")
	bad := writeFile(t, "bad.mn", "let = ;")

	out, _, err := execute(t, "", "check", good, bad)
	require.NoError(t, err)
	assert.Contains(t, out, "ok  "+good)
	assert.Contains(t, out, "ok  "+bad)
}

func TestFmtWrite(t *testing.T) {
	path := writeFile(t, "fmt.mn", "let x=1;x")

	out, _, err := execute(t, "", "fmt", "--write", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\nx;\n", string(data))
}

func TestRepl(t *testing.T) {
	out, _, err := execute(t, "1 + 2\n", "repl")
	require.NoError(t, err)
	assert.Equal(t, ">> (1 + 2)\n>> \n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mnlang v"+Version+"\n"))
}

func TestExplain(t *testing.T) {
	out, _, err := execute(t, "", "explain", "e0103")
	require.NoError(t, err)
	assert.Equal(t, "E0103: A '{' block is never closed with '}'\n", out)

	_, _, err = execute(t, "", "explain", "E9999")
	assert.EqualError(t, err, `unknown error code "E9999"`)
}
