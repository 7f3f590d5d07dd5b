package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"solparse/internal/config"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "A.sol", "pragma solidity ^0.8.0;")

	out, errOut, err := run(t, "parse", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "SourceUnit",
		"children": [{"type": "PragmaDirective", "name": "solidity", "value": "^0.8.0"}]
	}`, out)
	assert.Contains(t, errOut, "Successfully parsed 1 files")
}

func TestParseCommandYAMLWithRange(t *testing.T) {
	path := writeSource(t, "A.sol", "contract A {}")

	out, _, err := run(t, "parse", "--format", "yaml", "--range", path)
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "SourceUnit", tree["type"])
	assert.Equal(t, []any{0, 12}, tree["range"])
}

func TestParseCommandReportsErrors(t *testing.T) {
	good := writeSource(t, "Good.sol", "contract A {}")
	bad := writeSource(t, "Bad.sol", "contract B {\n    receive() external {}\n}")

	out, errOut, err := run(t, "parse", good, bad)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, `"name": "A"`)
	assert.Contains(t, errOut, `Receive Ether functions have to be declared "payable"`)
	assert.Contains(t, errOut, "Bad.sol:2:5")
	assert.Contains(t, errOut, "Parsing failed for 1 of 2 files")
}

func TestParseCommandRejectsBadFormat(t *testing.T) {
	path := writeSource(t, "A.sol", "contract A {}")
	_, _, err := run(t, "parse", "--format", "xml", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestParseCommandUsesConfigFile(t *testing.T) {
	path := writeSource(t, "A.sol", "contract A {}")
	cfg := writeSource(t, "solparse.toml", "color = \"never\"\n[output]\nloc = true\nindent = \"\\t\"\n")

	out, _, err := run(t, "--config", cfg, "parse", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"loc": {`)
	assert.True(t, strings.HasPrefix(out, "{\n\t\"type\""), "indent comes from the config file")

	out, _, err = run(t, "--config", cfg, "parse", "--loc=false", path)
	require.NoError(t, err)
	assert.NotContains(t, out, `"loc"`, "flags override the config file")
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, "A.sol", "/// doc\nuint x;")

	out, _, err := run(t, "tokens", "--comments", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "COMMENT(line-doc)")
	assert.Contains(t, lines[1], "TYPE_NAME")
	assert.Contains(t, lines[1], `"uint"`)
	assert.True(t, strings.HasPrefix(lines[2], "2:6"))
	assert.Contains(t, lines[4], "EOF")
}

func TestSelectorsCommand(t *testing.T) {
	path := writeSource(t, "Token.sol", `
contract Token {
    function transfer(address to, uint amount) external returns (bool) {}
    event Transfer(address indexed from, address indexed to, uint value);
}
error Unauthorized();`)

	out, _, err := run(t, "selectors", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "0xa9059cbb"))
	assert.Contains(t, lines[0], "Token.transfer(address,uint256)")
	assert.Contains(t, lines[1], "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
	assert.Contains(t, lines[2], "error")
	assert.Contains(t, lines[2], "Unauthorized()")
}

func TestReadFailure(t *testing.T) {
	_, errOut, err := run(t, "parse", filepath.Join(t.TempDir(), "missing.sol"))
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "failed to read file")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestParseCommandWriteFailure(t *testing.T) {
	path := writeSource(t, "A.sol", "contract A {}")

	err := runParse(failingWriter{}, io.Discard, &options{cfg: config.Default()}, []string{path})
	require.Error(t, err)
	assert.Equal(t, "failed to write output: disk full", err.Error())
}
