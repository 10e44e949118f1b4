package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CZERTAINLY/cwc/internal/stats"

	"github.com/stretchr/testify/require"
)

type then struct {
	code   int
	stdout string
	stderr string
}

func runCwc(t *testing.T, stdin string, args ...string) then {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(args, strings.NewReader(stdin), &stdout, &stderr, stats.New(t.Name()))
	return then{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func tempFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "cwc-*.txt")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestFlags(t *testing.T) {
	hello := tempFile(t, "Hello, world!\n")

	tests := []struct {
		scenario string
		given    []string
		then     then
	}{
		{
			scenario: "no flags",
			given:    []string{hello},
			then:     then{stdout: fmt.Sprintf("%7d %7d %7d %s\n", 1, 2, 14, hello)},
		},
		{
			scenario: "bytes",
			given:    []string{"-c", hello},
			then:     then{stdout: fmt.Sprintf("%7d %s\n", 14, hello)},
		},
		{
			scenario: "lines",
			given:    []string{"-l", hello},
			then:     then{stdout: fmt.Sprintf("%7d %s\n", 1, hello)},
		},
		{
			scenario: "words",
			given:    []string{"--words", hello},
			then:     then{stdout: fmt.Sprintf("%7d %s\n", 2, hello)},
		},
		{
			scenario: "chars",
			given:    []string{"-m", hello},
			then:     then{stdout: fmt.Sprintf("%7d %s\n", 14, hello)},
		},
		{
			scenario: "flag order does not change columns",
			given:    []string{"-m", "-w", "-l", hello},
			then:     then{stdout: fmt.Sprintf("%7d %7d %7d %s\n", 1, 2, 14, hello)},
		},
		{
			scenario: "combined shorthand",
			given:    []string{"-wc", hello},
			then:     then{stdout: fmt.Sprintf("%7d %7d %s\n", 2, 14, hello)},
		},
		{
			scenario: "width",
			given:    []string{"-c", "--width", "8", hello},
			then:     then{stdout: fmt.Sprintf("%8d %s\n", 14, hello)},
		},
		{
			scenario: "width 1",
			given:    []string{"-c", "--width", "1", hello},
			then:     then{stdout: fmt.Sprintf("%d %s\n", 14, hello)},
		},
		{
			scenario: "json",
			given:    []string{"-l", "--format", "json", hello},
			then:     then{stdout: fmt.Sprintf("{\"label\":%q,\"lines\":1}\n", hello)},
		},
		{
			scenario: "unknown format",
			given:    []string{"--format", "xml", hello},
			then: then{
				code:   1,
				stderr: "cwc: unsupported format \"xml\", expected one of text, json, yaml\n",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			got := runCwc(t, "", tt.given...)
			require.Equal(t, tt.then, got)
		})
	}
}

func TestFlagErrors(t *testing.T) {
	hello := tempFile(t, "Hello, world!\n")

	tests := []struct {
		scenario string
		given    []string
		then     []string
	}{
		{
			scenario: "bytes and chars are exclusive",
			given:    []string{"-c", "-m", hello},
			then:     []string{"bytes", "chars"},
		},
		{
			scenario: "bytes and chars are exclusive with lines",
			given:    []string{"-l", "--chars", "--bytes", hello},
			then:     []string{"bytes", "chars"},
		},
		{
			scenario: "unknown flag",
			given:    []string{"-x", hello},
			then:     []string{"unknown shorthand flag", "'x'"},
		},
		{
			scenario: "zero width",
			given:    []string{"-c", "--width", "0", hello},
			then:     []string{"--width must be at least 1, got 0"},
		},
		{
			scenario: "negative width",
			given:    []string{"-c", "--width=-3", hello},
			then:     []string{"--width must be at least 1, got -3"},
		},
		{
			scenario: "invalid width",
			given:    []string{"--width", "wide", hello},
			then:     []string{"--width"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			got := runCwc(t, "", tt.given...)
			require.Equal(t, 1, got.code)
			require.Empty(t, got.stdout)
			require.True(t, strings.HasPrefix(got.stderr, "cwc: "), got.stderr)
			for _, s := range tt.then {
				require.Contains(t, got.stderr, s)
			}
		})
	}
}

func TestOneFile(t *testing.T) {
	path := tempFile(t, "Hello, world!")

	got := runCwc(t, "", path)

	require.Equal(t, then{stdout: fmt.Sprintf("%7d %7d %7d %s\n", 0, 2, 13, path)}, got)
}

func TestTwoFiles(t *testing.T) {
	path1 := tempFile(t, "Hello, world!")
	path2 := tempFile(t, `I have a dream!
    I have a dream that one day on the red hills of Georgia,
    the sons of former slaves and the sons of former slave owners
    will be able to sit down together at the table of brotherhood.`)

	got := runCwc(t, "", "-c", path1, path2)

	require.Equal(t, 0, got.code)
	require.Empty(t, got.stderr)
	require.Contains(t, got.stdout, fmt.Sprintf("%7d %s\n", 13, path1))
	require.Contains(t, got.stdout, fmt.Sprintf("%7d %s\n", 209, path2))
	require.True(t, strings.HasSuffix(got.stdout, fmt.Sprintf("%7d %s\n", 222, "total")))
}

func TestFileNonExistent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "non_existent_file.txt")

	got := runCwc(t, "", missing)

	require.Equal(t, then{code: 1, stderr: "cwc: " + missing + ": open: No such file\n"}, got)
}

func TestMissingAndValidFile(t *testing.T) {
	valid := tempFile(t, "Hello, world!")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	got := runCwc(t, "", "-c", valid, missing)

	require.Equal(t, 1, got.code)
	require.Equal(t, "cwc: "+missing+": open: No such file\n", got.stderr)
	require.Equal(t, fmt.Sprintf("%7d %s\n%7d %s\n", 13, valid, 13, "total"), got.stdout)
}

func TestStdin(t *testing.T) {
	t.Run("content", func(t *testing.T) {
		got := runCwc(t, "one\ntwo three\n")
		require.Equal(t, then{stdout: fmt.Sprintf("%7d %7d %7d \n", 2, 3, 14)}, got)
	})
	t.Run("empty", func(t *testing.T) {
		got := runCwc(t, "")
		require.Equal(t, then{stdout: fmt.Sprintf("%7d %7d %7d \n", 0, 0, 0)}, got)
	})
	t.Run("yaml", func(t *testing.T) {
		got := runCwc(t, "a b\n", "-w", "--format", "yaml")
		require.Equal(t, then{stdout: "label: \"\"\nwords: 2\n"}, got)
	})
}

func TestVersion(t *testing.T) {
	got := runCwc(t, "", "--version")
	require.Equal(t, 0, got.code)
	require.True(t, strings.HasPrefix(got.stdout, "cwc "), got.stdout)
}

func TestHelp(t *testing.T) {
	got := runCwc(t, "", "--help")
	require.Equal(t, 0, got.code)
	for _, flag := range []string{"--bytes", "--lines", "--words", "--chars", "--format", "--width", "--verbose"} {
		require.Contains(t, got.stdout, flag)
	}
}

func TestInvalidUTF8File(t *testing.T) {
	path := tempFile(t, "caf\xe9\n")

	got := runCwc(t, "", path)

	require.Equal(t, then{code: 1, stderr: "cwc: Error reading file: stream did not contain valid UTF-8\n"}, got)
}
