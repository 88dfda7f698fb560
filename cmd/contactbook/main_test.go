package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// errExitCalled is a sentinel used to catch kong's os.Exit calls in tests.
var errExitCalled = errors.New("exit called")

const seedYAML = `
contacts:
  - name: John
    birthday: "16.11.1987"
    phones: ["1234567890", "5555555555"]
  - name: Jane
    phones: ["9876543210"]
  - name: Olena
  - name: Petro
`

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := runMain(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestVersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic from --version flag")
		err, ok := r.(error)
		if !ok || !errors.Is(err, errExitCalled) {
			panic(r)
		}
		assert.Contains(t, stdout.String(), config.AppName)
		assert.Contains(t, stdout.String(), config.Version)
	}()

	runMain([]string{"--version"}, &stdout, &stderr,
		kong.Exit(func(int) { panic(errExitCalled) }))
}

func TestList(t *testing.T) {
	out, _, code := execute(t, "--seed", writeSeed(t), "list", "--page-size", "3")
	require.Equal(t, config.ExitCodeSuccess, code)

	assert.Equal(t, strings.Join([]string{
		"--- Page 1 ---",
		"Contact name: John, phones: 1234567890; 5555555555, birthday: 1987-11-16",
		"Contact name: Jane, phones: 9876543210",
		"Contact name: Olena, phones: ",
		"--- Page 2 ---",
		"Contact name: Petro, phones: ",
		"",
	}, "\n"), out)
}

func TestList_IsDefaultCommand(t *testing.T) {
	out, _, code := execute(t, "--seed", writeSeed(t))
	require.Equal(t, config.ExitCodeSuccess, code)
	assert.Contains(t, out, "--- Page 2 ---")
}

func TestList_EmptyBook(t *testing.T) {
	out, _, code := execute(t, "--lang", "uk", "list")
	require.Equal(t, config.ExitCodeSuccess, code)
	assert.Equal(t, "Адресна книга порожня.\n", out)
}

func TestShow(t *testing.T) {
	seed := writeSeed(t)

	out, _, code := execute(t, "--seed", seed, "show", "Jane")
	require.Equal(t, config.ExitCodeSuccess, code)
	assert.Equal(t, "Contact name: Jane, phones: 9876543210\nJane has no birthday set.\n", out)

	out, _, code = execute(t, "--seed", seed, "show", "John")
	require.Equal(t, config.ExitCodeSuccess, code)
	assert.Contains(t, out, "John: ")
	assert.Contains(t, out, "to birthday")

}

func TestShow_UnknownNameReportedOnce(t *testing.T) {
	out, stderr, code := execute(t, "--seed", writeSeed(t), "show", "Nobody")
	assert.Equal(t, config.ExitCodeError, code)
	assert.Equal(t, "Contact Nobody not found.\n", out)
	assert.Empty(t, stderr)
}

func TestInvalidSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("contacts:\n  - name: J123ane\n"), 0o600))

	_, stderr, code := execute(t, "--seed", path, "list")
	assert.Equal(t, config.ExitCodeError, code)
	assert.Contains(t, stderr, config.ErrInvalidName)
}

func TestVCardAndCalendar(t *testing.T) {
	seed := writeSeed(t)

	out, _, code := execute(t, "--seed", seed, "vcard")
	require.Equal(t, config.ExitCodeSuccess, code)
	assert.Equal(t, 4, strings.Count(out, "BEGIN:VCARD"))

	out, _, code = execute(t, "--seed", seed, "calendar")
	require.Equal(t, config.ExitCodeSuccess, code)
	assert.Contains(t, out, "SUMMARY:Birthday: John")
}

func TestUpcoming_None(t *testing.T) {
	out, _, code := execute(t, "upcoming", "--days", "3")
	require.Equal(t, config.ExitCodeSuccess, code)
	assert.Equal(t, "No birthdays in the next 3 days.\n", out)
}

func TestDemo(t *testing.T) {
	out, _, code := execute(t, "demo")
	require.Equal(t, config.ExitCodeSuccess, code)

	assert.Contains(t, out, config.ErrInvalidName)
	assert.Contains(t, out,
		"After editing the phone:\nContact name: John, phones: 1112223333; 5555555555, birthday: 1987-11-16\n")
	assert.Contains(t, out, "John: 5555555555")
	assert.Contains(t, out, "--- Page 2 ---")
	assert.NotContains(t, out, "--- Page 3 ---", "7 records by 4 make two pages")
	assert.Contains(t, out, "Contact name: Iryna, phones: 0933334455; 0933334455")
	assert.True(t, strings.HasSuffix(out, "Deleted Jane.\n"))
}

func TestUnknownCommand(t *testing.T) {
	_, stderr, code := execute(t, "frobnicate")
	assert.Equal(t, config.ExitCodeError, code)
	assert.NotEmpty(t, stderr)
}
