// pkg/keysmith_io/secure_input.go

package keysmith_io

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// MaxPasswordLength bounds interactive password input.
const MaxPasswordLength = 256

// PromptSecurePassword reads a password from the terminal without echo.
// When stdin is not a terminal (piped input) it falls back to reading a
// single line, which keeps the command scriptable.
func PromptSecurePassword(rc *RuntimeContext, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", cerr.Wrap(err, "failed to read password")
		}
		return validatePasswordInput(rc, string(raw))
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", cerr.Wrap(err, "failed to read password from stdin")
	}
	return validatePasswordInput(rc, strings.TrimRight(line, "\r\n"))
}

func validatePasswordInput(rc *RuntimeContext, input string) (string, error) {
	if len(input) > MaxPasswordLength {
		rc.Log.Warn("Password input too long", zap.Int("length", len(input)))
		return "", cerr.Newf("password input too long (%d chars, max %d)", len(input), MaxPasswordLength)
	}
	if !utf8.ValidString(input) {
		return "", cerr.New("password input contains invalid UTF-8")
	}
	return input, nil
}
