package commands

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"lpass/internal/domain"
	"lpass/internal/secmem"
)

// terminalProvider reads secrets from the controlling terminal without
// echo, falling back to plain line reads when stdin is not a terminal
// (for example, under a test harness or a pipe).
type terminalProvider struct {
	stdin *bufio.Reader
}

func newTerminalProvider() *terminalProvider {
	return &terminalProvider{stdin: bufio.NewReader(os.Stdin)}
}

func (p *terminalProvider) RequestSecret(title, description, priorError string) (*secmem.Buffer, error) {
	if priorError != "" {
		fmt.Fprintln(os.Stderr, priorError)
	}
	if description != "" {
		fmt.Fprintln(os.Stderr, description)
	}
	fmt.Fprintf(os.Stderr, "%s: ", title)

	line, err := p.readSecret()
	if err == io.EOF {
		fmt.Fprintln(os.Stderr)
		return nil, domain.ErrUserAbort
	}
	if err != nil {
		return nil, err
	}
	// line holds the raw secret; wipe it as soon as it is copied into
	// locked memory.
	defer secmem.Wipe(line)

	trimmed := bytes.TrimRight(line, "\r\n")
	if len(trimmed) == 0 {
		return nil, domain.ErrNoSecret
	}
	return secmem.FromBytes(trimmed)
}

func (p *terminalProvider) readSecret() ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		line, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return line, err
	}
	line, err := p.stdin.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, err
	}
	return line, nil
}

// Compile-time assertion that terminalProvider implements
// domain.SecretProvider.
var _ domain.SecretProvider = (*terminalProvider)(nil)
