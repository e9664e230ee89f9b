package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct {
	in     *bufio.Reader
	out    io.Writer
	stdin  *os.File
	isTerm func(fd int) bool
}

func NewStdio() IO {
	return NewStdioWith(os.Stdin, os.Stdout)
}

// NewStdioWith читает из in и пишет в out. Скрытый ввод пароля доступен,
// только если in является терминалом.
func NewStdioWith(in *os.File, out io.Writer) *Stdio {
	return &Stdio{
		in:     bufio.NewReader(in),
		out:    out,
		stdin:  in,
		isTerm: term.IsTerminal,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает строку без эха. Если stdin не терминал (pipe, файл),
// строка читается как обычный ввод.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	fd := int(s.stdin.Fd())
	if !s.isTerm(fd) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
