package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/iudanet/tasksync/internal/client/iocli"
)

// output собирает все, что команда вывела через IO
type output struct {
	lines []string
	mu    sync.Mutex
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.lines, "\n")
}

func (o *output) add(s string) {
	o.mu.Lock()
	o.lines = append(o.lines, s)
	o.mu.Unlock()
}

// newIO возвращает мок IO; inputs и passwords отдаются по очереди
func newIO(out *output, inputs []string, passwords []string) *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.add(strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		},
		PrintfFunc: func(format string, a ...any) {
			out.add(strings.TrimSuffix(fmt.Sprintf(format, a...), "\n"))
		},
		ReadInputFunc: func(prompt string) (string, error) {
			if len(inputs) == 0 {
				return "", io.EOF
			}
			in := inputs[0]
			inputs = inputs[1:]
			return in, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			if len(passwords) == 0 {
				return "", io.EOF
			}
			p := passwords[0]
			passwords = passwords[1:]
			return p, nil
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
