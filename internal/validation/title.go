package validation

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultReservedTitles заголовки задач-подсказок, которые создаются
// локально при первом запуске и никогда не отправляются на сервер.
var DefaultReservedTitles = []string{
	"Welcome to tasksync!",
	"Tap a task to edit it",
	"Sign in to sync your lists",
}

var (
	// ErrEmptyTitle заголовок новой задачи пуст
	ErrEmptyTitle = errors.New("task title cannot be empty")
	// ErrReservedTitle заголовок совпадает с заголовком задачи-подсказки
	ErrReservedTitle = errors.New("task title is reserved")
)

// ValidateNewTaskTitle проверяет, можно ли отправить новую задачу на сервер.
// Пустой заголовок и заголовки из reserved запрещены.
func ValidateNewTaskTitle(title string, reserved []string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}

	for _, r := range reserved {
		if title == r {
			return fmt.Errorf("%w: %q", ErrReservedTitle, title)
		}
	}

	return nil
}
