package iocli

//go:generate moq -out io_mock.go . IO

// IO абстрагирует ввод и вывод командной строки
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
