package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для ключа локальной сессии
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// KeyLen - длина выходного ключа в байтах (AES-256)
	KeyLen = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
)

// sessionContext отделяет ключ сессии от любых других ключей,
// выведенных из той же фразы.
const sessionContext = "tasksync/session"

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveSessionKey выводит ключ шифрования токена сессии из локальной
// парольной фразы с помощью Argon2id.
func DeriveSessionKey(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	input := make([]byte, 0, len(passphrase)+len(sessionContext))
	input = append(input, passphrase...)
	input = append(input, sessionContext...)

	return argon2.IDKey(input, salt, Argon2Time, Argon2Memory, Argon2Threads, KeyLen), nil
}
