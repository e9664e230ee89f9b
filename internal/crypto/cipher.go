package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// NonceSize - размер nonce для AES-GCM
const NonceSize = 12

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLen {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeyLen, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

// Seal шифрует plaintext с помощью AES-256-GCM. additional привязывает
// шифротекст к контексту (например, id пользователя) и не шифруется.
// Формат результата: nonce (12 bytes) + ciphertext + auth_tag (16 bytes)
func Seal(plaintext, key, additional []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("plaintext cannot be empty")
	}
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+aesGCM.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return aesGCM.Seal(nonce, nonce, plaintext, additional), nil
}

// Open расшифровывает данные, полученные из Seal, с тем же additional
func Open(sealed, key, additional []byte) ([]byte, error) {
	if len(sealed) < NonceSize {
		return nil, fmt.Errorf("encrypted data too short")
	}
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, sealed[:NonceSize], sealed[NonceSize:], additional)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: authentication failed or corrupted data: %w", err)
	}
	return plaintext, nil
}

// Fingerprint возвращает короткий отпечаток секрета, пригодный для логов
// и вывода статуса. Сам секрет не раскрывается.
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:4])
}
