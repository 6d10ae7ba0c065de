package security

import (
	"crypto/rand"
	"encoding/hex"
)

const userTokenBytes = 32

// NewUserToken genera un token opaco aleatorio de 256 bits, asignado una sola
// vez al crear el usuario.
func NewUserToken() (string, error) {
	buf := make([]byte, userTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
