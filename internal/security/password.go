package security

import "golang.org/x/crypto/bcrypt"

// HashPassword genera un hash bcrypt (con salt propio) para el password.
func HashPassword(plaintext string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// CheckPassword verifica el password contra un digest bcrypt. Un digest
// malformado cuenta como no-match, nunca escapa un error.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
