package password

import "golang.org/x/crypto/bcrypt"

// Hash genera el hash bcrypt de una contraseña en texto plano (salt embebido).
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara contraseña y hash en tiempo constante.
// Un digest malformado cuenta como verificación fallida, nunca como error.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
