package identity

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted one-way hash of the plaintext. The salt and
// cost parameters are embedded in the returned string.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword recomputes the hash with the stored salt and compares in
// constant time. Returns nil on a match.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
