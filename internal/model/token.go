package model

// TokenManager issues and verifies identity tokens.
type TokenManager interface {
	Issue(username string) (string, error)
	Verify(token string) (string, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
