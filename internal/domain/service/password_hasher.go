package service

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)
	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
