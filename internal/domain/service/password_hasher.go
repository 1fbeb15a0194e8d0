package service

// PasswordHasher abstracts credential hashing so the session usecase stays
// independent of the bcrypt implementation.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a stored hash with a plaintext password.
	// It returns nil when the password matches the hash.
	Check(hash, password string) error
}
