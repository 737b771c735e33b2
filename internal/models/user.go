package models

// User is a registered identity: a guest or an admin account.
// Identities are never mutated after creation and never deleted;
// email is the unique lookup key.
type User struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
	Avatar  string `json:"avatar" yaml:"avatar"`
	IsAdmin bool   `json:"is_admin" yaml:"is_admin"`

	// CredentialHash is the bcrypt hash for identities created through
	// signup. Seeded demo identities carry no hash and accept any
	// password on login.
	CredentialHash string `json:"-" yaml:"-"`
}
