// Package models defines the persisted record types: accounts, courses and
// notes. All of them serialize to JSON blobs in the key-value store.
package models

// Account is a registered user credential record. The password is kept only
// as a bcrypt hash; the plaintext never reaches the store.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}
