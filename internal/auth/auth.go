// Package auth gates the mutation endpoints behind a static token allow-list.
// Tokens are opaque strings loaded once from a side file at startup; there is
// no signing, expiry or user registration.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
)

// User is one allow-list entry.
type User struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Allowlist is the static set of valid tokens.
type Allowlist struct {
	byToken map[string]User
}

type usersFile struct {
	Users []User `json:"users"`
}

// LoadAllowlist reads the allow-list file and indexes its users by token.
func LoadAllowlist(path string) (*Allowlist, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read allow-list: %w", err)
	}
	var f usersFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse allow-list %s: %w", path, err)
	}

	byToken := make(map[string]User, len(f.Users))
	for _, u := range f.Users {
		byToken[u.Token] = u
	}
	return &Allowlist{byToken: byToken}, nil
}

// NewAllowlist builds an allow-list from users directly, used by tests.
func NewAllowlist(users ...User) *Allowlist {
	byToken := make(map[string]User, len(users))
	for _, u := range users {
		byToken[u.Token] = u
	}
	return &Allowlist{byToken: byToken}
}

// Lookup returns the user owning token, if any.
func (a *Allowlist) Lookup(token string) (User, bool) {
	u, ok := a.byToken[token]
	return u, ok
}
