package config

import "github.com/gumdev/gum/internal/git"

// ReservedGroupName is the synthesized group that mirrors the global git
// identity. It is a read-time view, never a storable group.
const ReservedGroupName = "global"

// User represents a Git identity stored under a group name
type User struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Identity converts the stored user into a git identity value.
func (u User) Identity() git.Identity {
	return git.Identity{Name: u.Name, Email: u.Email}
}

func userFromIdentity(id git.Identity) User {
	return User{Name: id.Name, Email: id.Email}
}

// configFile mirrors the on-disk document. Only the groups table is
// persisted; unknown top-level keys are ignored on decode.
type configFile struct {
	Groups map[string]User `toml:"groups"`
}
