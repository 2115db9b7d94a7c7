// Package git is the single point of contact with the git configuration
// store. Identity reads and writes shell out to `git config`; both the
// global and the repository-local scope are supported.
package git

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// identityPattern matches the two identity keys in one `git config` query,
// so reading an identity costs a single process launch.
const identityPattern = `^user\.(name|email)$`

// Scope selects which git configuration file an operation targets.
type Scope int

const (
	// ScopeGlobal targets the user-wide configuration (~/.gitconfig).
	ScopeGlobal Scope = iota
	// ScopeLocal targets the current repository's configuration.
	ScopeLocal
)

// Flag returns the `git config` flag for the scope.
func (s Scope) Flag() string {
	if s == ScopeGlobal {
		return "--global"
	}
	return "--local"
}

func (s Scope) String() string {
	if s == ScopeGlobal {
		return "global"
	}
	return "local"
}

// Identity is a (name, email) pair as stored under user.name / user.email.
type Identity struct {
	Name  string
	Email string
}

// Client executes identity operations against git
type Client struct {
	executor CommandExecutor
}

// NewClient creates a Client backed by os/exec
func NewClient() *Client {
	return NewClientWithExecutor(NewExecExecutor())
}

// NewClientWithExecutor creates a Client with a custom executor
func NewClientWithExecutor(executor CommandExecutor) *Client {
	return &Client{executor: executor}
}

// ReadIdentity reads user.name and user.email at the given scope with a
// single git invocation. The second return value is false when no identity
// is configured there or when git reports failure; absence is a normal
// outcome, not an error.
func (c *Client) ReadIdentity(scope Scope) (Identity, bool) {
	cmd := exec.Command("git", "config", scope.Flag(), "--get-regexp", identityPattern)
	out, err := c.executor.ExecuteWithOutput(cmd)
	if err != nil {
		slog.Debug("no identity configured", "scope", scope, "error", err)
		return Identity{}, false
	}

	var id Identity
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		switch key {
		case "user.name":
			id.Name = value
		case "user.email":
			id.Email = value
		}
	}

	if id.Name == "" && id.Email == "" {
		return Identity{}, false
	}

	slog.Debug("read identity", "scope", scope, "name", id.Name, "email", id.Email)
	return id, true
}

// WriteIdentity sets user.name and then user.email at the given scope, one
// git invocation each. A name failure stops the sequence before the email
// write; the name may already be written at that point and is not rolled
// back.
func (c *Client) WriteIdentity(id Identity, scope Scope) error {
	if err := c.setConfig(scope, "user.name", id.Name); err != nil {
		return fmt.Errorf("failed to set git user.name: %w", err)
	}
	if err := c.setConfig(scope, "user.email", id.Email); err != nil {
		return fmt.Errorf("failed to set git user.email: %w", err)
	}
	slog.Debug("wrote identity", "scope", scope, "name", id.Name, "email", id.Email)
	return nil
}

func (c *Client) setConfig(scope Scope, key, value string) error {
	return c.executor.Execute(exec.Command("git", "config", scope.Flag(), key, value))
}

// IsInsideRepository reports whether the working directory is inside a git
// repository. Side-effect free; used as a gate before local-scope writes.
func (c *Client) IsInsideRepository() bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	out, err := c.executor.ExecuteWithOutput(cmd)
	return err == nil && strings.TrimSpace(out) != ""
}

// IsInstalled checks if git is installed
func IsInstalled() bool {
	return exec.Command("git", "--version").Run() == nil
}
