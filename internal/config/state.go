// Package config holds the named identity groups and the cached git
// identities for the two scopes, and keeps them consistent with what git
// itself reports.
package config

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gumdev/gum/internal/git"
)

// GitAccessor is the subset of the git client the state layer depends on.
// Satisfied by *git.Client.
type GitAccessor interface {
	ReadIdentity(scope git.Scope) (git.Identity, bool)
	WriteIdentity(id git.Identity, scope git.Scope) error
	IsInsideRepository() bool
}

// State is the in-memory aggregate built once per invocation: the stored
// groups plus cached snapshots of the global and repository-local git
// identities. The caches are ground truth mirrors; they are refreshed only
// by Apply's write-through reload.
type State struct {
	Groups      map[string]User
	GlobalUser  *User
	ProjectUser *User

	store *Store
	git   GitAccessor
}

// Load builds the State by running three independent reads: the group file,
// the global identity, and the local identity. The reads touch disjoint
// resources and are joined before the State is returned. Any single read
// failing degrades only its own field.
func Load(store *Store, accessor GitAccessor) *State {
	s := &State{
		Groups: map[string]User{},
		store:  store,
		git:    accessor,
	}

	var g errgroup.Group
	g.Go(func() error {
		groups, err := store.Load()
		if err != nil {
			slog.Warn("failed to load config file, continuing with no groups", "error", err)
			return nil
		}
		s.Groups = groups
		return nil
	})
	g.Go(func() error {
		if id, ok := accessor.ReadIdentity(git.ScopeGlobal); ok {
			u := userFromIdentity(id)
			s.GlobalUser = &u
		}
		return nil
	})
	g.Go(func() error {
		if id, ok := accessor.ReadIdentity(git.ScopeLocal); ok {
			u := userFromIdentity(id)
			s.ProjectUser = &u
		}
		return nil
	})
	_ = g.Wait()

	slog.Debug("state loaded",
		"groups", len(s.Groups),
		"global", s.GlobalUser != nil,
		"project", s.ProjectUser != nil,
	)
	return s
}

// UsingUser returns the currently effective identity: the repository-local
// one if present, else the global one, else nil.
func (s *State) UsingUser() *User {
	if s.ProjectUser != nil {
		return s.ProjectUser
	}
	return s.GlobalUser
}

// AllGroups returns the stored groups plus a synthesized "global" entry
// mirroring the global git identity. The result is a fresh map; the
// synthesized entry is never persisted.
func (s *State) AllGroups() map[string]User {
	all := make(map[string]User, len(s.Groups)+1)
	for name, user := range s.Groups {
		all[name] = user
	}
	if s.GlobalUser != nil {
		all[ReservedGroupName] = *s.GlobalUser
	}
	return all
}

// SetGroup creates or patches a group and persists the mapping. A nil field
// is left unchanged; a brand-new group starts with empty fields. At least
// one field must be supplied, and the reserved name is rejected before
// anything is touched.
func (s *State) SetGroup(group string, name, email *string) error {
	if group == ReservedGroupName {
		return fmt.Errorf("group name cannot be '%s'", ReservedGroupName)
	}
	if name == nil && email == nil {
		return fmt.Errorf("must provide at least one of --name or --email")
	}

	user := s.Groups[group]
	if name != nil {
		user.Name = *name
	}
	if email != nil {
		user.Email = *email
	}
	s.Groups[group] = user

	if err := s.store.Save(s.Groups); err != nil {
		return err
	}

	slog.Debug("group set", "group", group, "name", user.Name, "email", user.Email)
	return nil
}

// DeleteGroup removes a stored group and persists the mapping.
func (s *State) DeleteGroup(group string) error {
	if group == ReservedGroupName {
		return fmt.Errorf("cannot delete %s", ReservedGroupName)
	}
	if _, ok := s.Groups[group]; !ok {
		return fmt.Errorf("group '%s' not found", group)
	}

	delete(s.Groups, group)
	if err := s.store.Save(s.Groups); err != nil {
		return err
	}

	slog.Debug("group deleted", "group", group)
	return nil
}

// Apply writes a group's identity to the chosen git scope, then re-reads
// that scope into the cache so the cache reflects exactly what git now
// reports (including any normalization git applied on input). A local
// target requires the working directory to be inside a repository; that is
// checked before any write. Unknown groups fail before any git call.
func (s *State) Apply(group string, global bool) error {
	user, ok := s.AllGroups()[group]
	if !ok {
		return fmt.Errorf("group '%s' not found", group)
	}

	scope := git.ScopeLocal
	if global {
		scope = git.ScopeGlobal
	} else if !s.git.IsInsideRepository() {
		return fmt.Errorf("current directory is not a git repository")
	}

	if err := s.git.WriteIdentity(user.Identity(), scope); err != nil {
		return err
	}

	// Write-through reload: trust the re-read, not the input.
	if global {
		s.refreshGlobalUser()
	} else {
		s.refreshProjectUser()
	}

	slog.Debug("group applied", "group", group, "scope", scope)
	return nil
}

func (s *State) refreshGlobalUser() {
	s.GlobalUser = nil
	if id, ok := s.git.ReadIdentity(git.ScopeGlobal); ok {
		u := userFromIdentity(id)
		s.GlobalUser = &u
	}
}

func (s *State) refreshProjectUser() {
	s.ProjectUser = nil
	if id, ok := s.git.ReadIdentity(git.ScopeLocal); ok {
		u := userFromIdentity(id)
		s.ProjectUser = &u
	}
}
