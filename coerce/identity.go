package coerce

import (
	"fmt"
	"os/user"
	"strconv"
)

// IdentityResolver looks up accounts and groups in the system identity
// database. It exists so that tests can substitute a deterministic stand-in
// for the real, environment-dependent lookup.
type IdentityResolver interface {
	LookupUser(name string) (int, error)
	LookupGroup(name string) (int, error)
}

type systemResolver struct{}

func (systemResolver) LookupUser(name string) (int, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return 0, err
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return 0, fmt.Errorf("non-numeric uid %q for user %s", u.Uid, name)
	}
	return uid, nil
}

func (systemResolver) LookupGroup(name string) (int, error) {
	g, err := user.LookupGroup(name)
	if err != nil {
		return 0, err
	}
	gid, err := strconv.Atoi(g.Gid)
	if err != nil {
		return 0, fmt.Errorf("non-numeric gid %q for group %s", g.Gid, name)
	}
	return gid, nil
}

// UnixUser parses a user name into its integer user ID using the system
// identity database.
func UnixUser(text string) (int, error) {
	return UnixUserVia(systemResolver{})(text)
}

// UnixGroup parses a group name into its integer group ID using the system
// identity database.
func UnixGroup(text string) (int, error) {
	return UnixGroupVia(systemResolver{})(text)
}

// UnixUserVia returns a user-name coercer backed by r.
func UnixUserVia(r IdentityResolver) func(string) (int, error) {
	return func(text string) (int, error) {
		return r.LookupUser(text)
	}
}

// UnixGroupVia returns a group-name coercer backed by r.
func UnixGroupVia(r IdentityResolver) func(string) (int, error) {
	return func(text string) (int, error) {
		return r.LookupGroup(text)
	}
}
