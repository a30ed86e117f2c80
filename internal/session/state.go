package session

import (
	"github.com/felixgeelhaar/accountctl/internal/domain"
)

// State is the authentication phase of a session.
type State int

const (
	// Anonymous means no token is held.
	Anonymous State = iota
	// Validating means a token is held but the profile has not been
	// fetched since it was set.
	Validating
	// Authenticated means a token is held and the user is hydrated.
	Authenticated
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Validating:
		return "validating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is a point-in-time view of the controller state.
type Session struct {
	Token           string
	User            *domain.UserRecord
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	State           State
}

func (s Session) clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func anonymous(errMsg string) Session {
	return Session{State: Anonymous, Error: errMsg}
}

func authenticated(token string, user domain.UserRecord) Session {
	return Session{
		Token:           token,
		User:            &user,
		IsAuthenticated: true,
		State:           Authenticated,
	}
}
