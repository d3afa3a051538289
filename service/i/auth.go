package i

import (
	"github.com/beka-birhanu/maze-solver-api/identity"
)

type Authenticator interface {
	Register(string, string) error
	SignIn(string, string) (*identity.User, string, error)
}
