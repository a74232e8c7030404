// Package auth checks login credentials.
package auth

import (
	"context"
	"strings"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
	"golang.org/x/crypto/bcrypt"
)

// Verifier resolves an email/password pair to the identity it belongs to.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (models.User, error)
}

// IdentityMatcher is implemented by verifiers that can tell whether a
// username/email pair names a known identity.
type IdentityMatcher interface {
	Matches(username, email string) bool
}

// DemoVerifier accepts exactly one identity. The password is kept only as a bcrypt hash.
type DemoVerifier struct {
	email string
	hash  []byte
	user  models.User
}

func NewDemoVerifier(user models.User, password string) (*DemoVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.SystemError(err)
	}
	return &DemoVerifier{email: user.Email, hash: hash, user: user}, nil
}

func (v *DemoVerifier) Verify(ctx context.Context, email, password string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if email != v.email {
		return models.User{}, common.InvalidCredentialsError(nil)
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		return models.User{}, common.InvalidCredentialsError(err)
	}
	return v.user, nil
}

// Matches reports whether username and email name the demo identity.
func (v *DemoVerifier) Matches(username, email string) bool {
	return strings.EqualFold(username, v.user.Username) && email == v.email
}
