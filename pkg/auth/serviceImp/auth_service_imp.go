package serviceImp

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	svc "github.com/RW482/vora/pkg/auth/service"
	userRepo "github.com/RW482/vora/pkg/user/repository"
)

// loginDomain is the fixed domain the hosted-auth era appended to bare
// usernames; logins with it are accepted and stripped back to the username.
const loginDomain = "@vora.com"

var ErrBadCredentials = errors.New("invalid credentials")

type authSvc struct {
	users  userRepo.UserRepository
	secret []byte
	ttl    time.Duration
}

func New(users userRepo.UserRepository, secret string) svc.AuthService {
	return &authSvc{users: users, secret: []byte(secret), ttl: 12 * time.Hour}
}

func (s *authSvc) Login(username, password string) (*svc.LoginResult, error) {
	username = strings.TrimSpace(username)
	username = strings.TrimSuffix(strings.ToLower(username), loginDomain)
	if username == "" || password == "" {
		return nil, ErrBadCredentials
	}

	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, ErrBadCredentials
	}
	if u.Password != password {
		return nil, ErrBadCredentials
	}

	claims := jwt.MapClaims{
		"uid":  u.ID,
		"role": u.Role,
		"sub":  u.Username,
		"exp":  time.Now().Add(s.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	out := *u
	out.Password = ""
	return &svc.LoginResult{
		Token:        token,
		User:         out,
		Capabilities: svc.Capabilities(u.Role),
	}, nil
}
