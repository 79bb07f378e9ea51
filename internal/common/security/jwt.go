package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates HS256 bearer tokens bound to a
// teacher username. The signing secret is injected at construction so
// key rotation stays possible.
type TokenService struct {
	auth *jwtauth.JWTAuth
	ttl  time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{
		auth: jwtauth.New("HS256", secret, nil),
		ttl:  ttl,
	}
}

// JWTAuth exposes the underlying verifier for the router's
// jwtauth.Verifier middleware.
func (s *TokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.auth
}

func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}
	_, tokenString, err := s.auth.Encode(claims)
	return tokenString, err
}

// Validate returns the embedded username if the signature verifies and
// the token has not expired. Malformed input, a bad signature and
// expiry all collapse into a single negative result; callers never
// learn which check failed.
func (s *TokenService) Validate(tokenString string) (string, bool) {
	token, err := jwtauth.VerifyToken(s.auth, tokenString)
	if err != nil {
		return "", false
	}
	value, ok := token.Get("username")
	if !ok {
		return "", false
	}
	username, ok := value.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// GetUsernameFromClaims extracts the username claim, for use with the
// claims map the Verifier middleware puts into the request context.
func GetUsernameFromClaims(claims jwt.MapClaims) (string, error) {
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", errors.New("username claim is missing or not a string")
	}
	return username, nil
}
