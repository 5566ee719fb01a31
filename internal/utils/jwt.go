package utils // package utils provides helper functions for password hashing and tokens

import (
	"errors" // sentinel errors for the two validation failure modes
	"time"   // time computes the absolute expiry

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// AccessTokenTTL is the fixed lifetime of an admin session token.
const AccessTokenTTL = 8 * time.Hour

// ErrTokenExpired is returned when a token's embedded expiry has passed.
// It is reported separately from ErrTokenInvalid so that the authorization
// gate can answer with a distinct message.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid is returned for signature mismatches, malformed tokens and
// tokens whose subject claim is missing.
var ErrTokenInvalid = errors.New("token invalid")

// AccessToken is a signed bearer token along with its absolute expiry.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT whose subject is the admin
// username.  The token carries the standard sub, exp and iat claims and
// expires AccessTokenTTL from now.
func NewAccessToken(secret, username string) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(AccessTokenTTL)
	claims := jwt.MapClaims{
		"sub": username,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies signature and expiry of a serialized token and
// returns the subject claim.  Expired tokens yield ErrTokenExpired; every
// other failure, including a missing subject, yields ErrTokenInvalid.
func ParseAccessToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject any signing method other than HMAC so that a token signed
		// with "none" or an asymmetric key never validates.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !tok.Valid {
		return "", ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}
