// internal/auth/auth.go
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/foxonlabs/foxon-backend/internal/logger"
)

var (
	// ErrInvalidCredentials is the single authentication failure. The same
	// message is produced for an unknown username and for a wrong password
	// so that login responses carry no enumeration signal.
	ErrInvalidCredentials = errors.New("usuário ou senha incorretos")

	ErrTokenMalformed          = errors.New("malformed session token")
	ErrTokenInvalid            = errors.New("invalid session token")
	ErrTokenClaimsInvalid      = errors.New("invalid session token claims")
	ErrUnexpectedSigningMethod = errors.New("unexpected token signing method")

	customLog = logger.NewLogger()
)

// --- Credential verification ---

// CredentialVerifier compares a submitted password against the stored
// credential. The portal historically stores passwords verbatim; the
// interface isolates that choice so a hashed scheme can be swapped in
// without touching callers.
type CredentialVerifier interface {
	Verify(submitted, stored string) bool
}

// PlainVerifier compares passwords by exact value, matching the stored
// plaintext credentials.
type PlainVerifier struct{}

func (PlainVerifier) Verify(submitted, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(stored)) == 1
}

// BcryptVerifier treats the stored credential as a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(submitted, stored string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		customLog.Warnf("Unexpected error comparing password hash: %v", err)
	}
	return err == nil
}

// NewVerifier selects the verifier for the configured auth mode.
func NewVerifier(mode string) CredentialVerifier {
	if mode == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}

// HashPassword generates a bcrypt hash for the given password. Only used
// when the portal runs in bcrypt mode.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		customLog.Warnf("Error generating bcrypt hash: %v", err)
		return "", fmt.Errorf("failed to hash password")
	}
	return string(bytes), nil
}

// CheckAdminCredentials compares the submitted pair against the fixed
// administrator credentials by exact string equality. The administrator
// is never looked up in the client directory.
func CheckAdminCredentials(username, password, adminUsername, adminPassword string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(adminPassword)) == 1
	return userOK && passOK
}

// --- Session tokens ---

// SessionClaims is the long-lived session marker: role plus issue time.
// No expiry is set or enforced; logout simply discards the token.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed session marker for a role.
func GenerateSessionToken(role, secret string) (string, error) {
	claims := SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "foxon-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		customLog.Warnf("Error signing session token for role %s: %v", role, err)
		return "", fmt.Errorf("failed to generate session token")
	}
	return signedToken, nil
}

// ValidateSessionToken parses and validates a session marker, returning
// the role it carries.
func ValidateSessionToken(tokenString, secret string) (string, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			customLog.Warnf("ValidateSessionToken: Unexpected signing method: %v", token.Header["alg"])
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSigningMethod, token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		customLog.Warnf("ValidateSessionToken: Token parsing error: %v", err)
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrTokenMalformed
		case errors.Is(err, ErrUnexpectedSigningMethod):
			return "", err
		default:
			return "", ErrTokenInvalid
		}
	}

	if !token.Valid {
		return "", ErrTokenInvalid
	}

	if claims.Role != "ADMIN" && claims.Role != "CLIENT" {
		customLog.Warnf("ValidateSessionToken: unknown role %q in claims", claims.Role)
		return "", ErrTokenClaimsInvalid
	}

	return claims.Role, nil
}
