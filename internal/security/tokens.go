package security

import (
	"crypto"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token is malformed or invalid.
	ErrInvalidToken = errors.New("invalid token")
)

// AccessClaims holds the JWT claims of an access token issued by the identity service.
// The subject is the verified user id.
type AccessClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id,omitempty"`
}

// Identity is the verified caller extracted from an access token.
type Identity struct {
	UserID    string
	SessionID string
}

// AccessVerifier validates RS256/ES256 access tokens with the identity service's public key.
type AccessVerifier struct {
	publicKey crypto.PublicKey
	issuer    string
	audience  string
}

// NewAccessVerifier returns a verifier that checks signature, expiry, issuer and audience.
func NewAccessVerifier(publicKey crypto.PublicKey, issuer, audience string) *AccessVerifier {
	return &AccessVerifier{publicKey: publicKey, issuer: issuer, audience: audience}
}

// Verify parses and validates tokenString. Returns ErrInvalidToken for any failure.
func (v *AccessVerifier) Verify(tokenString string) (Identity, error) {
	method := signingMethod(v.publicKey)
	if method == nil {
		return Identity{}, ErrInvalidToken
	}
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return v.publicKey, nil },
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: claims.Subject, SessionID: claims.SessionID}, nil
}

// AccessIssuer signs access tokens. The identity service issues tokens in production; this exists
// for cmd/seed and tests.
type AccessIssuer struct {
	privateKey crypto.Signer
	issuer     string
	audience   string
	ttl        time.Duration
}

// NewAccessIssuer returns an issuer signing with privateKey (RSA or ECDSA).
func NewAccessIssuer(privateKey crypto.Signer, issuer, audience string, ttl time.Duration) *AccessIssuer {
	return &AccessIssuer{privateKey: privateKey, issuer: issuer, audience: audience, ttl: ttl}
}

// Issue returns a signed access token for userID and sessionID and its expiry.
func (p *AccessIssuer) Issue(userID, sessionID string) (string, time.Time, error) {
	method := signingMethod(p.privateKey.Public())
	if method == nil {
		return "", time.Time{}, ErrInvalidKey
	}
	jti, err := generateJTI()
	if err != nil {
		return "", time.Time{}, err
	}
	now := time.Now().UTC()
	expiresAt := now.Add(p.ttl)
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SessionID: sessionID,
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(p.privateKey)
	return token, expiresAt, err
}

func generateJTI() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
