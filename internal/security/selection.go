package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const selectionAudience = "org-selection"

// ErrWeakSecret is returned when the selection secret is too short to sign with.
var ErrWeakSecret = errors.New("selection secret must be at least 32 bytes")

type selectionClaims struct {
	jwt.RegisteredClaims
	OrgID string `json:"org"`
}

// SelectionCodec encodes the client-held pointer to the selected organization as an opaque,
// signed and expiring token bound to one user. Nothing is stored server-side.
type SelectionCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewSelectionCodec returns a codec signing with HS256 over secret. A zero ttl means 12h.
func NewSelectionCodec(secret []byte, ttl time.Duration) (*SelectionCodec, error) {
	if len(secret) < 32 {
		return nil, ErrWeakSecret
	}
	if ttl == 0 {
		ttl = 12 * time.Hour
	}
	return &SelectionCodec{secret: append([]byte(nil), secret...), ttl: ttl}, nil
}

// Encode returns a token naming orgID as userID's selection.
func (c *SelectionCodec) Encode(userID, orgID string) (string, error) {
	now := time.Now().UTC()
	claims := selectionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{selectionAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		OrgID: orgID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode returns the organization id carried by token when it is valid and was issued for userID.
// Any invalid, expired or foreign token yields "" so the caller falls back to the default selection.
func (c *SelectionCodec) Decode(token, userID string) string {
	if c == nil || token == "" || userID == "" {
		return ""
	}
	claims := &selectionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(selectionAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || claims.Subject != userID {
		return ""
	}
	return claims.OrgID
}
