package tenantctx

import (
	"context"

	"tenant-core/internal/membership/resolver"
	"tenant-core/internal/security"
)

// Resolver resolves a user's memberships.
type Resolver interface {
	Resolve(ctx context.Context, userID string) *resolver.Resolution
}

// Builder constructs a fresh Context per request from the resolver and the client's selection
// token. It holds no per-user state.
type Builder struct {
	resolver Resolver
	codec    *security.SelectionCodec
}

// NewBuilder returns a Builder. codec may be nil; selection tokens are then ignored and never issued.
func NewBuilder(r Resolver, codec *security.SelectionCodec) *Builder {
	return &Builder{resolver: r, codec: codec}
}

// Build resolves userID and applies the selection carried by selectionToken when it is valid for
// userID and names one of the user's organizations.
func (b *Builder) Build(ctx context.Context, userID, selectionToken string) *Context {
	res := b.resolver.Resolve(ctx, userID)
	return FromResolution(userID, res, b.codec.Decode(selectionToken, userID))
}

// SelectionToken returns the opaque token that reproduces tc's selection on later requests, or ""
// when nothing is selected or no codec is configured.
func (b *Builder) SelectionToken(tc *Context) (string, error) {
	if b.codec == nil || tc == nil || tc.Selected() == "" {
		return "", nil
	}
	return b.codec.Encode(tc.UserID(), tc.Selected())
}
