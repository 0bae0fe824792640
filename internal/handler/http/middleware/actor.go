package middleware

import (
	"context"

	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
)

type actorKey struct{}

// WithActor stores the authenticated user in ctx.
func WithActor(ctx context.Context, actor user.User) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the user AuthRequired or SessionRequired resolved.
func ActorFromContext(ctx context.Context) (user.User, bool) {
	actor, ok := ctx.Value(actorKey{}).(user.User)
	return actor, ok
}
