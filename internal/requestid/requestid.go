// Package requestid carries the X-Request-ID of an incoming request through
// context so outbound catalog calls and published events can reuse it.
package requestid

import "context"

const Header = "X-Request-ID"

type contextKey struct{}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
