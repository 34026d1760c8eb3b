// Package auditor carries the acting user through request contexts.
package auditor

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type ctxKey struct{}

// WithAuditor returns ctx carrying name as the acting user. Blank names leave ctx unchanged.
func WithAuditor(ctx context.Context, name string) context.Context {
	name = strings.TrimSpace(name)
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, name)
}

// FromContext returns the acting user, or a random UUID when none was set.
func FromContext(ctx context.Context) string {
	if name, ok := ctx.Value(ctxKey{}).(string); ok {
		return name
	}
	return uuid.NewString()
}
