package auditor

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	ctx := WithAuditor(context.Background(), " admin ")
	require.Equal(t, "admin", FromContext(ctx))
}

func TestFromContextAnonymous(t *testing.T) {
	ctx := WithAuditor(context.Background(), "   ")

	a := FromContext(ctx)
	b := FromContext(ctx)
	_, err := uuid.Parse(a)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
