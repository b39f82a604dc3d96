package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TokenFrom(ctx))

	ctx = WithToken(ctx, "abc")
	assert.Equal(t, "abc", TokenFrom(ctx))
}
