package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailService_GenerateCode(t *testing.T) {
	svc := NewEmailService()
	ctx := context.Background()

	code := svc.GenerateCode(ctx)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "code must be digits, got %q", code)
	}

	assert.Len(t, svc.GenerateCode(ctx), 6)
}

func TestEmailService_VerifyCode(t *testing.T) {
	svc := NewEmailService()
	ctx := context.Background()

	ok, err := svc.VerifyCode(ctx, "123456", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyCode(ctx, "654321", "123456")
	assert.Error(t, err)
	assert.False(t, ok)
}
