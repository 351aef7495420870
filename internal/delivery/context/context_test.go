package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithOperator_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	operatorID := uuid.New()

	ctx = WithOperator(ctx, operatorID)

	got, ok := GetOperatorID(ctx)
	assert.True(t, ok)
	assert.Equal(t, operatorID, got)

	GetLoggerOrDefault(ctx, slog.Default()).Info("dues paid")
	assert.Contains(t, buf.String(), "operator_id="+operatorID.String())
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	_, ok := GetOperatorID(context.Background())
	assert.False(t, ok)
}
