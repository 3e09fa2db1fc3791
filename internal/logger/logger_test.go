package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_AddsRequestAndUserID(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("test", &buf)

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-1")
	CtxWithError(ctx, "interest insert failed", errors.New("boom"), "opportunity_id", "opp-1")

	out := buf.String()
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "user_id=user-1")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "opportunity_id=opp-1")
}

func TestTestLevelDropsInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("test", &buf)

	Info("ignored")
	assert.Empty(t, buf.String())

	Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
