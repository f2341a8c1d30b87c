package advisor

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHistoryLifecycle(t *testing.T) {
	h := NewMemoryHistory()
	ctx := context.Background()

	msgs, err := h.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	require.NoError(t, h.Append(ctx, "s1", schema.UserMessage("hello")))
	require.NoError(t, h.Append(ctx, "s1", schema.AssistantMessage("hi there", nil)))
	require.NoError(t, h.Append(ctx, "s2", schema.UserMessage("other session")))

	msgs, err = h.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, schema.User, msgs[0].Role)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, schema.Assistant, msgs[1].Role)

	require.NoError(t, h.Clear(ctx, "s1"))
	msgs, err = h.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	// other sessions are untouched
	msgs, err = h.Load(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}
