package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", triggerFrom(ctx))

	ctx = withTrigger(ctx, "world.csv")
	assert.Equal(t, "world.csv", triggerFrom(ctx))

	wrongType := context.WithValue(context.Background(), triggerKey, 42)
	assert.Equal(t, "", triggerFrom(wrongType))
}
