package mvckit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvckit"
	"github.com/dmitrymomot/mvckit/pkg/config"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("defaults need no environment", func(t *testing.T) {
		app, err := mvckit.NewFromEnv()
		require.NoError(t, err)
		require.NotNil(t, app)
		assert.NotNil(t, app.Model())
		assert.NotNil(t, app.View())
		assert.NotNil(t, app.Controller())
	})

	t.Run("honors the environment", func(t *testing.T) {
		t.Setenv("MVCKIT_APP_NAME", "testsvc")
		t.Setenv("MVCKIT_LOG_LEVEL", "debug")
		t.Setenv("MVCKIT_LOG_FORMAT", "json")
		t.Setenv("MVCKIT_STREAM_BUFFER", "8")

		app, err := mvckit.NewFromEnv()
		require.NoError(t, err)

		ch := app.Stream(context.Background(), "tick")
		for range 12 {
			app.SendNotification("tick")
		}
		assert.Equal(t, 8, len(ch), "stream buffer must come from the environment")
	})

	t.Run("rejects an unknown log format", func(t *testing.T) {
		t.Setenv("MVCKIT_LOG_FORMAT", "yaml")

		_, err := mvckit.NewFromEnv()
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects a non-positive stream buffer", func(t *testing.T) {
		t.Setenv("MVCKIT_STREAM_BUFFER", "0")

		_, err := mvckit.NewFromEnv()
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("options win over the environment", func(t *testing.T) {
		t.Setenv("MVCKIT_STREAM_BUFFER", "3")

		app, err := mvckit.NewFromEnv(mvckit.WithStreamBuffer(5))
		require.NoError(t, err)

		ch := app.Stream(context.Background(), "tick")
		for range 9 {
			app.SendNotification("tick")
		}
		assert.Equal(t, 5, len(ch))
	})
}
