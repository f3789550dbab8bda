package telegram

import (
	"testing"

	"factory-backend/internal/dialog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveActionRoundTrip(t *testing.T) {
	for action, label := range actionLabels {
		got, ok := resolveAction(label)
		require.True(t, ok, "label %q", label)
		assert.Equal(t, action, got)
	}
}

func TestResolveActionNormalizes(t *testing.T) {
	got, ok := resolveAction("  ❌ cancel  ")
	require.True(t, ok)
	assert.Equal(t, dialog.ActionCancel, got)
}

func TestResolveActionFreeText(t *testing.T) {
	_, ok := resolveAction("Box-12")
	assert.False(t, ok)
	_, ok = resolveAction("")
	assert.False(t, ok)
}

func TestLabelForUnknownAction(t *testing.T) {
	// actions without a display label fall back to their code name
	assert.Equal(t, "text", labelFor(dialog.ActionText))
}
