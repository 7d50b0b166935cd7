package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_String(t *testing.T) {
	// Given: both players
	// Then: they render as their symbols
	assert.Equal(t, "O", Noughts.String())
	assert.Equal(t, "X", Crosses.String())
}

func TestPlayer_Next(t *testing.T) {
	t.Run("Next toggles between the two players", func(t *testing.T) {
		assert.Equal(t, Noughts, Crosses.Next())
		assert.Equal(t, Crosses, Noughts.Next())
	})

	t.Run("Next twice returns the same player", func(t *testing.T) {
		assert.Equal(t, Crosses, Crosses.Next().Next())
	})
}

func TestPlayer_IsValid(t *testing.T) {
	assert.True(t, Noughts.IsValid())
	assert.True(t, Crosses.IsValid())

	// Given: the zero value
	var player Player

	// Then: it is not a player
	assert.False(t, player.IsValid())
}
