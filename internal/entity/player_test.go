package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	first := NewPlayer(First, "Anna")
	second := NewPlayer(Second, "Joan")

	assert.Equal(t, &Player{ID: First, Name: "Anna", Token: FirstToken}, first)
	assert.Equal(t, &Player{ID: Second, Name: "Joan", Token: SecondToken}, second)
}

func TestPlayer_AddPoints(t *testing.T) {
	// Given: a player without points
	player := NewPlayer(First, "Anna")

	// When: a win and a draw are scored and a negative value is passed
	player.AddPoints(WinPoints)
	player.AddPoints(DrawPoints)
	player.AddPoints(-5)

	// Then: the score only grew
	assert.Equal(t, 3, player.Score)
}

func TestPlayerID(t *testing.T) {
	assert.Equal(t, Second, First.Other())
	assert.Equal(t, First, Second.Other())
	assert.Equal(t, NoPlayer, NoPlayer.Other())

	assert.Equal(t, 0, First.Index())
	assert.Equal(t, 1, Second.Index())

	assert.True(t, First.IsValid())
	assert.False(t, NoPlayer.IsValid())
	assert.False(t, PlayerID(3).IsValid())
}
