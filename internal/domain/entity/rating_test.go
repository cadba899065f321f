package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactionForRating_CoversAllBuckets(t *testing.T) {
	seen := map[string]bool{}
	for r := RatingDespair; r <= RatingDelight; r++ {
		reaction, ok := ReactionForRating(r)
		assert.True(t, ok, "rating %d should map to a reaction", r)
		assert.NotEmpty(t, reaction.Label)
		assert.NotEmpty(t, reaction.Glyph)
		assert.False(t, seen[reaction.Label], "reaction %q mapped twice", reaction.Label)
		seen[reaction.Label] = true
	}
}

func TestReactionForRating_Stable(t *testing.T) {
	first, _ := ReactionForRating(RatingHappy)
	second, _ := ReactionForRating(RatingHappy)
	assert.Equal(t, first, second)
}

func TestReactionForRating_OutOfScale(t *testing.T) {
	for _, r := range []Rating{0, 6, -1, 100} {
		_, ok := ReactionForRating(r)
		assert.False(t, ok, "rating %d must not map", r)
	}
}

func TestRatingValid(t *testing.T) {
	assert.True(t, Rating(1).Valid())
	assert.True(t, Rating(5).Valid())
	assert.False(t, Rating(0).Valid())
	assert.False(t, Rating(6).Valid())
}

func TestTrustMeterLevel(t *testing.T) {
	cases := []struct {
		score int
		level int
	}{
		{0, 0},
		{49, 0},
		{50, 50},
		{79, 50},
		{80, 80},
		{99, 80},
		{100, 100},
		{250, 100},
		{-10, 0}, // unknown scores read as the lowest bucket
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, TrustMeterLevel(tc.score), "score %d", tc.score)
	}
}
