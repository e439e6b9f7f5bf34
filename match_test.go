package castmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/castmatch"
)

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and strips punctuation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "ep 42 the answer", castmatch.NormalizeTitle("Ep. 42: The Answer!"))
	})

	t.Run("rewrites encoded ampersand as and", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "salt and vinegar", castmatch.NormalizeTitle("Salt &amp; Vinegar"))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a b c", castmatch.NormalizeTitle("  a \t b \n c  "))
	})
}

func TestScoreEpisodeTitleMatch(t *testing.T) {
	t.Parallel()

	t.Run("normalization-equivalent titles score the exact-match value", func(t *testing.T) {
		t.Parallel()

		score := castmatch.ScoreEpisodeTitleMatch("Casey Handmer's Vision!", "casey handmers vision")
		assert.Equal(t, castmatch.ExactMatchScore, score)
	})

	t.Run("self-match scores the exact-match value", func(t *testing.T) {
		t.Parallel()

		title := "Turning Air, Water, and Sunlight into Natural Gas"
		assert.Equal(t, castmatch.ExactMatchScore, castmatch.ScoreEpisodeTitleMatch(title, title))
	})

	t.Run("empty side scores zero", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, castmatch.ScoreEpisodeTitleMatch("", "anything"))
		assert.Zero(t, castmatch.ScoreEpisodeTitleMatch("anything", ""))
		assert.Zero(t, castmatch.ScoreEpisodeTitleMatch("?!.", "anything"))
	})

	t.Run("substring containment adds 35 plus overlap", func(t *testing.T) {
		t.Parallel()

		// candidate tokens are a strict subset: 3 of 6 overlap.
		score := castmatch.ScoreEpisodeTitleMatch("one two three four five six", "one two three")
		assert.InDelta(t, 35+50.0, score, 0.001)
	})

	t.Run("disjoint titles score zero", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, castmatch.ScoreEpisodeTitleMatch("alpha beta", "gamma delta"))
	})

	t.Run("partial token overlap scales with the larger set", func(t *testing.T) {
		t.Parallel()

		// 2 shared tokens of max(4, 3) = 50.
		score := castmatch.ScoreEpisodeTitleMatch("deep dive ocean currents", "shallow dive currents")
		assert.InDelta(t, 50.0, score, 0.001)
	})
}
