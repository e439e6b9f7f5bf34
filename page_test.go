package castmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/castmatch"
)

func TestLinkSourceWeight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, castmatch.SourceCurrentURL.Weight())
	assert.Equal(t, 90, castmatch.SourceAnchor.Weight())
	assert.Equal(t, 70, castmatch.SourceMeta.Weight())
	assert.Equal(t, 40, castmatch.SourceText.Weight())
	assert.Zero(t, castmatch.LinkSource("bogus").Weight())
}

func TestRankLinks(t *testing.T) {
	t.Parallel()

	t.Run("sorts descending by weight", func(t *testing.T) {
		t.Parallel()

		ranked := castmatch.RankLinks([]castmatch.LinkCandidate{
			castmatch.NewLinkCandidate("https://overcast.fm/+aaa", castmatch.SourceText),
			castmatch.NewLinkCandidate("https://overcast.fm/+bbb", castmatch.SourceCurrentURL),
			castmatch.NewLinkCandidate("https://overcast.fm/+ccc", castmatch.SourceMeta),
		})

		require.Len(t, ranked, 3)
		assert.Equal(t, "https://overcast.fm/+bbb", ranked[0].URL)
		assert.Equal(t, "https://overcast.fm/+ccc", ranked[1].URL)
		assert.Equal(t, "https://overcast.fm/+aaa", ranked[2].URL)
	})

	t.Run("deduplicates by fragment-stripped URL keeping the heavier source", func(t *testing.T) {
		t.Parallel()

		ranked := castmatch.RankLinks([]castmatch.LinkCandidate{
			castmatch.NewLinkCandidate("https://overcast.fm/+abc#t=30", castmatch.SourceText),
			castmatch.NewLinkCandidate("https://overcast.fm/+abc", castmatch.SourceAnchor),
		})

		require.Len(t, ranked, 1)
		assert.Equal(t, "https://overcast.fm/+abc", ranked[0].URL)
		assert.Equal(t, castmatch.SourceAnchor, ranked[0].Source)
		assert.Equal(t, 90, ranked[0].Weight)
	})

	t.Run("preserves insertion order among equal weights", func(t *testing.T) {
		t.Parallel()

		ranked := castmatch.RankLinks([]castmatch.LinkCandidate{
			castmatch.NewLinkCandidate("https://overcast.fm/+first", castmatch.SourceAnchor),
			castmatch.NewLinkCandidate("https://overcast.fm/+second", castmatch.SourceAnchor),
		})

		require.Len(t, ranked, 2)
		assert.Equal(t, "https://overcast.fm/+first", ranked[0].URL)
		assert.Equal(t, "https://overcast.fm/+second", ranked[1].URL)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, castmatch.RankLinks(nil))
	})
}

func TestPageContextWithHint(t *testing.T) {
	t.Parallel()

	t.Run("prepends hint values as highest priority", func(t *testing.T) {
		t.Parallel()

		page := &castmatch.PageContext{
			PodcastTitles: []string{"Scraped Show"},
			EpisodeTitles: []string{"Scraped Title"},
		}

		hinted := page.WithHint("Hinted Show", "Hinted Title")
		assert.Equal(t, []string{"Hinted Show", "Scraped Show"}, hinted.PodcastTitles)
		assert.Equal(t, []string{"Hinted Title", "Scraped Title"}, hinted.EpisodeTitles)
	})

	t.Run("does not duplicate an already-known value", func(t *testing.T) {
		t.Parallel()

		page := &castmatch.PageContext{
			PodcastTitles: []string{"Other Show", "Hinted Show"},
		}

		hinted := page.WithHint("Hinted Show", "")
		assert.Equal(t, []string{"Hinted Show", "Other Show"}, hinted.PodcastTitles)
	})

	t.Run("empty hint leaves lists untouched", func(t *testing.T) {
		t.Parallel()

		page := &castmatch.PageContext{EpisodeTitles: []string{"Only Title"}}

		hinted := page.WithHint("", "  ")
		assert.Equal(t, page.EpisodeTitles, hinted.EpisodeTitles)
		assert.Nil(t, hinted.PodcastTitles)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		t.Parallel()

		page := &castmatch.PageContext{EpisodeTitles: []string{"Original"}}
		_ = page.WithHint("Show", "Title")

		assert.Equal(t, []string{"Original"}, page.EpisodeTitles)
	})
}

func TestAppendUnique(t *testing.T) {
	t.Parallel()

	list := castmatch.AppendUnique(nil, "  a  ")
	list = castmatch.AppendUnique(list, "a")
	list = castmatch.AppendUnique(list, "")
	list = castmatch.AppendUnique(list, "   ")
	list = castmatch.AppendUnique(list, "b")

	assert.Equal(t, []string{"a", "b"}, list)
}

func TestIsEpisodeURL(t *testing.T) {
	t.Parallel()

	assert.True(t, castmatch.IsEpisodeURL("https://overcast.fm/+abc123"))
	assert.True(t, castmatch.IsEpisodeURL("http://overcast.fm/+abc-DEF_9#t=30"))
	assert.False(t, castmatch.IsEpisodeURL("https://overcast.fm/p12345-abcd"))
	assert.False(t, castmatch.IsEpisodeURL("https://example.com/+abc123"))
	assert.False(t, castmatch.IsEpisodeURL("see https://overcast.fm/+abc123"))
}

func TestIsEpisodePath(t *testing.T) {
	t.Parallel()

	assert.True(t, castmatch.IsEpisodePath("/+abc123"))
	assert.True(t, castmatch.IsEpisodePath("/+abc123#t=30"))
	assert.False(t, castmatch.IsEpisodePath("/podcasts"))
	assert.False(t, castmatch.IsEpisodePath("+abc123"))
}

func TestFindEpisodeURLs(t *testing.T) {
	t.Parallel()

	body := `Listen on <a href="https://overcast.fm/+first">Overcast</a> or
		https://overcast.fm/+second#t=90 but not https://overcast.fm/p123-xyz`

	assert.Equal(t, []string{
		"https://overcast.fm/+first",
		"https://overcast.fm/+second#t=90",
	}, castmatch.FindEpisodeURLs(body))
}

func TestNormalizeEpisodeURL(t *testing.T) {
	t.Parallel()

	normalized, ok := castmatch.NormalizeEpisodeURL("https://overcast.fm/+abc#t=30")
	require.True(t, ok)
	assert.Equal(t, "https://overcast.fm/+abc", normalized)

	normalized, ok = castmatch.NormalizeEpisodeURL("https://overcast.fm/+abc")
	require.True(t, ok)
	assert.Equal(t, "https://overcast.fm/+abc", normalized)

	_, ok = castmatch.NormalizeEpisodeURL("http://[::bad")
	assert.False(t, ok)
}