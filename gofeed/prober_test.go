package gofeed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/castmatch"
	"github.com/fwojciec/castmatch/gofeed"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
	<channel>
		<title> Hardware to Save a Planet </title>
		<link>https://example.com</link>
		<description>Climate tech conversations.</description>
		<item>
			<title>Turning Sunlight into Gas</title>
			<link>https://example.com/ep42</link>
		</item>
	</channel>
</rss>`

func TestProber_ProbeTitle(t *testing.T) {
	t.Parallel()

	t.Run("returns the trimmed channel title", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = w.Write([]byte(rssFixture))
		}))
		defer srv.Close()

		title, err := gofeed.NewProber().ProbeTitle(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "Hardware to Save a Planet", title)
	})

	t.Run("unparseable feed is an availability error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not a feed</html>"))
		}))
		defer srv.Close()

		_, err := gofeed.NewProber().ProbeTitle(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, castmatch.EUNAVAILABLE, castmatch.ErrorCode(err))
	})

	t.Run("unreachable feed is an availability error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := gofeed.NewProber().ProbeTitle(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, castmatch.EUNAVAILABLE, castmatch.ErrorCode(err))
	})
}
