package topics

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Finance Feed</title>
  <item>
    <title>Bank of Canada holds rate</title>
    <link>https://example.com/boc-holds</link>
    <description>The overnight rate stays put.</description>
    <pubDate>Mon, 17 Aug 2026 12:00:00 GMT</pubDate>
  </item>
  <item>
    <title>TFSA limit announced</title>
    <link>https://example.com/tfsa-limit</link>
    <description>Next year's contribution room.</description>
  </item>
  <item>
    <title>Third story</title>
    <link>https://example.com/third</link>
  </item>
</channel>
</rss>`

func TestFetchFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	topics, err := FetchFeed(srv.URL, 2)
	if err != nil {
		t.Fatalf("FetchFeed: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("FetchFeed returned %d topics; want 2 (maxCount)", len(topics))
	}

	first := topics[0]
	if first.Title != "Bank of Canada holds rate" {
		t.Errorf("title = %q", first.Title)
	}
	if first.URL != "https://example.com/boc-holds" {
		t.Errorf("url = %q", first.URL)
	}
	if first.Summary != "The overnight rate stays put." {
		t.Errorf("summary = %q", first.Summary)
	}
	if first.PublishedAt.IsZero() {
		t.Error("published time not parsed")
	}

	if topics[1].PublishedAt.IsZero() != true {
		t.Error("item without pubDate should have zero published time")
	}
}

func TestResolveFeedURL(t *testing.T) {
	if got := ResolveFeedURL("boc"); got != FeedPresets["boc"] {
		t.Errorf("preset not resolved: %q", got)
	}
	direct := "https://example.com/custom.xml"
	if got := ResolveFeedURL(direct); got != direct {
		t.Errorf("direct URL altered: %q", got)
	}
}
