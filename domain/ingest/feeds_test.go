package ingest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetcherAgainst(server *httptest.Server) *feedFetcher {
	return &feedFetcher{
		client:               &http.Client{Timeout: time.Second},
		wikipediaAPIBase:     server.URL + "/w/api.php",
		wikipediaSummaryBase: server.URL + "/api/rest_v1/page/summary",
		newsRSSBase:          server.URL + "/rss/search",
		arxivAPIBase:         server.URL + "/api/query",
	}
}

func TestFetchWikipedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/w/api.php":
			assert.Equal(t, "drought", r.URL.Query().Get("srsearch"))
			fmt.Fprint(w, `{"query":{"search":[{"title":"Drought"},{"title":"Aridification"}]}}`)
		case "/api/rest_v1/page/summary/Drought":
			fmt.Fprint(w, `{"extract":"A drought is a period of drier-than-normal conditions."}`)
		case "/api/rest_v1/page/summary/Aridification":
			fmt.Fprint(w, `{"extract":"Aridification is the process of a region becoming arid."}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	items, err := fetcherAgainst(server).FetchWikipedia("drought", 5)
	require.Nil(t, err)

	assert.Equal(t, []string{
		"A drought is a period of drier-than-normal conditions.",
		"Aridification is the process of a region becoming arid.",
	}, items)
}

func TestFetchWikipediaSkipsFailedSummaries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/w/api.php":
			fmt.Fprint(w, `{"query":{"search":[{"title":"Good"},{"title":"Broken"}]}}`)
		case "/api/rest_v1/page/summary/Good":
			fmt.Fprint(w, `{"extract":"Good summary."}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	items, err := fetcherAgainst(server).FetchWikipedia("anything", 5)
	require.Nil(t, err)
	assert.Equal(t, []string{"Good summary."}, items)
}

func TestFetchNews(t *testing.T) {
	const rss = `<?xml version="1.0"?>
<rss version="2.0"><channel>
  <item><title>Drought hits wheat belt</title><description>&lt;a href="x"&gt;Yields fall sharply&lt;/a&gt;</description></item>
  <item><title>Rain returns</title><description>Farmers celebrate</description></item>
  <item><title>Third story</title><description>Ignored by limit</description></item>
</channel></rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rss/search", r.URL.Path)
		assert.Equal(t, "wheat drought", r.URL.Query().Get("q"))
		fmt.Fprint(w, rss)
	}))
	defer server.Close()

	items, err := fetcherAgainst(server).FetchNews("wheat drought", 2)
	require.Nil(t, err)

	assert.Len(t, items, 2)
	assert.Equal(t, "Drought hits wheat belt. Yields fall sharply", items[0])
	assert.Equal(t, "Rain returns. Farmers celebrate", items[1])
}

func TestFetchArxiv(t *testing.T) {
	const atom = `<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry><title>Climate impact on crops</title><summary>We study drought effects on yield.</summary></entry>
</feed>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/query", r.URL.Path)
		assert.Equal(t, "all:agriculture", r.URL.Query().Get("search_query"))
		fmt.Fprint(w, atom)
	}))
	defer server.Close()

	items, err := fetcherAgainst(server).FetchArxiv("agriculture", 3)
	require.Nil(t, err)

	assert.Equal(t, []string{"Climate impact on crops. We study drought effects on yield."}, items)
}

func TestFetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := fetcherAgainst(server).FetchNews("anything", 1)
	assert.Error(t, err)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Yields fall", stripHTML(`<a href="x">Yields fall</a>`))
	assert.Equal(t, "a & b", stripHTML("a &amp; b"))
	assert.Equal(t, "plain", stripHTML("plain"))
}
