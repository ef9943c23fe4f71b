package ingest

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"knowmap-backend/utils"
)

/*
feedFetcher pulls raw text items from the public feeds. Base URLs are fields
so tests can point them at a local server.
*/
type feedFetcher struct {
	client *http.Client

	wikipediaAPIBase     string
	wikipediaSummaryBase string
	newsRSSBase          string
	arxivAPIBase         string
}

func newFeedFetcher() *feedFetcher {
	return &feedFetcher{
		client:               &http.Client{Timeout: 30 * time.Second},
		wikipediaAPIBase:     "https://en.wikipedia.org/w/api.php",
		wikipediaSummaryBase: "https://en.wikipedia.org/api/rest_v1/page/summary",
		newsRSSBase:          "https://news.google.com/rss/search",
		arxivAPIBase:         "http://export.arxiv.org/api/query",
	}
}

var defaultFetcher = newFeedFetcher()

func (f *feedFetcher) getBody(rawURL string) ([]byte, error) {
	resp, err := f.client.Get(rawURL)
	if err != nil {
		return nil, utils.WrapErrorf(err, "get [%s] fail", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get [%s] status [%d]", rawURL, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

//////////////////////////////// wikipedia ////////////////////////////////////

type wikipediaSearchSchema struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikipediaSummarySchema struct {
	Extract string `json:"extract"`
}

/*
FetchWikipedia searches Wikipedia for the query and returns the page
summaries of the first maxItems hits. Pages whose summary cannot be fetched
are skipped, not fatal.
*/
func (f *feedFetcher) FetchWikipedia(query string, maxItems int) ([]string, error) {
	searchURL := fmt.Sprintf("%s?action=query&list=search&format=json&srlimit=%d&srsearch=%s",
		f.wikipediaAPIBase, maxItems, url.QueryEscape(query))

	body, err := f.getBody(searchURL)
	if err != nil {
		return nil, utils.WrapError(err, "search wikipedia fail")
	}

	var search wikipediaSearchSchema
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, utils.WrapError(err, "decode wikipedia search fail")
	}

	items := make([]string, 0, len(search.Query.Search))
	for _, hit := range search.Query.Search {
		summaryURL := fmt.Sprintf("%s/%s", f.wikipediaSummaryBase, url.PathEscape(hit.Title))

		body, err := f.getBody(summaryURL)
		if err != nil {
			continue
		}

		var summary wikipediaSummarySchema
		if err := json.Unmarshal(body, &summary); err != nil {
			continue
		}

		if summary.Extract != "" {
			items = append(items, summary.Extract)
		}
	}

	return items, nil
}

//////////////////////////////// google news ////////////////////////////////////

type newsRSSSchema struct {
	Channel struct {
		Items []struct {
			Title       string `xml:"title"`
			Description string `xml:"description"`
		} `xml:"item"`
	} `xml:"channel"`
}

// FetchNews pulls the Google News RSS results for the query. Each item
// becomes one text unit combining headline and description.
func (f *feedFetcher) FetchNews(query string, maxItems int) ([]string, error) {
	rssURL := fmt.Sprintf("%s?q=%s", f.newsRSSBase, url.QueryEscape(query))

	body, err := f.getBody(rssURL)
	if err != nil {
		return nil, utils.WrapError(err, "fetch news rss fail")
	}

	var rss newsRSSSchema
	if err := xml.Unmarshal(body, &rss); err != nil {
		return nil, utils.WrapError(err, "decode news rss fail")
	}

	items := make([]string, 0, maxItems)
	for _, item := range rss.Channel.Items {
		if len(items) >= maxItems {
			break
		}

		text := strings.TrimSpace(stripHTML(item.Title) + ". " + stripHTML(item.Description))
		if text != "." {
			items = append(items, text)
		}
	}

	return items, nil
}

//////////////////////////////// arxiv ////////////////////////////////////

type arxivFeedSchema struct {
	Entries []struct {
		Title   string `xml:"title"`
		Summary string `xml:"summary"`
	} `xml:"entry"`
}

// FetchArxiv queries the arXiv Atom API and returns abstract texts.
func (f *feedFetcher) FetchArxiv(query string, maxItems int) ([]string, error) {
	apiURL := fmt.Sprintf("%s?search_query=all:%s&max_results=%d",
		f.arxivAPIBase, url.QueryEscape(query), maxItems)

	body, err := f.getBody(apiURL)
	if err != nil {
		return nil, utils.WrapError(err, "fetch arxiv feed fail")
	}

	var feed arxivFeedSchema
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, utils.WrapError(err, "decode arxiv feed fail")
	}

	items := make([]string, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		text := strings.TrimSpace(stripHTML(entry.Title) + ". " + stripHTML(entry.Summary))
		if text != "." {
			items = append(items, text)
		}
	}

	return items, nil
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func stripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(htmlTagPattern.ReplaceAllString(s, " ")))
}
