package news

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestFinVizFetch(t *testing.T) {
	page := `<html><body>
<table id="news-table">
  <tr>
    <td>Aug-28-26 09:30AM</td>
    <td><a href="https://example.com/acme-upgrade">Acme upgraded after earnings beat</a></td>
  </tr>
  <tr>
    <td>09:15AM</td>
    <td><a href="https://example.com/acme-guidance">Acme raises full-year guidance</a></td>
  </tr>
  <tr><td>malformed single cell</td></tr>
</table>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	client := NewFinVizClient()
	client.baseURL = srv.URL
	client.httpClient = &http.Client{Timeout: 5 * time.Second}

	articles, err := client.Fetch(t.Context(), "ACME", "Acme Corp")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "Acme upgraded after earnings beat", articles[0].Title)
	assert.Equal(t, "https://example.com/acme-upgrade", articles[0].URL)
	assert.Equal(t, "FinViz", articles[0].Source)
}

func TestFinVizFetchNoNewsTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><p>quote page without news</p></body></html>")
	}))
	defer srv.Close()

	client := NewFinVizClient()
	client.baseURL = srv.URL

	articles, err := client.Fetch(t.Context(), "ACME", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestMarketWatchFetch(t *testing.T) {
	page := `<html><body>
<div class="article__content">
  <a class="link" href="/story/acme-soars">Acme soars on new contract</a>
  <span class="article__timestamp">2 hours ago</span>
</div>
<div class="article__content">
  <a class="link" href="https://www.marketwatch.com/story/acme-dips">Acme dips in late trading</a>
</div>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	client := NewMarketWatchClient()
	client.baseURL = srv.URL

	articles, err := client.Fetch(t.Context(), "ACME", "Acme Corp")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))
	assert.Equal(t, srv.URL+"/story/acme-soars", articles[0].URL)
	assert.Equal(t, false, articles[0].Published.IsZero())
	assert.Equal(t, "https://www.marketwatch.com/story/acme-dips", articles[1].URL)
}

func TestBenzingaFetch(t *testing.T) {
	page := `<html><body>
<div class="story-block">
  <a href="/news/acme-ceo-interview">Acme CEO on growth strategy</a>
  <time datetime="2026-08-27T14:00:00Z">Yesterday</time>
</div>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	client := NewBenzingaClient()
	client.baseURL = srv.URL

	articles, err := client.Fetch(t.Context(), "ACME", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "Acme CEO on growth strategy", articles[0].Title)
	assert.Equal(t, srv.URL+"/news/acme-ceo-interview", articles[0].URL)
	assert.Equal(t, 2026, articles[0].Published.Year())
}

func TestSeekingAlphaFetch(t *testing.T) {
	page := `<html><body>
<a data-test-id="post-list-item-title" href="/news/acme-q2">Acme Q2 results: what to watch</a>
<a data-test-id="post-list-item-title" href="https://seekingalpha.com/news/acme-div">Acme declares dividend</a>
<a href="/unrelated">Unrelated link</a>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	client := NewSeekingAlphaClient()
	client.baseURL = srv.URL

	articles, err := client.Fetch(t.Context(), "ACME", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))
	assert.Equal(t, srv.URL+"/news/acme-q2", articles[0].URL)
	assert.Equal(t, true, articles[0].Published.IsZero())
}
