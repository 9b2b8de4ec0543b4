package product

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Info is the best-effort scrape of a product page. Empty fields mean the
// value was not found; fetching never reports an error because the form works
// fine without a prefill.
type Info struct {
	Name            string `json:"name"`
	Price           string `json:"price"`
	URL             string `json:"url"`
	DescriptionHint string `json:"description_hint"`
}

// DefaultTimeout bounds one page fetch unless config says otherwise.
const DefaultTimeout = 10 * time.Second

const (
	userAgent    = "Mozilla/5.0"
	maxNameRunes = 60
	maxHintRunes = 800
)

var (
	// Store pages title as "상품명 - 미샵 ..."; the suffix is noise for a post.
	titleSuffixRe = regexp.MustCompile(`\s*-\s*미샵.*$`)
	// First KRW amount with thousands separators, e.g. "39,000원".
	priceRe = regexp.MustCompile(`(\d{1,3}(?:,\d{3})+)\s*원`)
)

// Fetcher scrapes product pages for the form prefill.
type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch pulls name, price, and a description hint from url. Whatever step
// fails, the caller still gets an Info with the fields found so far; og:title
// wins over the <title> tag for the name.
func (f *Fetcher) Fetch(ctx context.Context, url string) Info {
	info := Info{URL: url}
	if strings.TrimSpace(url) == "" {
		return info
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return info
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return info
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return info
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return info
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		info.Name = truncate(strings.TrimSpace(titleSuffixRe.ReplaceAllString(title, "")), maxNameRunes)
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			info.Name = truncate(og, maxNameRunes)
		}
	}

	text := visibleText(doc)
	if m := priceRe.FindStringSubmatch(text); m != nil {
		info.Price = m[1] + "원"
	}
	info.DescriptionHint = truncate(text, maxHintRunes)

	return info
}

// visibleText flattens the page into one whitespace-collapsed string, with
// script and style content removed.
func visibleText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}
