// Package fetch pulls the framework question inventory from its source
// pages. Extraction is heuristic by design: pages are reduced to text
// lines and lines that look like questions are kept, so layout changes
// in the source degrade recall rather than break parsing.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"time"

	"go.uber.org/zap"

	"wai/internal/inventory"
	"wai/internal/pillar"
	"wai/internal/report"
)

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 60 * time.Second

// Fetcher downloads pillar pages and extracts their questions.
type Fetcher struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// New builds a Fetcher rooted at baseURL with a bounded per-request
// timeout.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Fetcher {
	if baseURL == "" {
		baseURL = pillar.BaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// FetchAll walks every pillar's best-practice index page, follows its
// topic page links, and extracts questions from each. Questions with
// no source id get a synthetic "<PREFIX>-NNN" id numbered per pillar.
func (f *Fetcher) FetchAll(ctx context.Context) ([]inventory.Question, error) {
	fetchedAt := time.Now().UTC().Format(report.TimeFormat)
	var questions []inventory.Question

	for _, p := range pillar.All {
		bpPage, hrefPrefix := pillar.BPPage(p)
		bpHTML, err := f.get(ctx, f.baseURL+"/"+bpPage)
		if err != nil {
			return nil, fmt.Errorf("fetch %s best practices: %w", p, err)
		}
		pages := topicPages(bpHTML, hrefPrefix)
		if len(pages) == 0 {
			f.log.Warn("no topic pages found", zap.String("pillar", p))
			continue
		}

		idx := 0
		for _, page := range pages {
			pageURL := f.baseURL + "/" + page
			pageHTML, err := f.get(ctx, pageURL)
			if err != nil {
				return nil, fmt.Errorf("fetch %s: %w", page, err)
			}
			for _, q := range ExtractQuestions(pageHTML) {
				idx++
				id := q.ID
				if id == "" {
					id = fmt.Sprintf("%s-%03d", pillar.IDPrefix(p), idx)
				}
				questions = append(questions, inventory.Question{
					Pillar:    p,
					ID:        id,
					Text:      q.Text,
					SourceURL: pageURL,
					FetchedAt: fetchedAt,
					License:   report.LicenseText,
				})
			}
		}
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions parsed, check extraction heuristics")
	}
	return questions, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// topicPages collects the relative topic page links sharing the
// pillar's href prefix, sorted and deduplicated.
func topicPages(html, hrefPrefix string) []string {
	re := regexp.MustCompile(`href="\./(` + regexp.QuoteMeta(hrefPrefix) + `[^"]+\.html)"`)
	seen := make(map[string]bool)
	var pages []string
	for _, m := range re.FindAllStringSubmatch(html, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			pages = append(pages, m[1])
		}
	}
	sort.Strings(pages)
	return pages
}
