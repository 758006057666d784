package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultFetchTimeout bounds the HTTP request when pulling a job posting.
const DefaultFetchTimeout = 30 * time.Second

const fetchUserAgent = "Mozilla/5.0 (compatible; ResumeAnalyzer/1.0)"

// maxFetchBytes caps how much of a response body is read.
const maxFetchBytes = 2 << 20

var (
	// ErrInvalidURL is returned when the URL is malformed.
	ErrInvalidURL = fmt.Errorf("invalid URL")
	// ErrFetchFailed is returned when the HTTP request fails.
	ErrFetchFailed = fmt.Errorf("fetch failed")
)

// noiseSelectors are stripped before text extraction: navigation, scripts,
// cookie banners and similar chrome that would pollute the posting text.
var noiseSelectors = []string{
	"script", "style", "noscript", "nav", "header", "footer",
	"iframe", "form", "[role=navigation]", "[class*=cookie]",
}

// FetchJobPosting downloads a job posting page and reduces it to cleaned
// plain text. Only static HTML is handled; postings rendered entirely
// client-side will come back short or empty.
func FetchJobPosting(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, urlStr)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %s", ErrInvalidURL, parsed.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	client := &http.Client{Timeout: DefaultFetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d from %s", ErrFetchFailed, resp.StatusCode, urlStr)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrFetchFailed, err)
	}

	text, err := ExtractText(string(body))
	if err != nil {
		return "", err
	}
	return text, nil
}

// ExtractText converts an HTML document to cleaned plain text, dropping
// noise elements first.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(blockText(s))
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Documents without a body tag still carry text nodes.
		text = doc.Text()
	}

	return CleanText(text), nil
}

// blockText walks the selection and inserts line breaks at block-level
// boundaries so headings and list items stay on their own lines.
func blockText(s *goquery.Selection) string {
	var sb strings.Builder
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		if goquery.NodeName(child) == "#text" {
			sb.WriteString(child.Text())
			return
		}
		inner := blockText(child)
		switch goquery.NodeName(child) {
		case "p", "div", "li", "br", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "tr", "section", "article":
			sb.WriteString("\n")
			sb.WriteString(inner)
			sb.WriteString("\n")
		default:
			sb.WriteString(inner)
		}
	})
	return sb.String()
}
