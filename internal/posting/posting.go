// Package posting checks whether a job posting is still live and extracts
// the posting text that the cover-letter company-fact check verifies against.
package posting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds a single liveness probe.
const DefaultTimeout = 10 * time.Second

// defaultUserAgent identifies the checker to job boards.
const defaultUserAgent = "Mozilla/5.0 (compatible; ApplicationVerifier/1.0)"

// expiredSignals are body substrings that mean a 200 page no longer carries
// an open posting.
var expiredSignals = []string{
	"this job is no longer available",
	"this position has been filled",
	"this listing has expired",
	"no longer accepting applications",
	"this job has been closed",
	"position closed",
}

// LivenessResult describes the outcome of a posting probe. A probe never
// fails outright: network trouble reports Live=false with a note.
type LivenessResult struct {
	URL        string `json:"url"`
	Live       bool   `json:"live"`
	StatusCode int    `json:"status_code"`
	Notes      string `json:"notes"`
}

// Error represents an error preparing a posting request.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("posting error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("posting error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Checker probes job-posting URLs.
type Checker struct {
	client    *http.Client
	userAgent string
}

// NewChecker returns a checker with the default timeout.
func NewChecker() *Checker {
	return NewCheckerWithClient(&http.Client{Timeout: DefaultTimeout})
}

// NewCheckerWithClient returns a checker using the given HTTP client. Tests
// use this to shorten timeouts.
func NewCheckerWithClient(client *http.Client) *Checker {
	return &Checker{client: client, userAgent: defaultUserAgent}
}

// IsLive probes a posting URL. 404 and 410 mean the posting was removed; any
// other non-200 status is treated as not live; a 200 body is scanned for
// expired signals. Timeouts and connection failures report not live rather
// than an error, since a flaky board should not abort verification.
func (c *Checker) IsLive(ctx context.Context, urlStr string) (*LivenessResult, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		result := &LivenessResult{URL: urlStr}
		if isTimeout(err) {
			result.Notes = "connection timed out, treat as potentially expired"
		} else {
			result.Notes = fmt.Sprintf("connection error: %v", err)
		}
		return result, nil
	}
	defer func() { _ = resp.Body.Close() }()

	result := &LivenessResult{URL: urlStr, StatusCode: resp.StatusCode}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		result.Notes = fmt.Sprintf("HTTP %d: posting removed", resp.StatusCode)
		return result, nil
	case resp.StatusCode != http.StatusOK:
		result.Notes = fmt.Sprintf("HTTP %d: non-200 response", resp.StatusCode)
		return result, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Notes = fmt.Sprintf("failed to read body: %v", err)
		return result, nil
	}

	bodyLower := strings.ToLower(string(body))
	for _, signal := range expiredSignals {
		if strings.Contains(bodyLower, signal) {
			result.Notes = fmt.Sprintf("expired signal found: '%s'", signal)
			return result, nil
		}
	}

	result.Live = true
	result.Notes = "live"
	return result, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// contentSelectors target the job-description containers of common boards,
// falling back to generic main-content elements.
var contentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractText parses posting HTML and returns the job text. Noise elements
// are stripped first; if no job-board selector matches, the whole body text
// is used.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace drops blank lines and trims each remaining line.
func cleanWhitespace(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
