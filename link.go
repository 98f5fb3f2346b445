package linkx

import (
	"context"
	"net/url"
	"strings"
)

// ExtractedLink is a single result returned by the extraction service.
// Final is the resolved link presented to the user. Initial is the
// intermediate value the service started from; it is never displayed but
// is kept so records round-trip the wire format.
type ExtractedLink struct {
	Initial string `json:"initial"`
	Final   string `json:"final"`
}

// Extractor submits a page URL to the extraction service.
type Extractor interface {
	// Extract returns the links found on the page at url, in the order
	// the service reported them.
	// Returns EREMOTE when the service reports an application error.
	Extract(ctx context.Context, url string) ([]ExtractedLink, error)
}

// JoinFinal joins the Final field of each link with newlines, preserving
// order. Duplicates are kept and there is no trailing newline.
func JoinFinal(links []ExtractedLink) string {
	finals := make([]string, len(links))
	for i, link := range links {
		finals[i] = link.Final
	}
	return strings.Join(finals, "\n")
}

// SplitLinks splits newline-joined links text into entries.
// Empty text yields no entries rather than a single empty one.
func SplitLinks(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// ValidateURL returns EINVALID unless raw is an absolute URL with a scheme
// and a host.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return Errorf(EINVALID, "URL required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q", raw)
	}
	if u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "URL must be absolute: %q", raw)
	}
	return nil
}
