package linkx

// Browser opens a URL in a new browsing context (tab or window).
type Browser interface {
	Open(url string) error
}
