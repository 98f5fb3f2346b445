package linkx

// Clipboard writes text to the host clipboard.
type Clipboard interface {
	WriteText(text string) error
}
