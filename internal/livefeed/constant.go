package livefeed

// Log prefixes
const (
	LogPrefixHandle = "internal.livefeed.Handle"
)
