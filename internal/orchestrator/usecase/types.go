package usecase

// cachedPayload is the stored shape of a cacheable pipeline result.
type cachedPayload struct {
	Intent string                 `json:"intent"`
	Data   map[string]interface{} `json:"data"`
}
