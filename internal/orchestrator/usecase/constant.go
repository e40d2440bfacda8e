package usecase

const (
	directTemperature = 0.4
	directMaxTokens   = 1024
)
