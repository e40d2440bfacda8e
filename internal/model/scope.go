package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity of the caller through the request pipeline.
type Scope struct {
	UserID    string
	SessionID string
}
