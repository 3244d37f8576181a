// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Media providers
const (
	MediaProviderBlob = "blob"
	MediaProviderS3   = "s3"
)

// Rate limit backends
const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

// Token cookie names
const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)
