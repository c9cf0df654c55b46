package constants

// Event publisher providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Session header names accepted by the API
const (
	HeaderSessionToken  = "X-Session-Token"
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// DefaultMaxMoosageLength is used when moosage.maxContentLength is not configured.
const DefaultMaxMoosageLength = 280
