// Package constants holds values shared between config and wiring.
package constants

// Event publisher providers.
const (
	PubSubProviderNoop     = "noop"
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Runtime environments.
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
	EnvProd    = "production"
)

// Platforms accepted on device registration.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)
