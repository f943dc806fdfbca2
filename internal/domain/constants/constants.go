// Package constants holds configuration values shared across layers.
package constants

// Event publisher providers.
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAMQP   = "amqp"
)

// Payment gateway providers.
const (
	PaymentGatewayApprove   = "approve"
	PaymentGatewaySimulated = "simulated"
)

// Database drivers.
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverMySQL    = "mysql"
)

// EnvLocal is the environment name used on developer machines.
const EnvLocal = "local"
