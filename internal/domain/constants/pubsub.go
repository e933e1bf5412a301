// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers accepted by pubsub.provider.
const (
	PubSubProviderLocal   = "local"
	PubSubProviderGoogle  = "google"
	PubSubProviderGoCloud = "gocloud"
)

// Message attribute keys carried next to every mail event.
const (
	AttributeMessageID = "message_id"
	AttributeRequestID = "request_id"
)
