// Package constants defines values shared across layers.
package constants

const (
	// EnvDevelop is the env.env value of local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events over plain HTTP to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
