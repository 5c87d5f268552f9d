// Package constants holds shared domain-level constant values.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"
	// EnvProduction marks the production environment.
	EnvProduction = "production"

	// PubSubProviderLocal publishes match events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes match events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// MatcherModeInline runs proximity match rounds in-process.
	MatcherModeInline = "inline"
	// MatcherModeWorker publishes match events for the matchworker binary.
	MatcherModeWorker = "worker"
)
