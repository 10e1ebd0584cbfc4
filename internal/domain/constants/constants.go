package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Settings store keys
const (
	SettingShippingCost          = "shipping_cost"
	SettingFreeShippingThreshold = "free_shipping_threshold"
)
