package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Stripe   Stripe   `envPrefix:"STRIPE_"`
	Airtable Airtable `envPrefix:"AIRTABLE_"`
	Prices   Prices
}

type Stripe struct {
	SecretKey      string `env:"SECRET_KEY"`
	PublishableKey string `env:"PUBLISHABLE_KEY"`
}

type Airtable struct {
	APIKey    string `env:"API_KEY"`
	BaseID    string `env:"BASE_ID"`
	TableName string `env:"TABLE_NAME"`
	BaseURL   string `env:"BASE_URL" envDefault:"https://api.airtable.com"`
}

// Prices maps the fixed catalog to the provider-side price identifiers.
// Missing values do not fail startup; the affected request fails instead.
type Prices struct {
	FoundationTier     string `env:"PRICE_FOUNDATION_TIER"`
	BuilderTier        string `env:"PRICE_BUILDER_TIER"`
	FlagshipTier       string `env:"PRICE_FLAGSHIP_TIER"`
	JobOrEvent         string `env:"PRICE_JOB_OR_EVENT"`
	VirtualHiringEvent string `env:"PRICE_VIRTUAL_HIRING_EVENT"`
	HiringEvent        string `env:"PRICE_HIRING_EVENT"`
	NetworkSponsorship string `env:"PRICE_NETWORK_SPONSORSHIP"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
