package cmd

import "transport/internal/pkg/errs"

type Config struct {
	HTTPPort          string
	AuthToken         string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	CurrencyAPIHost   string
	CurrencyAPIKey    string
	RoutingAPIHost    string
	OutboundTimeoutMS string
}

// Validate rejects configurations that would boot an unusable or open
// service. Every API route demands the bearer credential, so a missing
// token is a startup error, not an optional feature.
func (c Config) Validate() error {
	if c.AuthToken == "" {
		return errs.NewValueIsRequiredError("AUTH_TOKEN")
	}
	if c.HTTPPort == "" {
		return errs.NewValueIsRequiredError("HTTP_PORT")
	}
	return nil
}
