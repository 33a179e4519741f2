package config

// holds all runtime configuration, loaded once at startup
type Config struct {
	DatabaseURL        string
	JWTSecret          string
	JWTAlgorithm       string
	TokenExpiresDays   int
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	SessionSecret      string
	Environment        string
	Port               string
}

// reports whether the server runs with production hardening enabled
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
