package config

// AppConfig carries the startup configuration cmd/main.go resolves from the
// environment. The paseto symmetric key and SMTP settings are read directly
// where they are used and do not pass through here.
type AppConfig struct {
	DBURL        string
	RedisAddress string
	BearerToken  string
}

// GetBearerToken returns the static token guarding the /ops endpoints.
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}
