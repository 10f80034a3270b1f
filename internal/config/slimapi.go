package config

const (
	envSlimBaseURL = "SLIM_API_BASE_URL"
	envSlimAPIKey  = "SLIM_API_KEY"
)

// SlimAPIConfig controls how we talk to the slim scores API.
type SlimAPIConfig struct {
	BaseURL string
	APIKey  string
}

func loadSlimAPI() SlimAPIConfig {
	return SlimAPIConfig{
		BaseURL: envOrDefault(envSlimBaseURL, ""),
		APIKey:  envOrDefault(envSlimAPIKey, ""),
	}
}
