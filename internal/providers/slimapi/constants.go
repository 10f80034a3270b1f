package slimapi

import "time"

const (
	defaultBaseURL     = "https://sports-slim-api.vercel.app/api"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512
)
