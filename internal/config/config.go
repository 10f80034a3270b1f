package config

// Config holds runtime configuration for the scoreboard.
type Config struct {
	Port             string
	Provider         string
	LivePollInterval Duration
	IdlePollInterval Duration
	RotateInterval   Duration
	LogLevel         string
	LogFormat        string
	SlimAPI          SlimAPIConfig
	Metrics          MetricsConfig
	Snapshots        SnapshotConfig
	Matrix           MatrixConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:             envOrDefault(envPort, defaultPort),
		Provider:         envOrDefault(envProvider, defaultProvider),
		LivePollInterval: durationEnvOrDefault(envLivePollInterval, defaultLivePollInterval),
		IdlePollInterval: durationEnvOrDefault(envIdlePollInterval, defaultIdlePollInterval),
		RotateInterval:   durationEnvOrDefault(envRotateInterval, defaultRotateInterval),
		LogLevel:         envOrDefault(envLogLevel, ""),
		LogFormat:        envOrDefault(envLogFormat, ""),
		SlimAPI:          loadSlimAPI(),
		Metrics:          loadMetrics(),
		Snapshots:        loadSnapshots(),
		Matrix:           loadMatrix(),
	}
}
