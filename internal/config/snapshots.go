package config

// SnapshotConfig controls on-disk game snapshots. Snapshots let the board
// show the last known scores immediately after a reboot, before the first
// fetch lands.
type SnapshotConfig struct {
	Enabled bool
	Dir     string
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled: boolEnvOrDefault(envSnapshotsOn, true),
		Dir:     envOrDefault(envSnapshotDir, defaultSnapshotDir),
	}
}
