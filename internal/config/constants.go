package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envLivePollInterval = "POLL_INTERVAL_LIVE"
	envIdlePollInterval = "POLL_INTERVAL_IDLE"
	envRotateInterval   = "ROTATE_INTERVAL"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envSnapshotsOn      = "SNAPSHOTS_ENABLED"
	envSnapshotDir      = "SNAPSHOT_DIR"
	envMatrixDriver     = "MATRIX_DRIVER"
	envMatrixChip       = "MATRIX_GPIO_CHIP"

	defaultPort     = "4000"
	defaultProvider = "slimapi"
	// Live cadence keeps the panel fresh during games; idle cadence backs off
	// overnight to stay well under upstream quotas.
	defaultLivePollInterval = 30 * Duration(time.Second)
	defaultIdlePollInterval = 5 * Duration(time.Minute)
	defaultRotateInterval   = 7 * Duration(time.Second)
	defaultMetricsPort      = "9090"
	defaultSnapshotDir      = "data/snapshots"
	defaultMatrixDriver     = "off"
	defaultMatrixChip       = "gpiochip0"
)
