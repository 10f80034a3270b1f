package config

// MatrixConfig selects the panel driver. "hub75" drives the physical panel
// over GPIO; "off" renders nowhere and leaves /frame.png as the only output.
type MatrixConfig struct {
	Driver string
	Chip   string
}

func loadMatrix() MatrixConfig {
	return MatrixConfig{
		Driver: envOrDefault(envMatrixDriver, defaultMatrixDriver),
		Chip:   envOrDefault(envMatrixChip, defaultMatrixChip),
	}
}
