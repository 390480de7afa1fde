package config

const (
	defaultStagingDir = "~/.local/share/reelscribe/staging"
	defaultLogDir     = "~/.local/share/reelscribe/logs"
	defaultAPIBind    = "0.0.0.0:8000"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults. The whisper
// profile is left empty here; normalization fills it from the MODEL_SIZE
// and COMPUTE_TYPE environment variables or the package defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StagingDir: defaultStagingDir,
			LogDir:     defaultLogDir,
			APIBind:    defaultAPIBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
