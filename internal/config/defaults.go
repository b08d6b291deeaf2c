package config

const (
	defaultDataDir      = "~/.local/share/sscs-robotics"
	defaultLogDir       = "~/.local/share/sscs-robotics/logs"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultEmailPort    = 587
	defaultEmailTimeout = 30
	defaultHTTPTimeout  = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Email: Email{
			Port:           defaultEmailPort,
			RequestTimeout: defaultEmailTimeout,
		},
		CCD: CCD{
			RequestTimeout: defaultHTTPTimeout,
		},
		DocStore: DocStore{
			RequestTimeout: defaultHTTPTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
