package configs

type PollPaths struct {
	DefaultsPath string `env:"POLL_DEFAULT_CONFIG_PATH"`
	OverridePath string `env:"POLL_CONFIG_PATH"`
}
