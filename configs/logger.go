package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"office-attendance-bot"`
	URL     string `env:"LOKI_URL"`
}
