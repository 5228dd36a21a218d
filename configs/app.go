package configs

import "time"

type App struct {
	Environment     string        `env:"ENVIRONMENT,notEmpty"`
	HealthCheckAddr string        `env:"HEALTH_CHECK_ADDR" envDefault:":8080"`
	RequestTimeout  time.Duration `env:"MESSENGER_REQUEST_TIMEOUT" envDefault:"10s"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
