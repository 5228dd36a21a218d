package configs

type Bot struct {
	Token         string `env:"TELEGRAM_ATTENDANCE_BOT_TOKEN,notEmpty"`
	UpdateTimeout int    `env:"TELEGRAM_BOT_UPDATE_TIMEOUT" envDefault:"60"`
}
