package configs

type Discord struct {
	Token   string `env:"DISCORD_ATTENDANCE_BOT_TOKEN,notEmpty"`
	GuildID string `env:"DISCORD_GUILD_ID,notEmpty"`
}
