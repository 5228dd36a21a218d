package commands

// Command is one text command of the bot. Handle returns the reply for the
// invoking user; platforms only differ in how they deliver it.
type Command interface {
	CanHandle(command string) bool
	Handle(arguments, userID string) string
}

// Find returns the command that accepts name.
func Find(commands []Command, name string) (Command, bool) {
	for _, command := range commands {
		if command.CanHandle(name) {
			return command, true
		}
	}
	return nil, false
}
