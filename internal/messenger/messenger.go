package messenger

import "context"

type User struct {
	ID       string
	Name     string
	IsBot    bool
	IsSystem bool
	Deleted  bool
}

// Handle points at a message the bot has sent so it can be edited or deleted.
type Handle struct {
	ChannelID string
	MessageID string
}

type Button struct {
	Text     string
	Value    string
	ActionID string
}

type Content struct {
	Question string
	Summary  string
	Buttons  []Button
}

// Text joins the question and summary the way single-text platforms show them.
func (c Content) Text() string {
	if c.Summary == "" {
		return c.Question
	}
	return c.Question + "\n\n" + c.Summary
}

//go:generate mockgen -source=messenger.go -destination=mocks/mock_messenger.go -package=mock_messenger
type Messenger interface {
	ListUsers(ctx context.Context) ([]User, error)
	OpenDirectChannel(ctx context.Context, userID string) (string, error)
	PostMessage(ctx context.Context, channelID string, content Content) (Handle, error)
	UpdateMessage(ctx context.Context, handle Handle, content Content) error
	DeleteMessage(ctx context.Context, handle Handle) error
	Mention(userID string) string
}
