package interfaces

//go:generate mockgen -source=mailer_interface.go -destination=mocks/mailer_interface.go -package=mock_interfaces

import "context"

type Attachment struct {
	Name string
	Data []byte
}

type IMailer interface {
	Send(ctx context.Context, to []string, subject, body string, attachments []Attachment) error
}
