package email

import (
	"gopkg.in/mail.v2"
)

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// SendEach delivers the same message to every recipient over one SMTP
// session and returns the per-recipient failures.
func (c *Client) SendEach(to []string, subject, body string) (map[string]error, error) {
	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	sender, err := dialer.Dial()
	if err != nil {
		return nil, err
	}
	defer sender.Close()

	failed := make(map[string]error)
	for _, addr := range to {
		if err := mail.Send(sender, c.message(addr, subject, body)); err != nil {
			failed[addr] = err
		}
	}

	return failed, nil
}

func (c *Client) message(to, subject, body string) *mail.Message {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	return message
}
