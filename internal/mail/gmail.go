// Package mail delivers the rendered digest through the Gmail API.
package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// FromName is the display name on outgoing digests.
const FromName = "Café con IA — Top 10"

// Preheader is sent on every digest so clients show a stable preview line.
const (
	PreheaderHeader = "X-Preheader"
	PreheaderValue  = "Resumen verificado en 5 min"
)

// Email is one fully rendered delivery.
type Email struct {
	Sender     string
	Recipients []string
	Subject    string
	HTML       string
	Text       string
	Headers    map[string]string
}

// NewDigestEmail assembles the standard digest email: day-rotated subject
// and the preheader header.
func NewDigestEmail(sender string, recipients []string, now time.Time, htmlBody, textBody string) Email {
	return Email{
		Sender:     sender,
		Recipients: recipients,
		Subject:    SubjectFor(now),
		HTML:       htmlBody,
		Text:       textBody,
		Headers:    map[string]string{PreheaderHeader: PreheaderValue},
	}
}

// Sender sends mail as a Google Workspace user through a service account
// with domain-wide delegation.
type Sender struct {
	CredentialsFile string

	// readFile is swapped in tests.
	readFile func(string) ([]byte, error)
}

func NewSender(credentialsFile string) *Sender {
	return &Sender{CredentialsFile: credentialsFile, readFile: os.ReadFile}
}

// Send delivers the email. Any failure here is fatal for the run and is
// reported to the caller.
func (s *Sender) Send(ctx context.Context, email Email) error {
	credentials, err := s.readFile(s.CredentialsFile)
	if err != nil {
		return errors.Wrap(err, "read gmail credentials")
	}
	config, err := google.JWTConfigFromJSON(credentials, gmail.GmailSendScope)
	if err != nil {
		return errors.Wrap(err, "parse gmail credentials")
	}
	// The service account impersonates the configured sender.
	config.Subject = email.Sender

	service, err := gmail.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return errors.Wrap(err, "create gmail client")
	}

	message := &gmail.Message{
		Raw: base64.RawURLEncoding.EncodeToString([]byte(buildMessage(email))),
	}
	if _, err := service.Users.Messages.Send("me", message).Do(); err != nil {
		return errors.Wrap(err, "send digest")
	}
	return nil
}

const boundary = "cafe-digest-alt"

// buildMessage writes the RFC 5322 multipart/alternative payload the Gmail
// API expects in Message.Raw.
func buildMessage(email Email) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", FromName), email.Sender)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(email.Recipients, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", email.Subject))
	for name, value := range email.Headers {
		fmt.Fprintf(&b, "%s: %s\r\n", name, value)
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(email.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(email.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.String()
}
