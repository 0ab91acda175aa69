package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// Dialer delivers an assembled message. gomail's Dialer satisfies it;
// tests substitute a recorder.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Config struct {
	Host     string
	Port     int
	From     string
	Password string
}

// InquiryMailer forwards a buyer's message about a listing to the
// seller, when the listing's contact is an email address.
type InquiryMailer struct {
	dialer Dialer
	from   string
}

func NewInquiryMailer(cfg Config) *InquiryMailer {
	return &InquiryMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.From, cfg.Password),
		from:   cfg.From,
	}
}

// NewInquiryMailerWithDialer exists for tests.
func NewInquiryMailerWithDialer(d Dialer, from string) *InquiryMailer {
	return &InquiryMailer{dialer: d, from: from}
}

func (m *InquiryMailer) SendInquiry(sellerEmail, listingTitle, buyerName, message string) error {
	if !strings.Contains(sellerEmail, "@") {
		return fmt.Errorf("seller contact %q is not an email address", sellerEmail)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", sellerEmail)
	msg.SetHeader("Subject", "Inquiry about your listing: "+listingTitle)
	msg.SetBody("text/plain", fmt.Sprintf("%s is interested in %q:\n\n%s", buyerName, listingTitle, message))

	return m.dialer.DialAndSend(msg)
}
