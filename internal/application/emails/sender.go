package emails

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/gomail.v2"
)

const (
	senderName  = "Thannmanngaadi Foundation"
	supportName = "Thannmanngaadi Support"
)

// Attachment is an in-memory file to attach to an outgoing email.
type Attachment struct {
	Filename string
	Content  []byte
}

// Sender sends transactional emails (certificate, support reply, volunteer
// status). Nil = no-op, same as an unconfigured SMTP transport.
type Sender interface {
	SendCertificate(toEmail, name string, amount float64, certificateID, verifyURL string, pdf []byte) error
	SendReply(toEmail, name, message string) error
	SendVolunteerStatus(toEmail, name, status string) error
}

// SMTPClient sends emails over SMTP. Env: SMTP_HOST/PORT/SECURE/USER/PASS,
// FROM_EMAIL.
type SMTPClient struct {
	Host   string
	Port   int
	Secure bool
	User   string
	Pass   string
	From   string

	// send is swappable for tests; defaults to a gomail dialer.
	send func(m *gomail.Message) error
}

// NewSMTPClient builds the SMTP sender. Returns nil when host/user/pass are
// not all set so callers can treat "no SMTP" as a no-op sender.
func NewSMTPClient(host string, port int, secure bool, user, pass, from string) *SMTPClient {
	if host == "" || user == "" || pass == "" {
		return nil
	}
	if from == "" {
		from = user
	}
	c := &SMTPClient{Host: host, Port: port, Secure: secure, User: user, Pass: pass, From: from}
	c.send = func(m *gomail.Message) error {
		d := gomail.NewDialer(c.Host, c.Port, c.User, c.Pass)
		d.SSL = c.Secure
		return d.DialAndSend(m)
	}
	return c
}

func (c *SMTPClient) sendMail(fromName, toEmail, subject, html string, attachments ...Attachment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(c.From, fromName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)
	for _, a := range attachments {
		content := a.Content
		m.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	return c.send(m)
}

// SendCertificate emails the donation acknowledgement with the PDF attached.
func (c *SMTPClient) SendCertificate(toEmail, name string, amount float64, certificateID, verifyURL string, pdf []byte) error {
	html := certificateContent(name, formatAmount(amount), certificateID, verifyURL)
	return c.sendMail(senderName, toEmail,
		"Official Donation Acknowledgement & Certificate", html,
		Attachment{Filename: fmt.Sprintf("Donation-Certificate-%s.pdf", certificateID), Content: pdf})
}

// SendReply emails an admin-written support response to a contact-form sender.
func (c *SMTPClient) SendReply(toEmail, name, message string) error {
	return c.sendMail(supportName, toEmail, "Official Support Response", replyContent(name, message))
}

// SendVolunteerStatus emails a volunteer their application decision. Subject
// and body vary by Approved/Rejected/other.
func (c *SMTPClient) SendVolunteerStatus(toEmail, name, status string) error {
	var subject string
	switch status {
	case "Approved":
		subject = "Volunteer Application Approved"
	case "Rejected":
		subject = "Volunteer Application Update"
	default:
		subject = "Volunteer Application Pending"
	}
	return c.sendMail(senderName, toEmail, subject, volunteerStatusContent(name, status))
}

// formatAmount renders 499 as "499", 499.5 as "499.5".
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
