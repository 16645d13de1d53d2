package emails

import "fmt"

// certificateContent is the body of the donation acknowledgement email. The
// certificate PDF itself rides along as an attachment.
func certificateContent(name, amount, certificateID, verifyURL string) string {
	return EmailLayout(fmt.Sprintf(`
    <h1>Thank You for Your Generosity, %s!</h1>
    <p>We have received your donation of <strong>&#8377;%s</strong> to the <strong>Thannmanngaadi Foundation</strong>. Your support directly funds our programs on the ground.</p>
    <p>Your official Certificate of Appreciation is attached to this email as a PDF. The certificate carries ID <strong>%s</strong> and can be verified at any time:</p>
    <center>
      <a href="%s" class="tmf-button">Verify Certificate</a>
    </center>
    <p style="margin-top: 20px; font-size: 14px; color: #666;">
      Please retain this certificate for your records. If you opted for tax benefits, our team will follow up with the required receipts.
    </p>
    <p>&mdash; The Thannmanngaadi Foundation Team</p>
`, EscapeHTML(name), EscapeHTML(amount), EscapeHTML(certificateID), verifyURL))
}

// replyContent is the body of an admin reply to a contact-form message.
func replyContent(name, message string) string {
	return EmailLayout(fmt.Sprintf(`
    <h1>Response to Your Message</h1>
    <p>Dear %s,</p>
    <p>Thank you for reaching out to the <strong>Thannmanngaadi Foundation</strong>. Here is our response to your message:</p>
    <div style="background-color: #EFF6FF; border-left: 4px solid #1D4ED8; border-radius: 6px; padding: 16px 20px; margin-bottom: 24px;">
      <p style="margin: 0; white-space: pre-wrap;">%s</p>
    </div>
    <p style="font-size: 14px; color: #666;">
      If you have further questions, feel free to write to us again through the contact form on our website.
    </p>
    <p>&mdash; Thannmanngaadi Support</p>
`, EscapeHTML(name), EscapeHTML(message)))
}

// volunteerStatusContent varies heading and accent color with the decision,
// matching the admin dashboard's status palette.
func volunteerStatusContent(name, status string) string {
	var heading, color, body string
	switch status {
	case "Approved":
		heading = "🎉 Congratulations! Your application has been approved."
		color = "#16A34A"
		body = "We are thrilled to welcome you as a volunteer with the <strong>Thannmanngaadi Foundation</strong>. Our coordinator will reach out shortly with onboarding details and your first assignment."
	case "Rejected":
		heading = "An update on your volunteer application"
		color = "#DC2626"
		body = "After careful review, we are unable to take your application forward at this time. We genuinely appreciate your willingness to help and encourage you to apply again for future opportunities."
	default:
		heading = "Your volunteer application is under review"
		color = "#EA580C"
		body = "Thank you for applying to volunteer with the <strong>Thannmanngaadi Foundation</strong>. Your application is currently being reviewed and we will notify you as soon as a decision is made."
	}
	return EmailLayout(fmt.Sprintf(`
    <h1 style="color: %s;">%s</h1>
    <p>Dear %s,</p>
    <p>%s</p>
    <p>&mdash; The Thannmanngaadi Foundation Team</p>
`, color, heading, EscapeHTML(name), body))
}
