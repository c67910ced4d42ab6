package email

import "fmt"

// OrganizationInvite builds the invitation email sent when a user is added
// to an organization.
func OrganizationInvite(to, orgName, inviterName, joinURL string) Message {
	subject := fmt.Sprintf("You've been invited to join %s", orgName)
	text := fmt.Sprintf(
		"%s has invited you to join %s.\n\nAccept the invitation here: %s\n",
		inviterName, orgName, joinURL,
	)
	html := fmt.Sprintf(
		`<p>%s has invited you to join <strong>%s</strong>.</p><p><a href="%s">Accept the invitation</a></p>`,
		inviterName, orgName, joinURL,
	)
	return Message{To: to, Subject: subject, TextBody: text, HTMLBody: html}
}
