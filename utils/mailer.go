package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer sends plain-text email through SES.
type Mailer struct {
	client *ses.Client
	from   string
	admin  string
}

func NewMailer(ctx context.Context, region, from, admin string) (*Mailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return &Mailer{client: ses.NewFromConfig(cfg), from: from, admin: admin}, nil
}

func (m *Mailer) send(to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.from),
	}

	_, err := m.client.SendEmail(context.TODO(), input)
	if err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// NotifyContact forwards a contact-form submission to the admin inbox.
func (m *Mailer) NotifyContact(name, email, subject, message string) error {
	body := fmt.Sprintf("New contact message from %s <%s>:\n\n%s", name, email, message)
	return m.send(m.admin, "[FitFood contact] "+subject, body)
}
