package email

import (
	"context"
	"encoding/json"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type WelcomeEmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender          string
	welcomeTemplate string
}

func NewWelcomeEmailSender(
	awsConfig aws.Config,
	sender string,
	welcomeTemplate string,
) *WelcomeEmailSender {
	return &WelcomeEmailSender{
		ses:             ses.NewFromConfig(awsConfig),
		sender:          sender,
		welcomeTemplate: welcomeTemplate,
	}
}

func (s *WelcomeEmailSender) SendWelcomeEmail(ctx context.Context, a account.Account) error {
	templateParamsBytes, err := json.Marshal(welcomeTemplateParams{Name: a.Name})
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	email := string(a.Email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &s.welcomeTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type welcomeTemplateParams struct {
	Name string `json:"name"`
}
