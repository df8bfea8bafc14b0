package account

import "context"

type WelcomeEmailSender interface {
	SendWelcomeEmail(ctx context.Context, account Account) error
}
