package account

import "context"

type EventPublisher interface {
	PublishAccountCreated(ctx context.Context, account Account) error
}
