package signup

import (
	"context"
	"errors"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	e "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/errors"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/services"
)

type serviceWithAccountCreatedPublishing struct {
	log       logging.Logger
	publisher account.EventPublisher
	inner     services.Service[Input, Result]
}

func NewWithAccountCreatedPublishing(
	log logging.Logger,
	publisher account.EventPublisher,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithAccountCreatedPublishing{
		log:       log,
		publisher: publisher,
		inner:     inner,
	}
}

// Run publishes the account created event after a successful sign up.
// Publishing is best effort, a broker failure does not fail the sign up.
func (s *serviceWithAccountCreatedPublishing) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip publishing account created event.", logging.Entry("err", err))
		return result, err
	}

	publishErr := s.publisher.PublishAccountCreated(ctx, result.Account)
	if publishErr != nil {
		s.log.Error(
			ctx,
			"Could not publish account created event.",
			logging.Entry("account", result.Account),
			logging.Entry("err", publishErr),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Account created event has been published.",
		logging.Entry("accountId", result.Account.ID),
	)
	return result, nil
}
