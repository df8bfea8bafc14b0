package signup

import (
	"context"
	"errors"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	e "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/errors"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/services"
)

type serviceWithWelcomeEmailSending struct {
	log    logging.Logger
	sender account.WelcomeEmailSender
	inner  services.Service[Input, Result]
}

func NewWithWelcomeEmailSending(
	log logging.Logger,
	sender account.WelcomeEmailSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithWelcomeEmailSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

// Run sends the welcome email after a successful sign up. The account is
// already created at that point, so a send failure is logged but does not
// fail the sign up.
func (s *serviceWithWelcomeEmailSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending welcome email.", logging.Entry("err", err))
		return result, err
	}

	sendErr := s.sender.SendWelcomeEmail(ctx, result.Account)
	if sendErr != nil {
		s.log.Error(
			ctx,
			"Could not send welcome email.",
			logging.Entry("account", result.Account),
			logging.Entry("err", sendErr),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Welcome email has been sent.",
		logging.Entry("accountId", result.Account.ID),
	)
	return result, nil
}
