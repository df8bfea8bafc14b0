package services

import (
	"github.com/Shouganaii/tdd-clean-go-api/internal/app/deps"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/services"
	signup "github.com/Shouganaii/tdd-clean-go-api/internal/core/services/sign_up"
)

type Services struct {
	SignUp services.Service[signup.Input, signup.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.NewWithWelcomeEmailSending(
		deps.Logger,
		deps.WelcomeEmailSender,
		signup.NewWithAccountCreatedPublishing(
			deps.Logger,
			deps.AccountCreatedPublisher,
			signup.New(
				deps.Logger,
				deps.AccountRepository,
				deps.PasswordHasher,
				deps.Now,
			),
		),
	)

	return s
}
