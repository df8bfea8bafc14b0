package signup

import (
	"context"
	"errors"
	"time"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	c "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/common"
	e "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/errors"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/services"
)

type Input struct {
	Name     string
	Email    c.Email
	Password account.RawPassword
}

type Result struct {
	Account account.Account
}

type service struct {
	log               logging.Logger
	accountRepository account.AccountRepository
	passwordHasher    account.PasswordHasher
	now               func() time.Time
}

func New(
	log logging.Logger,
	accountRepository account.AccountRepository,
	passwordHasher account.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		passwordHasher:    passwordHasher,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	createdAccount, err := s.accountRepository.Create(ctx, account.CreateAccountInput{
		Name:         input.Name,
		Email:        c.NewEmail(string(input.Email)),
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrEmailAlreadyExists) {
		s.log.Info(
			ctx,
			"Account with the email already exists.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new account.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "New account has been created.", logging.Entry("account", createdAccount))
	return Result{Account: createdAccount}, nil
}
