package account

import (
	"context"
	"time"

	c "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/common"
)

type CreateAccountInput struct {
	Name         string
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type AccountRepository interface {
	Create(ctx context.Context, input CreateAccountInput) (Account, error)
	GetByEmail(ctx context.Context, email c.Email) (Account, error)
}
