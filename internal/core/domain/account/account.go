package account

import (
	"fmt"
	"time"

	c "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/common"
	e "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/errors"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Account struct {
	ID           ID
	Name         string
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

func (a *Account) Validate() error {
	if a.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for account %d", a.ID))
	}
	if a.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for account %d", a.ID))
	}
	return nil
}
