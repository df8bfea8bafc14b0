package response

import (
	"time"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
)

type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Account) FromDomainAccount(da account.Account) {
	a.ID = int64(da.ID)
	a.Name = da.Name
	a.Email = string(da.Email)
	a.CreatedAt = da.CreatedAt
}
