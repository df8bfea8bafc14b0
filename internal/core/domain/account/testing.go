package account

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"

	c "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/common"
)

type FakeAccountRepository struct {
	Accounts    []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeAccountRepository() *FakeAccountRepository {
	return &FakeAccountRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeAccountRepository) Create(ctx context.Context, input CreateAccountInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create account %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Accounts {
		if c.NewEmail(string(existing.Email)) == c.NewEmail(string(input.Email)) {
			return existing, ErrEmailAlreadyExists
		}
		maxID = existing.ID
	}
	a = Account{
		ID:           maxID + 1,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}

func (r *FakeAccountRepository) GetByEmail(ctx context.Context, email c.Email) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Accounts {
		if existing.Email == email {
			return existing, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

type FakePasswordHasher struct {
	ReturnError bool
}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	if h.ReturnError {
		return PasswordHash(""), fmt.Errorf("could not hash password")
	}
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeWelcomeEmailSender struct {
	Sent        []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeWelcomeEmailSender() *FakeWelcomeEmailSender {
	return &FakeWelcomeEmailSender{}
}

func (s *FakeWelcomeEmailSender) SendWelcomeEmail(ctx context.Context, account Account) error {
	if s.ReturnError {
		return fmt.Errorf("could not send welcome email for account %v", account)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, account)
	return nil
}

func (s *FakeWelcomeEmailSender) SentCount() int {
	return len(s.Sent)
}

func (s *FakeWelcomeEmailSender) LastSentTo() Account {
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}

type FakeEventPublisher struct {
	Published   []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeEventPublisher() *FakeEventPublisher {
	return &FakeEventPublisher{}
}

func (p *FakeEventPublisher) PublishAccountCreated(ctx context.Context, account Account) error {
	if p.ReturnError {
		return fmt.Errorf("could not publish created event for account %v", account)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, account)
	return nil
}

func (p *FakeEventPublisher) PublishedCount() int {
	return len(p.Published)
}
