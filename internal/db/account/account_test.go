package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	c "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/common"
	"github.com/Shouganaii/tdd-clean-go-api/internal/db"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	NAME          = "Test Account"
	EMAIL         = c.Email("test@test.test")
	PASSWORD_HASH = account.PasswordHash("test-password-hash")
)

var NOW time.Time = time.Date(2023, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxAccountRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxAccountRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxAccountRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createAccountInput() account.CreateAccountInput {
	return account.CreateAccountInput{
		Name:         NAME,
		Email:        EMAIL,
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	}
}

func (suite *testSuite) TestCreateSuccess() {
	a, err := suite.repo.Create(context.Background(), suite.createAccountInput())

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(account.ID(0), a.ID)
	assert.Equal(NAME, a.Name)
	assert.Equal(EMAIL, a.Email)
	assert.Equal(PASSWORD_HASH, a.PasswordHash)
	assert.True(NOW.Equal(a.CreatedAt))
}

func (suite *testSuite) TestCreateDuplicateEmail() {
	ctx := context.Background()
	_, err := suite.repo.Create(ctx, suite.createAccountInput())
	suite.Require().Nil(err)

	_, err = suite.repo.Create(ctx, suite.createAccountInput())

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, account.ErrEmailAlreadyExists))
}

func (suite *testSuite) TestCreateDuplicateEmailDifferentCase() {
	ctx := context.Background()
	_, err := suite.repo.Create(ctx, suite.createAccountInput())
	suite.Require().Nil(err)

	input := suite.createAccountInput()
	input.Email = c.Email("TEST@test.test")
	_, err = suite.repo.Create(ctx, input)

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, account.ErrEmailAlreadyExists))
}

func (suite *testSuite) TestGetByEmail() {
	ctx := context.Background()
	created, err := suite.repo.Create(ctx, suite.createAccountInput())
	suite.Require().Nil(err)

	a, err := suite.repo.GetByEmail(ctx, EMAIL)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, a.ID)
	assert.Equal(created.Email, a.Email)
	assert.Equal(created.PasswordHash, a.PasswordHash)
}

func (suite *testSuite) TestGetByEmailDoesNotExist() {
	_, err := suite.repo.GetByEmail(context.Background(), c.Email("missing@test.test"))

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}
