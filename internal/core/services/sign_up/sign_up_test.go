package signup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	c "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/common"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/services"
	"github.com/stretchr/testify/suite"
)

const (
	NAME         = "Test Account"
	EMAIL        = c.Email("test@test.test")
	RAW_PASSWORD = account.RawPassword("test-password")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	AccountRepository *account.FakeAccountRepository
	PasswordHasher    *account.FakePasswordHasher
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.AccountRepository = account.NewFakeAccountRepository()
	suite.PasswordHasher = account.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.AccountRepository,
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)
}

func TestSignUpService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(account.ID(0), result.Account.ID)
	assert.Equal(NAME, result.Account.Name)
	assert.Equal(EMAIL, result.Account.Email)
	assert.Equal(NOW, result.Account.CreatedAt)
	assert.NotEqual(string(RAW_PASSWORD), string(result.Account.PasswordHash))
	assert.True(suite.PasswordHasher.ValidatePassword(RAW_PASSWORD, result.Account.PasswordHash))
	assert.Len(suite.AccountRepository.Accounts, 1)
}

func (suite *testSuite) TestEmailIsLowercasedBeforeStoring() {
	ctx := context.Background()
	result, err := suite.Service.Run(
		ctx,
		Input{Name: NAME, Email: c.Email("Test@Test.Test"), Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(EMAIL, result.Account.Email)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	ctx := context.Background()
	suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	_, err := suite.Service.Run(ctx, Input{Name: "Other Account", Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, account.ErrEmailAlreadyExists))
	assert.Len(suite.AccountRepository.Accounts, 1)
}

func (suite *testSuite) TestAccountRepositoryError() {
	suite.AccountRepository.ReturnError = true

	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(1, suite.Logger.LoggedCount(logging.ERROR))
}

func (suite *testSuite) TestPasswordHasherError() {
	suite.PasswordHasher.ReturnError = true

	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Len(suite.AccountRepository.Accounts, 0)
}
