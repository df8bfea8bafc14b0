package signup

import (
	"context"
	"errors"
	"testing"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type testEventPublishingSuite struct {
	suite.Suite
	Logger    *logging.FakeLogger
	Publisher *account.FakeEventPublisher
	Service   services.Service[Input, Result]
}

func (suite *testEventPublishingSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Publisher = account.NewFakeEventPublisher()
	suite.Service = NewWithAccountCreatedPublishing(
		suite.Logger,
		suite.Publisher,
		newStubSignUpService(Result{Account: createdAccount()}, nil),
	)
}

func TestAccountCreatedPublishingService(t *testing.T) {
	suite.Run(t, new(testEventPublishingSuite))
}

func (suite *testEventPublishingSuite) TestEventPublished() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(1, suite.Publisher.PublishedCount())
	assert.Equal(result.Account, suite.Publisher.Published[0])
}

func (suite *testEventPublishingSuite) TestSignUpServiceError() {
	service := NewWithAccountCreatedPublishing(
		suite.Logger,
		suite.Publisher,
		newStubSignUpService(Result{}, errTest),
	)
	ctx := context.Background()
	_, err := service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, errTest))
	assert.Equal(0, suite.Publisher.PublishedCount())
}

func (suite *testEventPublishingSuite) TestPublisherErrorDoesNotFailSignUp() {
	suite.Publisher.ReturnError = true

	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(createdAccount(), result.Account)
	assert.Equal(1, suite.Logger.LoggedCount(logging.ERROR))
}
