package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SequenceServiceTestSuite struct {
	suite.Suite
	mockSequenceRepo *MockSequenceRepository
	service          portssvc.SequenceSvcFacade
	organizationID   string
}

func (suite *SequenceServiceTestSuite) SetupTest() {
	suite.mockSequenceRepo = new(MockSequenceRepository)
	suite.service = services.NewSequenceService(suite.mockSequenceRepo)
	suite.organizationID = uuid.NewString()
}

func (suite *SequenceServiceTestSuite) TestNextNumber_FormatsJournalNumber() {
	ctx := context.Background()
	suite.mockSequenceRepo.On("NextValue", ctx, suite.organizationID, domain.KindJournal).Return(int64(42), nil).Once()

	number, err := suite.service.NextNumber(ctx, suite.organizationID, domain.KindJournal)

	suite.Require().NoError(err)
	suite.Equal("JE-000042", number)
	suite.mockSequenceRepo.AssertExpectations(suite.T())
}

func (suite *SequenceServiceTestSuite) TestNextNumber_FormatsAdjustmentNumber() {
	ctx := context.Background()
	suite.mockSequenceRepo.On("NextValue", ctx, suite.organizationID, domain.KindCurrencyAdjustment).Return(int64(7), nil).Once()

	number, err := suite.service.NextNumber(ctx, suite.organizationID, domain.KindCurrencyAdjustment)

	suite.Require().NoError(err)
	suite.Equal("CA-000007", number)
}

func (suite *SequenceServiceTestSuite) TestNextNumber_RepositoryFailure() {
	ctx := context.Background()
	repoErr := errors.New("connection reset")
	suite.mockSequenceRepo.On("NextValue", ctx, suite.organizationID, domain.KindJournal).Return(int64(0), repoErr).Once()

	number, err := suite.service.NextNumber(ctx, suite.organizationID, domain.KindJournal)

	suite.Require().Error(err)
	suite.Empty(number)
	var target *apperrors.SequenceUnavailableError
	suite.Require().ErrorAs(err, &target)
	suite.Equal("journal", target.Kind)
	suite.ErrorIs(err, repoErr)
}

func TestSequenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceServiceTestSuite))
}
