package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockAuditRepo  *MockAuditRepository
	service        portssvc.AuditSvcFacade
	organizationID string
	actorID        string
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewAuditService(suite.mockAuditRepo)
	suite.organizationID = uuid.NewString()
	suite.actorID = uuid.NewString()
}

func (suite *AuditServiceTestSuite) TestRecord_FillsDefaults() {
	ctx := context.Background()
	record := domain.AuditRecord{
		OrganizationID: suite.organizationID,
		ActorID:        suite.actorID,
		Action:         domain.ActionCreate,
		EntityType:     domain.EntityJournalEntry,
		EntityID:       uuid.NewString(),
	}

	suite.mockAuditRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r domain.AuditRecord) bool {
		return r.RecordID != "" && !r.RecordedAt.IsZero() && r.Severity == domain.SeverityInfo
	})).Return(nil).Once()

	err := suite.service.Record(ctx, record)

	suite.Require().NoError(err)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestRecord_KeepsProvidedFields() {
	ctx := context.Background()
	recordedAt := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	record := domain.AuditRecord{
		RecordID:       uuid.NewString(),
		OrganizationID: suite.organizationID,
		ActorID:        suite.actorID,
		Action:         domain.ActionLock,
		EntityType:     domain.EntityTransactionLock,
		EntityID:       uuid.NewString(),
		Severity:       domain.SeverityWarning,
		RecordedAt:     recordedAt,
	}

	suite.mockAuditRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r domain.AuditRecord) bool {
		return r.RecordID == record.RecordID && r.RecordedAt.Equal(recordedAt) && r.Severity == domain.SeverityWarning
	})).Return(nil).Once()

	err := suite.service.Record(ctx, record)

	suite.Require().NoError(err)
}

func (suite *AuditServiceTestSuite) TestListRecords_DefaultLimit() {
	ctx := context.Background()
	filter := portsrepo.AuditRecordFilter{EntityType: domain.EntityJournalEntry}
	expected := []domain.AuditRecord{{RecordID: uuid.NewString()}}

	suite.mockAuditRepo.On("ListRecords", ctx, suite.organizationID, filter, 50, 0).Return(expected, nil).Once()

	records, err := suite.service.ListRecords(ctx, suite.organizationID, filter, 0, 0)

	suite.Require().NoError(err)
	suite.Len(records, 1)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestNewAuditRecord_SerializesStates() {
	before := map[string]string{"status": "draft"}
	after := map[string]string{"status": "posted"}

	rec, err := services.NewAuditRecord(suite.organizationID, suite.actorID, domain.ActionPost, domain.EntityJournalEntry, uuid.NewString(), before, after)

	suite.Require().NoError(err)
	suite.NotEmpty(rec.RecordID)
	suite.Equal(domain.ActionPost, rec.Action)
	suite.JSONEq(`{"status":"draft"}`, string(rec.Before))
	suite.JSONEq(`{"status":"posted"}`, string(rec.After))
}

func (suite *AuditServiceTestSuite) TestNewAuditRecord_NilStatesStayEmpty() {
	rec, err := services.NewAuditRecord(suite.organizationID, suite.actorID, domain.ActionCreate, domain.EntityJournalEntry, uuid.NewString(), nil, map[string]string{"status": "draft"})

	suite.Require().NoError(err)
	suite.Nil(rec.Before)
	suite.NotNil(rec.After)
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
