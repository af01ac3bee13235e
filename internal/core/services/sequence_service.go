package services

import (
	"context"
	"log/slog"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/middleware"
)

// sequenceService hands out formatted document references backed by the
// atomic counter repository. Numbering correctness lives entirely in the
// single increment-and-read statement; this layer only formats and reports.
type sequenceService struct {
	sequenceRepo portsrepo.SequenceRepositoryFacade
}

// NewSequenceService creates a new SequenceSvcFacade.
func NewSequenceService(sequenceRepo portsrepo.SequenceRepositoryFacade) portssvc.SequenceSvcFacade {
	return &sequenceService{sequenceRepo: sequenceRepo}
}

var _ portssvc.SequenceSvcFacade = (*sequenceService)(nil)

func (s *sequenceService) NextNumber(ctx context.Context, organizationID string, kind domain.DocumentKind) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	n, err := s.sequenceRepo.NextValue(ctx, organizationID, kind)
	if err != nil {
		logger.Error("Failed to advance document sequence",
			slog.String("organization_id", organizationID),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()))
		// Abort and let the caller retry. Falling back to a guessed number
		// would break uniqueness.
		return "", &apperrors.SequenceUnavailableError{Kind: string(kind), Err: err}
	}

	return kind.FormatNumber(n), nil
}
