package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"lifeline/config"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

const (
	// Codes are 0000-9999; leading zeros are part of the code.
	codeSpace = 10000

	// CreateCode races with other issuers between the free check and insert.
	issueRaceRetries = 3

	purgeBatchSize = 100
)

type codeRegistry struct {
	codeRepo    repository.CodeRepository
	familyRepo  repository.FamilyRepository
	logger      *slog.Logger
	maxAttempts int
	ttl         time.Duration
	intn        func(n int) int
	now         func() time.Time
}

// NewCodeRegistry creates the connection code registry
func NewCodeRegistry(
	codeRepo repository.CodeRepository,
	familyRepo repository.FamilyRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CodeRegistryUsecase {
	return &codeRegistry{
		codeRepo:    codeRepo,
		familyRepo:  familyRepo,
		logger:      logger,
		maxAttempts: cfg.Pairing.MaxCodeAttempts,
		ttl:         cfg.Pairing.HandshakeTimeout,
		intn:        rand.IntN,
		now:         time.Now,
	}
}

// GenerateCode draws uniformly from the code space until it hits a free code
func (r *codeRegistry) GenerateCode(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		code := fmt.Sprintf("%04d", r.intn(codeSpace))

		taken, err := r.isTaken(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}

		r.logger.Debug("Connection code collision", slog.String("code", code), slog.Int("attempt", attempt))
	}

	r.logger.Error("Connection code space exhausted", slog.Int("attempts", r.maxAttempts))

	return "", domainerrors.ErrCodeSpaceExhausted.WithDetails(fmt.Sprintf("no free code after %d attempts", r.maxAttempts))
}

// isTaken reports whether code is held by an open handshake or a paired family.
// A stale expired entry is reclaimed on the way.
func (r *codeRegistry) isTaken(ctx context.Context, code string) (bool, error) {
	pending, err := r.codeRepo.FindCode(ctx, code)
	switch {
	case err == nil && !pending.IsExpired(r.now()):
		return true, nil
	case err == nil:
		if err := r.reclaim(ctx, pending); err != nil {
			return false, err
		}
	case !errors.Is(err, repository.ErrCodeNotFound):
		return false, domainerrors.NewPersistenceError(err, "find pending code")
	}

	_, err = r.familyRepo.FindPairedFamilyByCode(ctx, code)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrFamilyNotFound):
		return false, nil
	default:
		return false, domainerrors.NewPersistenceError(err, "find paired family by code")
	}
}

// IssueCode generates a free code and stores its pending entry
func (r *codeRegistry) IssueCode(ctx context.Context, familyID uuid.UUID) (*entity.PendingCode, error) {
	for range issueRaceRetries {
		code, err := r.GenerateCode(ctx)
		if err != nil {
			return nil, err
		}

		now := r.now()
		pending := &entity.PendingCode{
			Code:      code,
			FamilyID:  familyID,
			CreatedAt: now,
			ExpiresAt: now.Add(r.ttl),
		}

		err = r.codeRepo.CreateCode(ctx, pending)
		if err == nil {
			return pending, nil
		}
		if !errors.Is(err, repository.ErrCodeTaken) {
			return nil, domainerrors.NewPersistenceError(err, "create pending code")
		}

		r.logger.Warn("Connection code taken concurrently, retrying", slog.String("code", code))
	}

	return nil, domainerrors.ErrCodeSpaceExhausted.WithDetails("lost every issue race")
}

// Lookup resolves code through the open handshake first, then paired families
func (r *codeRegistry) Lookup(ctx context.Context, code string) (*entity.Family, error) {
	pending, err := r.codeRepo.FindCode(ctx, code)
	switch {
	case err == nil && !pending.IsExpired(r.now()):
		family, err := r.familyRepo.FindFamilyByID(ctx, pending.FamilyID)
		if errors.Is(err, repository.ErrFamilyNotFound) {
			return nil, domainerrors.ErrCodeNotFound
		}
		if err != nil {
			return nil, domainerrors.NewPersistenceError(err, "find family for code")
		}

		return family, nil
	case err != nil && !errors.Is(err, repository.ErrCodeNotFound):
		return nil, domainerrors.NewPersistenceError(err, "find pending code")
	}

	family, err := r.familyRepo.FindPairedFamilyByCode(ctx, code)
	if errors.Is(err, repository.ErrFamilyNotFound) {
		return nil, domainerrors.ErrCodeNotFound
	}
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "find paired family by code")
	}

	return family, nil
}

// Expire deletes familyID's pending entry. The repository checks the owner,
// so a code reissued in the meantime survives.
func (r *codeRegistry) Expire(ctx context.Context, code string, familyID uuid.UUID) error {
	if err := r.codeRepo.DeleteCode(ctx, code, familyID); err != nil {
		return domainerrors.NewPersistenceError(err, "delete pending code")
	}

	return nil
}

// PurgeExpired sweeps expired entries left behind by primaries that never
// finished their handshake
func (r *codeRegistry) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	expired, err := r.codeRepo.FindExpiredCodes(ctx, now, purgeBatchSize)
	if err != nil {
		return 0, domainerrors.NewPersistenceError(err, "find expired codes")
	}

	purged := 0
	for _, pending := range expired {
		if err := r.reclaim(ctx, pending); err != nil {
			r.logger.Warn("Failed to purge expired code",
				slog.String("code", pending.Code),
				slog.Any("error", err),
			)

			continue
		}
		purged++
	}

	return purged, nil
}

// reclaim drops an expired entry and the unpaired family behind it.
func (r *codeRegistry) reclaim(ctx context.Context, pending *entity.PendingCode) error {
	if _, err := r.familyRepo.DeleteUnpairedFamily(ctx, pending.FamilyID); err != nil {
		return domainerrors.NewPersistenceError(err, "delete unpaired family")
	}

	return r.Expire(ctx, pending.Code, pending.FamilyID)
}
