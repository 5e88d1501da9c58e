package firestore

import (
	"context"
	"log/slog"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type codeRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewCodeRepository creates the Firestore-backed pending code repository.
// Documents are keyed by the code, so Create is the uniqueness check.
func NewCodeRepository(client *fs.Client, logger *slog.Logger) repository.CodeRepository {
	return &codeRepository{
		client: client,
		logger: logger,
	}
}

func (repo *codeRepository) doc(code string) *fs.DocumentRef {
	return repo.client.Collection(pendingCodesCollection).Doc(code)
}

func (repo *codeRepository) CreateCode(ctx context.Context, code *entity.PendingCode) error {
	if _, err := repo.doc(code.Code).Create(ctx, toPendingCodeDoc(code)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrCodeTaken
		}

		return errors.Wrap(err, "failed to create pending code")
	}

	return nil
}

func (repo *codeRepository) FindCode(ctx context.Context, code string) (*entity.PendingCode, error) {
	snap, err := repo.doc(code).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to get pending code")
	}

	return decodePendingCode(snap)
}

// DeleteCode removes the entry only while familyID still holds it.
func (repo *codeRepository) DeleteCode(ctx context.Context, code string, familyID uuid.UUID) error {
	ref := repo.doc(code)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return nil
			}

			return errors.Wrap(err, "failed to read pending code")
		}

		pending, err := decodePendingCode(snap)
		if err != nil {
			return err
		}
		if pending.FamilyID != familyID {
			return nil
		}

		return tx.Delete(ref)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete pending code")
	}

	return nil
}

func (repo *codeRepository) FindExpiredCodes(ctx context.Context, now time.Time, limit int) ([]*entity.PendingCode, error) {
	query := repo.client.Collection(pendingCodesCollection).
		Where("expiresAt", "<=", now).
		OrderBy("expiresAt", fs.Asc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var expired []*entity.PendingCode
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query expired codes")
		}

		pending, err := decodePendingCode(snap)
		if err != nil {
			repo.logger.WarnContext(ctx, "Skipping malformed pending code",
				slog.String("code", snap.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		expired = append(expired, pending)
	}

	return expired, nil
}
