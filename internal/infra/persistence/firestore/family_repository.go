package firestore

import (
	"context"
	"log/slog"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type familyRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewFamilyRepository creates the Firestore-backed family repository
func NewFamilyRepository(client *fs.Client, logger *slog.Logger) repository.FamilyRepository {
	return &familyRepository{
		client: client,
		logger: logger,
	}
}

func (repo *familyRepository) doc(id uuid.UUID) *fs.DocumentRef {
	return repo.client.Collection(familiesCollection).Doc(id.String())
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// CreateFamily persists a new family document. It fails if the ID is taken.
func (repo *familyRepository) CreateFamily(ctx context.Context, family *entity.Family) error {
	if _, err := repo.doc(family.ID).Create(ctx, toFamilyDoc(family)); err != nil {
		return errors.Wrap(err, "failed to create family")
	}

	return nil
}

// FindFamilyByID retrieves a family by ID.
func (repo *familyRepository) FindFamilyByID(ctx context.Context, id uuid.UUID) (*entity.Family, error) {
	snap, err := repo.doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrFamilyNotFound
		}

		return nil, errors.Wrap(err, "failed to get family")
	}

	return decodeFamily(snap)
}

// FindPairedFamilyByCode retrieves the approved family holding code.
func (repo *familyRepository) FindPairedFamilyByCode(ctx context.Context, code string) (*entity.Family, error) {
	iter := repo.client.Collection(familiesCollection).
		Where("connectionCode", "==", code).
		Where("approvalState", "==", string(entity.ApprovalApproved)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrFamilyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query family by code")
	}

	return decodeFamily(snap)
}

// FindMonitoredFamilies returns every family with monitoring enabled.
// Undecodable documents are logged and skipped.
func (repo *familyRepository) FindMonitoredFamilies(ctx context.Context) ([]*entity.Family, error) {
	iter := repo.client.Collection(familiesCollection).
		Where("settings.monitoringEnabled", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var families []*entity.Family
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query monitored families")
		}

		family, err := decodeFamily(snap)
		if err != nil {
			repo.logger.WarnContext(ctx, "Skipping malformed family document",
				slog.String("doc_id", snap.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		families = append(families, family)
	}

	return families, nil
}

// UpdateFamily runs mutate inside a Firestore transaction.
func (repo *familyRepository) UpdateFamily(ctx context.Context, id uuid.UUID, mutate repository.FamilyMutation) (*entity.Family, error) {
	ref := repo.doc(id)

	var result *entity.Family
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrFamilyNotFound
			}

			return errors.Wrap(err, "failed to read family")
		}

		family, err := decodeFamily(snap)
		if err != nil {
			return err
		}

		if err := mutate(family); err != nil {
			if errors.Is(err, repository.ErrSkipUpdate) {
				result = family

				return nil
			}

			return err
		}

		result = family

		return tx.Set(ref, toFamilyDoc(family))
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateSettings merges the settings field only.
func (repo *familyRepository) UpdateSettings(ctx context.Context, id uuid.UUID, settings entity.MonitorSettings) error {
	_, err := repo.doc(id).Update(ctx, []fs.Update{
		{Path: "settings", Value: toSettingsDoc(settings)},
		{Path: "updatedAt", Value: fs.ServerTimestamp},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrFamilyNotFound
		}

		return errors.Wrap(err, "failed to update settings")
	}

	return nil
}

// UpdateLocation merges the lastLocation field only.
func (repo *familyRepository) UpdateLocation(ctx context.Context, id uuid.UUID, location entity.Location) error {
	_, err := repo.doc(id).Update(ctx, []fs.Update{
		{Path: "lastLocation", Value: locationDoc{Latitude: location.Latitude, Longitude: location.Longitude, At: location.At}},
		{Path: "updatedAt", Value: fs.ServerTimestamp},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrFamilyNotFound
		}

		return errors.Wrap(err, "failed to update location")
	}

	return nil
}

// DeleteUnpairedFamily deletes the family in a transaction unless a watcher
// approved it in the meantime.
func (repo *familyRepository) DeleteUnpairedFamily(ctx context.Context, id uuid.UUID) (bool, error) {
	ref := repo.doc(id)

	var deleted bool
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		deleted = false

		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return nil
			}

			return errors.Wrap(err, "failed to read family")
		}

		var doc familyDoc
		if err := snap.DataTo(&doc); err != nil {
			return errors.Wrap(err, "decode family")
		}
		if entity.ApprovalState(doc.ApprovalState) == entity.ApprovalApproved {
			return nil
		}

		deleted = true

		return tx.Delete(ref)
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

// WatchApproval streams document snapshots and reports approval changes.
func (repo *familyRepository) WatchApproval(ctx context.Context, id uuid.UUID, onChange func(entity.ApprovalState)) error {
	snapshots := repo.doc(id).Snapshots(ctx)
	defer snapshots.Stop()

	var last entity.ApprovalState
	for {
		snap, err := snapshots.Next()
		if err != nil {
			if ctx.Err() != nil || status.Code(err) == codes.Canceled || errors.Is(err, iterator.Done) {
				return nil
			}

			return errors.Wrap(err, "approval snapshot stream")
		}

		if !snap.Exists() {
			return repository.ErrFamilyNotFound
		}

		var doc familyDoc
		if err := snap.DataTo(&doc); err != nil {
			return errors.Wrap(err, "decode family")
		}

		state := entity.ApprovalState(doc.ApprovalState)
		if state == "" {
			state = entity.ApprovalUnset
		}
		if state != last {
			last = state
			onChange(state)
		}
	}
}

// FindApprovedCompanions lists the legacy companion sub-collection.
func (repo *familyRepository) FindApprovedCompanions(ctx context.Context, familyID uuid.UUID) ([]*entity.CompanionDevice, error) {
	iter := repo.doc(familyID).Collection(companionsCollection).
		Where("approved", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var companions []*entity.CompanionDevice
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query companions")
		}

		var doc companionDoc
		if err := snap.DataTo(&doc); err != nil {
			repo.logger.WarnContext(ctx, "Skipping malformed companion document",
				slog.String("doc_id", snap.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		companions = append(companions, &entity.CompanionDevice{Token: doc.Token, Approved: doc.Approved})
	}

	return companions, nil
}
