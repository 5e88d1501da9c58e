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
)

// Firestore caps the values of an "in" filter.
const maxInFilterValues = 30

type deviceRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewDeviceRepository creates the Firestore-backed device repository
func NewDeviceRepository(client *fs.Client, logger *slog.Logger) repository.DeviceRepository {
	return &deviceRepository{
		client: client,
		logger: logger,
	}
}

func (repo *deviceRepository) collection() *fs.CollectionRef {
	return repo.client.Collection(devicesCollection)
}

// UpsertDevice refreshes an existing registration for the same connection
// code and device, or creates one. Without a device ID the token identifies it.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.Device) (*entity.Device, error) {
	query := repo.collection().Where("connectionCode", "==", device.ConnectionCode)
	if device.DeviceID != "" {
		query = query.Where("deviceId", "==", device.DeviceID)
	} else {
		query = query.Where("fcmToken", "==", device.Token)
	}
	query = query.Limit(1)

	var result *entity.Device
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		snaps, err := tx.Documents(query).GetAll()
		if err != nil {
			return errors.Wrap(err, "failed to query device registration")
		}

		stored := *device
		if len(snaps) > 0 {
			existing, err := decodeDevice(snaps[0])
			if err != nil {
				return err
			}
			stored.ID = existing.ID
			stored.CreatedAt = existing.CreatedAt
		}

		result = &stored

		return tx.Set(repo.collection().Doc(stored.ID.String()), toDeviceDoc(&stored))
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	snap, err := repo.collection().Doc(id.String()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to get device")
	}

	return decodeDevice(snap)
}

func (repo *deviceRepository) FindDevicesByConnectionCode(ctx context.Context, code string) ([]*entity.Device, error) {
	snaps, err := repo.collection().Where("connectionCode", "==", code).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query devices")
	}

	devices := make([]*entity.Device, 0, len(snaps))
	for _, snap := range snaps {
		device, err := decodeDevice(snap)
		if err != nil {
			repo.logger.WarnContext(ctx, "Skipping malformed device document",
				slog.String("doc_id", snap.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		devices = append(devices, device)
	}

	return devices, nil
}

func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	ref := repo.collection().Doc(id.String())

	// Delete with an Exists precondition reports missing documents as NotFound.
	if _, err := ref.Delete(ctx, fs.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// DeleteDevicesByToken removes every registration carrying one of tokens.
func (repo *deviceRepository) DeleteDevicesByToken(ctx context.Context, tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	var refs []*fs.DocumentRef
	for start := 0; start < len(tokens); start += maxInFilterValues {
		chunk := tokens[start:min(start+maxInFilterValues, len(tokens))]

		iter := repo.collection().Where("fcmToken", "in", chunk).Documents(ctx)
		for {
			snap, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				break
			}
			if err != nil {
				iter.Stop()

				return 0, errors.Wrap(err, "failed to query devices by token")
			}
			refs = append(refs, snap.Ref)
		}
		iter.Stop()
	}

	if len(refs) == 0 {
		return 0, nil
	}

	writer := repo.client.BulkWriter(ctx)
	jobs := make([]*fs.BulkWriterJob, 0, len(refs))
	for _, ref := range refs {
		job, err := writer.Delete(ref)
		if err != nil {
			writer.End()

			return 0, errors.Wrap(err, "failed to enqueue device delete")
		}
		jobs = append(jobs, job)
	}
	writer.End()

	removed := 0
	var errs []error
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			errs = append(errs, err)

			continue
		}
		removed++
	}

	if len(errs) > 0 {
		return removed, errors.Wrap(errors.Join(errs...), "failed to delete some devices")
	}

	return removed, nil
}
