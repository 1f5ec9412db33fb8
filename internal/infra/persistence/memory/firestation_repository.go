package memory

import (
	"context"
	"log/slog"
	"slices"

	"alerts/internal/domain/entity"
	"alerts/internal/domain/repository"
)

type firestationRepository struct {
	store  *Store
	logger *slog.Logger
}

// NewFirestationRepository creates a fire-station mapping repository over
// the shared store.
func NewFirestationRepository(store *Store, logger *slog.Logger) repository.FirestationRepository {
	return &firestationRepository{
		store:  store,
		logger: logger,
	}
}

func (r *firestationRepository) ListFirestations(ctx context.Context) ([]entity.Firestation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return slices.Clone(r.store.firestations), nil
}

// FindFirestationsByAddress deduplicates by station number: the first
// mapping seen for each station wins, later raw duplicates are dropped.
func (r *firestationRepository) FindFirestationsByAddress(ctx context.Context, address string) ([]entity.Firestation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	firestations := make([]entity.Firestation, 0)
	seen := make(map[int64]bool)
	for _, firestation := range r.store.firestations {
		if firestation.Address == address && !seen[firestation.Station] {
			firestations = append(firestations, firestation)
			seen[firestation.Station] = true
		}
	}

	return firestations, nil
}

func (r *firestationRepository) FindFirestationsByNumberAndAddress(ctx context.Context, station int64, address string) ([]entity.Firestation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.findByNumberAndAddressLocked(station, address), nil
}

func (r *firestationRepository) findByNumberAndAddressLocked(station int64, address string) []entity.Firestation {
	firestations := make([]entity.Firestation, 0)
	for _, firestation := range r.store.firestations {
		if firestation.Matches(station, address) {
			firestations = append(firestations, firestation)
		}
	}

	return firestations
}

func (r *firestationRepository) AddFirestation(ctx context.Context, firestation entity.Firestation) (*entity.Firestation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.firestations {
		if existing.Matches(firestation.Station, firestation.Address) {
			r.logger.Warn("Firestation mapping already exists",
				slog.Int64("station", firestation.Station),
				slog.String("address", firestation.Address),
			)

			return nil, repository.ErrFirestationAlreadyExists
		}
	}

	r.store.firestations = append(r.store.firestations, firestation)

	return &firestation, nil
}

// UpdateFirestationNumber reassigns the whole (station, address) group at
// once. The unchanged check runs before the existence check, so an
// identical station number short-circuits even for unknown mappings.
func (r *firestationRepository) UpdateFirestationNumber(ctx context.Context, station int64, address string, newStation int64) ([]entity.Firestation, error) {
	if newStation == station {
		r.logger.Warn("Firestation mapping seems to be already updated",
			slog.Int64("station", station),
			slog.String("address", address),
		)

		return nil, repository.ErrFirestationUnchanged
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if len(r.findByNumberAndAddressLocked(station, address)) == 0 {
		r.logger.Warn("Firestation mapping to update does not exist",
			slog.Int64("station", station),
			slog.String("address", address),
		)

		return nil, repository.ErrFirestationNotFound
	}

	updated := make([]entity.Firestation, 0)
	for i, firestation := range r.store.firestations {
		if firestation.Matches(station, address) {
			r.store.firestations[i].Station = newStation
			updated = append(updated, r.store.firestations[i])
		}
	}

	return updated, nil
}

func (r *firestationRepository) DeleteFirestation(ctx context.Context, station int64, address string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if len(r.findByNumberAndAddressLocked(station, address)) == 0 {
		r.logger.Warn("Firestation mapping to delete does not exist",
			slog.Int64("station", station),
			slog.String("address", address),
		)

		return nil
	}

	kept := r.store.firestations[:0]
	for _, firestation := range r.store.firestations {
		if !firestation.Matches(station, address) {
			kept = append(kept, firestation)
		}
	}
	r.store.firestations = kept

	return nil
}
