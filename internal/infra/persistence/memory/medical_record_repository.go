package memory

import (
	"context"
	"log/slog"
	"slices"

	"alerts/internal/domain/entity"
	"alerts/internal/domain/repository"
)

type medicalRecordRepository struct {
	store  *Store
	logger *slog.Logger
}

// NewMedicalRecordRepository creates a medical record repository over the
// shared store.
func NewMedicalRecordRepository(store *Store, logger *slog.Logger) repository.MedicalRecordRepository {
	return &medicalRecordRepository{
		store:  store,
		logger: logger,
	}
}

func (r *medicalRecordRepository) ListMedicalRecords(ctx context.Context) ([]entity.MedicalRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return slices.Clone(r.store.medicalRecords), nil
}

func (r *medicalRecordRepository) FindMedicalRecordByName(ctx context.Context, firstName, lastName string) (*entity.MedicalRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, record := range r.store.medicalRecords {
		if record.HasName(firstName, lastName) {
			return &record, nil
		}
	}

	return nil, repository.ErrMedicalRecordNotFound
}

func (r *medicalRecordRepository) AddMedicalRecord(ctx context.Context, record entity.MedicalRecord) (*entity.MedicalRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.medicalRecords {
		if existing.HasName(record.FirstName, record.LastName) {
			r.logger.Warn("MedicalRecord already exists",
				slog.String("firstName", record.FirstName),
				slog.String("lastName", record.LastName),
			)

			return nil, repository.ErrMedicalRecordAlreadyExists
		}
	}

	// Absent birthdate defaults to today, absent lists to empty lists.
	if record.Birthdate.IsZero() {
		record.Birthdate = entity.DateOf(r.store.now())
	}
	if record.Medications == nil {
		record.Medications = []string{}
	}
	if record.Allergies == nil {
		record.Allergies = []string{}
	}

	r.store.medicalRecords = append(r.store.medicalRecords, record)

	return &record, nil
}

func (r *medicalRecordRepository) UpdateMedicalRecord(ctx context.Context, firstName, lastName string, patch entity.MedicalRecordPatch) (*entity.MedicalRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := -1
	for i, record := range r.store.medicalRecords {
		if record.HasName(firstName, lastName) {
			idx = i

			break
		}
	}
	if idx < 0 {
		r.logger.Warn("MedicalRecord to update does not exist",
			slog.String("firstName", firstName),
			slog.String("lastName", lastName),
		)

		return nil, repository.ErrMedicalRecordNotFound
	}

	current := r.store.medicalRecords[idx]
	merged := current
	if patch.Birthdate != nil {
		merged.Birthdate = *patch.Birthdate
	}
	if patch.Medications != nil {
		merged.Medications = slices.Clone(patch.Medications)
	}
	if patch.Allergies != nil {
		merged.Allergies = slices.Clone(patch.Allergies)
	}

	if merged.Equal(current) {
		r.logger.Warn("MedicalRecord seems to be already updated",
			slog.String("firstName", firstName),
			slog.String("lastName", lastName),
		)

		return nil, repository.ErrMedicalRecordUnchanged
	}

	r.store.medicalRecords[idx] = merged

	return &merged, nil
}

func (r *medicalRecordRepository) DeleteMedicalRecord(ctx context.Context, firstName, lastName string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, record := range r.store.medicalRecords {
		if record.HasName(firstName, lastName) {
			r.store.medicalRecords = slices.Delete(r.store.medicalRecords, i, i+1)

			return nil
		}
	}

	r.logger.Warn("MedicalRecord to delete does not exist",
		slog.String("firstName", firstName),
		slog.String("lastName", lastName),
	)

	return nil
}
