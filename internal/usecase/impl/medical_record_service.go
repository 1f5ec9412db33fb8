package impl

import (
	"context"
	"log/slog"

	"alerts/internal/domain/entity"
	"alerts/internal/domain/repository"
	"alerts/internal/usecase"
)

type medicalRecordService struct {
	medicalRecordRepo repository.MedicalRecordRepository
	logger            *slog.Logger
}

// NewMedicalRecordService creates a new medical record service instance.
func NewMedicalRecordService(medicalRecordRepo repository.MedicalRecordRepository, logger *slog.Logger) usecase.MedicalRecordUsecase {
	return &medicalRecordService{
		medicalRecordRepo: medicalRecordRepo,
		logger:            logger,
	}
}

func (s *medicalRecordService) ListMedicalRecords(ctx context.Context) ([]entity.MedicalRecord, error) {
	return s.medicalRecordRepo.ListMedicalRecords(ctx)
}

func (s *medicalRecordService) GetMedicalRecord(ctx context.Context, firstName, lastName string) (*entity.MedicalRecord, error) {
	return s.medicalRecordRepo.FindMedicalRecordByName(ctx, firstName, lastName)
}

func (s *medicalRecordService) AddMedicalRecord(ctx context.Context, input *usecase.AddMedicalRecordInput) (*entity.MedicalRecord, error) {
	record := entity.MedicalRecord{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Medications: input.Medications,
		Allergies:   input.Allergies,
	}
	if input.Birthdate != nil {
		record.Birthdate = *input.Birthdate
	}

	return s.medicalRecordRepo.AddMedicalRecord(ctx, record)
}

func (s *medicalRecordService) UpdateMedicalRecord(ctx context.Context, firstName, lastName string, input *usecase.UpdateMedicalRecordInput) (*entity.MedicalRecord, error) {
	patch := entity.MedicalRecordPatch{
		Birthdate:   input.Birthdate,
		Medications: input.Medications,
		Allergies:   input.Allergies,
	}

	return s.medicalRecordRepo.UpdateMedicalRecord(ctx, firstName, lastName, patch)
}

func (s *medicalRecordService) DeleteMedicalRecord(ctx context.Context, firstName, lastName string) error {
	return s.medicalRecordRepo.DeleteMedicalRecord(ctx, firstName, lastName)
}
