package impl

import (
	"context"
	"log/slog"

	"alerts/internal/domain/entity"
	"alerts/internal/domain/repository"
	"alerts/internal/usecase"
)

type firestationService struct {
	firestationRepo repository.FirestationRepository
	logger          *slog.Logger
}

// NewFirestationService creates a new fire-station mapping service instance.
func NewFirestationService(firestationRepo repository.FirestationRepository, logger *slog.Logger) usecase.FirestationUsecase {
	return &firestationService{
		firestationRepo: firestationRepo,
		logger:          logger,
	}
}

func (s *firestationService) ListFirestations(ctx context.Context) ([]entity.Firestation, error) {
	return s.firestationRepo.ListFirestations(ctx)
}

func (s *firestationService) GetFirestationsByAddress(ctx context.Context, address string) ([]entity.Firestation, error) {
	return s.firestationRepo.FindFirestationsByAddress(ctx, address)
}

func (s *firestationService) AddFirestation(ctx context.Context, input *usecase.AddFirestationInput) (*entity.Firestation, error) {
	firestation := entity.Firestation{
		Station: input.Station,
		Address: input.Address,
	}

	return s.firestationRepo.AddFirestation(ctx, firestation)
}

func (s *firestationService) UpdateFirestationNumber(ctx context.Context, station int64, address string, input *usecase.UpdateFirestationInput) ([]entity.Firestation, error) {
	return s.firestationRepo.UpdateFirestationNumber(ctx, station, address, input.Station)
}

func (s *firestationService) DeleteFirestation(ctx context.Context, station int64, address string) error {
	return s.firestationRepo.DeleteFirestation(ctx, station, address)
}
