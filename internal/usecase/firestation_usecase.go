package usecase

import (
	"context"

	"alerts/internal/domain/entity"
)

// AddFirestationInput represents the request body for creating a
// station-to-address mapping.
type AddFirestationInput struct {
	Station int64  `json:"station" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// UpdateFirestationInput carries the new station number for a mapping group.
type UpdateFirestationInput struct {
	Station int64 `json:"station" validate:"required"`
}

// FirestationUsecase defines the fire-station mapping CRUD use cases.
type FirestationUsecase interface {
	ListFirestations(ctx context.Context) ([]entity.Firestation, error)
	GetFirestationsByAddress(ctx context.Context, address string) ([]entity.Firestation, error)
	AddFirestation(ctx context.Context, input *AddFirestationInput) (*entity.Firestation, error)
	UpdateFirestationNumber(ctx context.Context, station int64, address string, input *UpdateFirestationInput) ([]entity.Firestation, error)
	DeleteFirestation(ctx context.Context, station int64, address string) error
}
