// Package memory implements the persistence interfaces over three
// insertion-ordered in-memory collections, loaded once from a JSON file at
// startup. Writes mutate the lists in place and are lost on exit; a single
// mutex serializes access, held only for the duration of one scan+mutate
// and never across an operation spanning multiple entity kinds.
package memory

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"alerts/config"
	"alerts/internal/domain/entity"
	"alerts/internal/errors"

	"go.uber.org/fx"
)

// Data is the shape of the startup JSON file.
type Data struct {
	Persons        []entity.Person        `json:"persons"`
	Firestations   []entity.Firestation   `json:"firestations"`
	MedicalRecords []entity.MedicalRecord `json:"medicalrecords"`
}

// Store owns the three entity collections. Uniqueness is not enforced at
// this layer; the repositories check identity before inserting.
type Store struct {
	mu             sync.RWMutex
	persons        []entity.Person
	firestations   []entity.Firestation
	medicalRecords []entity.MedicalRecord

	now func() time.Time
}

// Params defines the dependencies required to build the store.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New loads the dataset from the configured file and builds the store.
// Any load failure is fatal: the service must never start with partial or
// empty state.
func New(params Params) (*Store, error) {
	data, err := LoadFile(params.Config.Data.Path)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Loaded startup dataset",
		slog.String("path", params.Config.Data.Path),
		slog.Int("persons", len(data.Persons)),
		slog.Int("firestations", len(data.Firestations)),
		slog.Int("medicalRecords", len(data.MedicalRecords)),
	)

	return NewFromData(data), nil
}

// NewFromData builds a store from already-parsed collections.
func NewFromData(data *Data) *Store {
	return &Store{
		persons:        data.Persons,
		firestations:   data.Firestations,
		medicalRecords: data.MedicalRecords,
		now:            time.Now,
	}
}

// LoadFile reads and parses the startup JSON file. Dates use MM/DD/YYYY.
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read data file %s", path)
	}

	data := new(Data)
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, errors.Wrapf(err, "parse data file %s", path)
	}

	return data, nil
}
