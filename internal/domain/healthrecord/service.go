package healthrecord

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	records Repository
}

func NewService(records Repository) *Service {
	return &Service{records: records}
}

func (s *Service) CreateRecord(ctx context.Context, rec *HealthRecord) error {
	if rec.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if rec.Diagnosis == "" {
		return fmt.Errorf("diagnosis is required")
	}
	if rec.RecordType == "" {
		rec.RecordType = "observation"
	}
	if !validRecordTypes[rec.RecordType] {
		return fmt.Errorf("invalid record_type: %s", rec.RecordType)
	}
	if rec.RecordedBy == "" {
		rec.RecordedBy = RecordedByOwner
	}
	if !validRecorders[rec.RecordedBy] {
		return fmt.Errorf("invalid recorded_by: %s", rec.RecordedBy)
	}
	return s.records.Create(ctx, rec)
}

func (s *Service) ListRecords(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HealthRecord, int, error) {
	return s.records.ListByOwner(ctx, userID, limit, offset)
}

func (s *Service) ListRecordsByAnimal(ctx context.Context, animalID uuid.UUID, limit, offset int) ([]*HealthRecord, int, error) {
	return s.records.ListByAnimal(ctx, animalID, limit, offset)
}
