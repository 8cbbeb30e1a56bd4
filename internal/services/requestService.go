package services

import (
	"context"
	"fmt"

	"github.com/arzan03/BloodDonorNepal/internal/db"
	"github.com/arzan03/BloodDonorNepal/internal/models"
	"github.com/arzan03/BloodDonorNepal/internal/serialize"
)

type RequestService struct {
	store db.Store
}

func NewRequestService(store db.Store) *RequestService {
	return &RequestService{store: store}
}

// SubmitRequest validates and stores a blood request with its default status.
func (s *RequestService) SubmitRequest(ctx context.Context, in models.BloodRequestInput) (string, error) {
	if err := models.Validate(in); err != nil {
		return "", err
	}
	if s.store == nil {
		return "", db.ErrNotInitialized
	}

	id, err := s.store.Insert(ctx, models.RequestCollection, in.BloodRequest().Document())
	if err != nil {
		return "", fmt.Errorf("submit request: %w", err)
	}
	return id, nil
}

func (s *RequestService) ListRequests(ctx context.Context, limit int) ([]map[string]interface{}, error) {
	if s.store == nil {
		return nil, db.ErrNotInitialized
	}

	docs, err := s.store.Find(ctx, models.RequestCollection, nil, limitOrDefault(limit))
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return serialize.Documents(docs), nil
}
