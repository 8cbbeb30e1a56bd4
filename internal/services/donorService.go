package services

import (
	"context"
	"fmt"

	"github.com/arzan03/BloodDonorNepal/internal/db"
	"github.com/arzan03/BloodDonorNepal/internal/models"
	"github.com/arzan03/BloodDonorNepal/internal/serialize"
)

// DefaultLimit caps list and search results when no limit is given.
const DefaultLimit = 50

type DonorService struct {
	store db.Store
}

func NewDonorService(store db.Store) *DonorService {
	return &DonorService{store: store}
}

// DonorQuery holds the optional list filters. Empty fields are ignored.
type DonorQuery struct {
	BloodGroup string
	City       string
	Limit      int
}

func (q DonorQuery) filter() db.Filter {
	f := db.Filter{}
	if q.BloodGroup != "" {
		f["blood_group"] = db.Equals(q.BloodGroup)
	}
	if q.City != "" {
		f["city"] = db.EqualFold(q.City)
	}
	return f
}

// RegisterDonor validates the input, applies defaults and stores the donor.
func (s *DonorService) RegisterDonor(ctx context.Context, in models.DonorInput) (string, error) {
	if err := models.Validate(in); err != nil {
		return "", err
	}
	if s.store == nil {
		return "", db.ErrNotInitialized
	}

	id, err := s.store.Insert(ctx, models.DonorCollection, in.Donor().Document())
	if err != nil {
		return "", fmt.Errorf("register donor: %w", err)
	}
	return id, nil
}

// ListDonors returns full donor documents matching q.
func (s *DonorService) ListDonors(ctx context.Context, q DonorQuery) ([]map[string]interface{}, error) {
	if s.store == nil {
		return nil, db.ErrNotInitialized
	}

	docs, err := s.store.Find(ctx, models.DonorCollection, q.filter(), limitOrDefault(q.Limit))
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return serialize.Documents(docs), nil
}

// SearchDonors requires both blood group and city and returns only the
// contact fields of each match.
func (s *DonorService) SearchDonors(ctx context.Context, q DonorQuery) ([]models.DonorSummary, error) {
	if q.BloodGroup == "" || q.City == "" {
		return nil, ErrSearchCriteria
	}
	if s.store == nil {
		return nil, db.ErrNotInitialized
	}

	docs, err := s.store.Find(ctx, models.DonorCollection, q.filter(), limitOrDefault(q.Limit))
	if err != nil {
		return nil, fmt.Errorf("search donors: %w", err)
	}

	donors := make([]models.DonorSummary, len(docs))
	for i, d := range docs {
		donors[i] = models.DonorSummary{
			ID:         serialize.ID(d["_id"]),
			FullName:   str(d["full_name"]),
			BloodGroup: str(d["blood_group"]),
			Phone:      str(d["phone"]),
			City:       str(d["city"]),
		}
	}
	return donors, nil
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// str returns nil for a missing or non-string field.
func str(v interface{}) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}
