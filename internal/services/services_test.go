package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/arzan03/BloodDonorNepal/internal/db"
	"github.com/arzan03/BloodDonorNepal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore returns canned results and counts writes.
type stubStore struct {
	health  db.Health
	err     error
	inserts int
}

func (s *stubStore) Insert(context.Context, string, db.Document) (string, error) {
	s.inserts++
	if s.err != nil {
		return "", s.err
	}
	return "stub-id", nil
}

func (s *stubStore) Find(context.Context, string, db.Filter, int) ([]db.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []db.Document{}, nil
}

func (s *stubStore) Health(context.Context) db.Health { return s.health }
func (s *stubStore) Close(context.Context) error      { return nil }

func donorInput(age int) models.DonorInput {
	return models.DonorInput{
		FullName:   models.Some("Ram"),
		Phone:      models.Some("9800000000"),
		BloodGroup: models.Some("O+"),
		Age:        models.Some(age),
		City:       models.Some("Pokhara"),
		Password:   models.Some("x"),
	}
}

func TestRegisterDonorRejectsBeforeInsert(t *testing.T) {
	store := &stubStore{}
	svc := NewDonorService(store)

	_, err := svc.RegisterDonor(context.Background(), donorInput(81))

	var verr *models.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Zero(t, store.inserts)
}

func TestRegisterDonorWrapsPersistenceError(t *testing.T) {
	store := &stubStore{err: errors.Join(db.ErrPersistence, errors.New("socket closed"))}
	svc := NewDonorService(store)

	_, err := svc.RegisterDonor(context.Background(), donorInput(30))

	assert.ErrorIs(t, err, db.ErrPersistence)
	assert.Equal(t, 1, store.inserts)
}

func TestServicesWithoutStore(t *testing.T) {
	ctx := context.Background()

	_, err := NewDonorService(nil).RegisterDonor(ctx, donorInput(30))
	assert.ErrorIs(t, err, db.ErrNotInitialized)

	_, err = NewDonorService(nil).ListDonors(ctx, DonorQuery{})
	assert.ErrorIs(t, err, db.ErrNotInitialized)

	_, err = NewRequestService(nil).ListRequests(ctx, 0)
	assert.ErrorIs(t, err, db.ErrPersistence)
}

func TestSearchDonorsRequiresBothCriteria(t *testing.T) {
	svc := NewDonorService(db.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.SearchDonors(ctx, DonorQuery{BloodGroup: "O+"})
	assert.ErrorIs(t, err, ErrSearchCriteria)

	_, err = svc.SearchDonors(ctx, DonorQuery{City: "Pokhara"})
	assert.ErrorIs(t, err, ErrSearchCriteria)
}

func TestSearchDonorsProjection(t *testing.T) {
	store := db.NewMemoryStore()
	svc := NewDonorService(store)
	ctx := context.Background()

	id, err := svc.RegisterDonor(ctx, donorInput(30))
	require.NoError(t, err)

	donors, err := svc.SearchDonors(ctx, DonorQuery{BloodGroup: "O+", City: "POKHARA"})
	require.NoError(t, err)
	require.Len(t, donors, 1)
	assert.Equal(t, id, donors[0].ID)
	assert.Equal(t, "Ram", *donors[0].FullName)
	assert.Equal(t, "O+", *donors[0].BloodGroup)
	assert.Equal(t, "9800000000", *donors[0].Phone)
	assert.Equal(t, "Pokhara", *donors[0].City)
}

func TestSearchDonorsMissingFieldIsNull(t *testing.T) {
	store := db.NewMemoryStore()
	svc := NewDonorService(store)
	ctx := context.Background()

	_, err := store.Insert(ctx, models.DonorCollection, db.Document{
		"full_name": "Legacy", "blood_group": "B-", "city": "Butwal",
	})
	require.NoError(t, err)

	donors, err := svc.SearchDonors(ctx, DonorQuery{BloodGroup: "B-", City: "butwal"})
	require.NoError(t, err)
	require.Len(t, donors, 1)
	assert.Nil(t, donors[0].Phone)

	body, err := json.Marshal(donors[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), `"phone":null`)
	assert.Contains(t, string(body), `"full_name":"Legacy"`)
}

func TestListDonorsDefaultLimit(t *testing.T) {
	store := db.NewMemoryStore()
	svc := NewDonorService(store)
	ctx := context.Background()

	for i := 0; i < DefaultLimit+5; i++ {
		_, err := store.Insert(ctx, models.DonorCollection, db.Document{"n": i})
		require.NoError(t, err)
	}

	donors, err := svc.ListDonors(ctx, DonorQuery{})
	require.NoError(t, err)
	assert.Len(t, donors, DefaultLimit)
}

func TestSubmitRequestDefaultsStatus(t *testing.T) {
	store := db.NewMemoryStore()
	svc := NewRequestService(store)
	ctx := context.Background()

	_, err := svc.SubmitRequest(ctx, models.BloodRequestInput{
		RequiredBloodGroup: models.Some("AB-"),
		RequiredUnits:      models.Some(2),
		HospitalName:       models.Some("Teaching Hospital"),
		ContactName:        models.Some("Gita"),
		ContactPhone:       models.Some("01-4412303"),
		City:               models.Some("Kathmandu"),
	})
	require.NoError(t, err)

	reqs, err := svc.ListRequests(ctx, 10)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "Pending", reqs[0]["status"])
	assert.NotEmpty(t, reqs[0]["id"])
}

func TestProbe(t *testing.T) {
	ctx := context.Background()
	long := strings.Repeat("x", 200)

	t.Run("no store", func(t *testing.T) {
		r := NewHealthService(nil, false).Probe(ctx)
		assert.Equal(t, "⚠️ Available but not initialized", r.Database)
		assert.Nil(t, r.DatabaseURL)
		assert.Nil(t, r.DatabaseName)
		assert.Equal(t, "Not Connected", r.ConnectionStatus)
		assert.Empty(t, r.Collections)
	})

	t.Run("unreachable", func(t *testing.T) {
		store := &stubStore{health: db.Health{Name: "blood_donor", PingErr: errors.New(long)}}
		r := NewHealthService(store, true).Probe(ctx)
		assert.Equal(t, "❌ Error: "+long[:80], r.Database)
		assert.Equal(t, "✅ Set", *r.DatabaseURL)
		assert.Equal(t, "blood_donor", *r.DatabaseName)
		assert.Equal(t, "Not Connected", r.ConnectionStatus)
	})

	t.Run("listing fails", func(t *testing.T) {
		store := &stubStore{health: db.Health{Reachable: true, Name: "blood_donor", ListErr: errors.New("not authorized")}}
		r := NewHealthService(store, false).Probe(ctx)
		assert.Equal(t, "⚠️ Connected but Error: not authorized", r.Database)
		assert.Equal(t, "❌ Not Set", *r.DatabaseURL)
		assert.Equal(t, "Connected", r.ConnectionStatus)
		assert.Empty(t, r.Collections)
	})

	t.Run("healthy", func(t *testing.T) {
		names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
		store := &stubStore{health: db.Health{Reachable: true, Name: "blood_donor", Collections: names}}
		r := NewHealthService(store, true).Probe(ctx)
		assert.Equal(t, "✅ Connected & Working", r.Database)
		assert.Equal(t, "Connected", r.ConnectionStatus)
		assert.Equal(t, names[:10], r.Collections)
	})
}
