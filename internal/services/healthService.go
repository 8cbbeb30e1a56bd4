package services

import (
	"context"

	"github.com/arzan03/BloodDonorNepal/internal/db"
	"github.com/arzan03/BloodDonorNepal/internal/models"
)

const maxErrorLen = 80

type HealthService struct {
	store         db.Store
	uriConfigured bool
}

func NewHealthService(store db.Store, uriConfigured bool) *HealthService {
	return &HealthService{store: store, uriConfigured: uriConfigured}
}

// Probe reports backend and database state. It never fails.
func (s *HealthService) Probe(ctx context.Context) models.HealthReport {
	report := models.HealthReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.store == nil {
		report.Database = "⚠️ Available but not initialized"
		return report
	}

	urlStatus := "❌ Not Set"
	if s.uriConfigured {
		urlStatus = "✅ Set"
	}
	report.DatabaseURL = &urlStatus

	h := s.store.Health(ctx)
	if h.Name != "" {
		report.DatabaseName = &h.Name
	}

	if !h.Reachable {
		report.Database = "❌ Error: " + truncate(errString(h.PingErr), maxErrorLen)
		return report
	}
	report.ConnectionStatus = "Connected"

	if h.ListErr != nil {
		report.Database = "⚠️ Connected but Error: " + truncate(h.ListErr.Error(), maxErrorLen)
		return report
	}

	if h.Collections != nil {
		report.Collections = h.Collections
	}
	// Stores report every collection; this is the only place the list is cut.
	if len(report.Collections) > db.MaxHealthCollections {
		report.Collections = report.Collections[:db.MaxHealthCollections]
	}
	report.Database = "✅ Connected & Working"
	return report
}

func errString(err error) string {
	if err == nil {
		return "unreachable"
	}
	return err.Error()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
