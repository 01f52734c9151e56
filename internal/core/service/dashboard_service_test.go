package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

type fixedCounter struct {
	n   int
	err error
}

func (c fixedCounter) Count(context.Context) (int, error) { return c.n, c.err }

func TestDashboardService_Overview(t *testing.T) {
	leads := newStubLeadRepo()
	leads.leads["l1"] = &domain.Lead{ID: "l1", Status: domain.LeadFechado}
	leads.leads["l2"] = &domain.Lead{ID: "l2", Status: domain.LeadNovo}

	svc := NewDashboardService(leads, DashboardCounters{
		Galleries: fixedCounter{n: 4},
		Photos:    fixedCounter{n: 120},
		Team:      fixedCounter{n: 5},
		Partners:  fixedCounter{n: 9},
		Templates: fixedCounter{n: 3},
		Users:     fixedCounter{n: 2},
	})

	d, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if d.Galerias != 4 || d.Fotos != 120 || d.Equipe != 5 || d.Parceiros != 9 || d.Templates != 3 || d.Usuarios != 2 {
		t.Fatalf("unexpected counters: %+v", d)
	}
	if d.Leads.Total != 2 || d.Leads.TaxaConversao != 50 {
		t.Fatalf("unexpected lead stats: %+v", d.Leads)
	}
}

func TestDashboardService_Overview_Error(t *testing.T) {
	boom := errors.New("boom")
	svc := NewDashboardService(newStubLeadRepo(), DashboardCounters{
		Galleries: fixedCounter{},
		Photos:    fixedCounter{err: boom},
		Team:      fixedCounter{},
		Partners:  fixedCounter{},
		Templates: fixedCounter{},
		Users:     fixedCounter{},
	})
	if _, err := svc.Overview(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
