package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// Counter is any repository able to count its rows.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// DashboardCounters are the sources behind each dashboard tile.
type DashboardCounters struct {
	Galleries Counter
	Photos    Counter
	Team      Counter
	Partners  Counter
	Templates Counter
	Users     Counter
}

// DashboardService collects the admin overview concurrently.
type DashboardService struct {
	leads    ports.LeadRepository
	counters DashboardCounters
	now      func() time.Time
}

func NewDashboardService(leads ports.LeadRepository, counters DashboardCounters) *DashboardService {
	return &DashboardService{leads: leads, counters: counters, now: time.Now}
}

func (s *DashboardService) Overview(ctx context.Context) (*domain.Dashboard, error) {
	var d domain.Dashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		now := s.now()
		c, err := s.leads.Counts(gctx, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
		if err != nil {
			return err
		}
		d.Leads = *statsFromCounts(c)
		return nil
	})
	for dst, src := range map[*int]Counter{
		&d.Galerias:  s.counters.Galleries,
		&d.Fotos:     s.counters.Photos,
		&d.Equipe:    s.counters.Team,
		&d.Parceiros: s.counters.Partners,
		&d.Templates: s.counters.Templates,
		&d.Usuarios:  s.counters.Users,
	} {
		dst, src := dst, src
		g.Go(func() (err error) {
			*dst, err = src.Count(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
