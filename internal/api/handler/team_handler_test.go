package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

type stubTeamService struct {
	ports.TeamService

	created   ports.TeamMemberInput
	updatedID string
	patch     domain.TeamMemberPatch
	deleted   string
	reordered []string
}

func (s *stubTeamService) Create(_ context.Context, in ports.TeamMemberInput) (*domain.TeamMember, error) {
	s.created = in
	return &domain.TeamMember{ID: "team-1", Nome: in.Nome, Ativo: in.Ativo}, nil
}

func (s *stubTeamService) Update(_ context.Context, id string, p domain.TeamMemberPatch) (*domain.TeamMember, error) {
	s.updatedID = id
	s.patch = p
	return &domain.TeamMember{ID: id}, nil
}

func (s *stubTeamService) Delete(_ context.Context, id string) error {
	s.deleted = id
	return nil
}

func (s *stubTeamService) Reorder(_ context.Context, ids []string) error {
	s.reordered = ids
	return nil
}

func TestTeamHandler_CreateDefaultsActive(t *testing.T) {
	svc := &stubTeamService{}
	h := NewTeamHandler(svc)

	rec, c := jsonRequest(http.MethodPost, "/api/admin/team", `{"nome":"Ana","cargo":"Diretora"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !svc.created.Ativo || svc.created.Cargo != "Diretora" {
		t.Fatalf("unexpected input %+v", svc.created)
	}

	_, c = jsonRequest(http.MethodPost, "/api/admin/team", `{"cargo":"Sem nome"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestTeamHandler_UpdatePassesOnlyPresentFields(t *testing.T) {
	svc := &stubTeamService{}
	h := NewTeamHandler(svc)

	_, c := jsonRequest(http.MethodPut, "/api/admin/team", `{"id":"team-1","ativo":false,"ordem":3}`)
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.updatedID != "team-1" || svc.patch.Nome != nil || svc.patch.Ativo == nil || *svc.patch.Ativo || *svc.patch.Ordem != 3 {
		t.Fatalf("unexpected patch %+v", svc.patch)
	}

	_, c = jsonRequest(http.MethodPut, "/api/admin/team", `{"nome":"x"}`)
	if err := h.Update(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected missing id to be rejected, got %v", err)
	}
}

func TestTeamHandler_DeleteAndReorder(t *testing.T) {
	svc := &stubTeamService{}
	h := NewTeamHandler(svc)

	_, c := jsonRequest(http.MethodDelete, "/api/admin/team?id=team-2", "")
	if err := h.Delete(c); err != nil || svc.deleted != "team-2" {
		t.Fatalf("delete: err=%v deleted=%q", err, svc.deleted)
	}
	_, c = jsonRequest(http.MethodDelete, "/api/admin/team", "")
	if err := h.Delete(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected missing id to be rejected, got %v", err)
	}

	_, c = jsonRequest(http.MethodPut, "/api/admin/team/reorder", `{"ids":["b","a"]}`)
	if err := h.Reorder(c); err != nil || len(svc.reordered) != 2 || svc.reordered[0] != "b" {
		t.Fatalf("reorder: err=%v ids=%v", err, svc.reordered)
	}
	_, c = jsonRequest(http.MethodPut, "/api/admin/team/reorder", `{"ids":[]}`)
	if err := h.Reorder(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected empty ids to be rejected, got %v", err)
	}
}
