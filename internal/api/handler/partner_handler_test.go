package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

type stubPartnerService struct {
	ports.PartnerService

	created ports.PartnerInput
	patch   domain.PartnerPatch
}

func (s *stubPartnerService) List(context.Context) ([]domain.Partner, error) {
	return []domain.Partner{{ID: "p1", Nome: "Aurora"}, {ID: "p2", Nome: "Brisa"}}, nil
}

func (s *stubPartnerService) Create(_ context.Context, in ports.PartnerInput) (*domain.Partner, error) {
	s.created = in
	return &domain.Partner{ID: "p3", Nome: in.Nome, Ativo: in.Ativo}, nil
}

func (s *stubPartnerService) Update(_ context.Context, id string, p domain.PartnerPatch) (*domain.Partner, error) {
	s.patch = p
	if id != "p1" {
		return nil, domain.ErrNotFound
	}
	return &domain.Partner{ID: id}, nil
}

func TestPartnerHandler_List(t *testing.T) {
	h := NewPartnerHandler(&stubPartnerService{})

	rec, c := jsonRequest(http.MethodGet, "/api/admin/partners", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var got []domain.Partner
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[1].Nome != "Brisa" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestPartnerHandler_CreateKeepsExplicitInactive(t *testing.T) {
	svc := &stubPartnerService{}
	h := NewPartnerHandler(svc)

	rec, c := jsonRequest(http.MethodPost, "/api/admin/partners", `{"nome":"Aurora","logo_url":"https://x/logo.png","ativo":false}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated || svc.created.Ativo || svc.created.LogoURL != "https://x/logo.png" {
		t.Fatalf("unexpected create %d %+v", rec.Code, svc.created)
	}
}

func TestPartnerHandler_UpdateNotFound(t *testing.T) {
	h := NewPartnerHandler(&stubPartnerService{})

	_, c := jsonRequest(http.MethodPut, "/api/admin/partners", `{"id":"nope","nome":"x"}`)
	if err := h.Update(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
