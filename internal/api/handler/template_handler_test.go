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

type stubTemplateService struct {
	ports.TemplateService

	created    ports.TemplateInput
	templateID string
	leadID     string
}

func (s *stubTemplateService) Create(_ context.Context, in ports.TemplateInput) (*domain.MessageTemplate, error) {
	s.created = in
	return &domain.MessageTemplate{ID: "t1", Titulo: in.Titulo, Mensagem: in.Mensagem}, nil
}

func (s *stubTemplateService) Render(_ context.Context, templateID, leadID string) (*ports.RenderedMessage, error) {
	s.templateID, s.leadID = templateID, leadID
	return &ports.RenderedMessage{Mensagem: "Olá Maria!", Link: "https://wa.me/5511988887777?text=Ol%C3%A1"}, nil
}

func TestTemplateHandler_CreateRequiresMessage(t *testing.T) {
	svc := &stubTemplateService{}
	h := NewTemplateHandler(svc)

	_, c := jsonRequest(http.MethodPost, "/api/admin/templates", `{"titulo":"Boas-vindas"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	rec, c := jsonRequest(http.MethodPost, "/api/admin/templates", `{"titulo":"Boas-vindas","mensagem":"Olá {nome}!","categoria":"primeiro contato"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated || !svc.created.Ativo || svc.created.Categoria != "primeiro contato" {
		t.Fatalf("unexpected create %d %+v", rec.Code, svc.created)
	}
}

func TestTemplateHandler_Render(t *testing.T) {
	svc := &stubTemplateService{}
	h := NewTemplateHandler(svc)

	rec, c := jsonRequest(http.MethodGet, "/api/admin/templates/render?id=t1&lead_id=l9", "")
	if err := h.Render(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.templateID != "t1" || svc.leadID != "l9" {
		t.Fatalf("unexpected ids %q %q", svc.templateID, svc.leadID)
	}
	var got ports.RenderedMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Mensagem != "Olá Maria!" || got.Link == "" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	_, c = jsonRequest(http.MethodGet, "/api/admin/templates/render?id=t1", "")
	if err := h.Render(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected missing lead_id to be rejected, got %v", err)
	}
}
