package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

func validLead() ports.LeadInput {
	return ports.LeadInput{
		Nome:        "  Maria Souza ",
		Email:       "Maria@Exemplo.com",
		Telefone:    "(11) 98888-7777",
		Empresa:     "Souza Eventos",
		TipoProjeto: "casamento",
		Mensagem:    "Gostaria de um orçamento para o meu casamento em maio.",
	}
}

func TestLeadService_Capture(t *testing.T) {
	leads := newStubLeadRepo()
	svc := NewLeadService(leads, newStubInteractionRepo(), zerolog.Nop())

	l, err := svc.Capture(context.Background(), validLead())
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if l.ID == "" || l.Status != domain.LeadNovo || l.Origem != "site" {
		t.Fatalf("unexpected lead: %+v", l)
	}
	if l.Nome != "Maria Souza" || l.Email != "maria@exemplo.com" {
		t.Fatalf("input not normalised: %+v", l)
	}
}

func TestLeadService_Capture_Validation(t *testing.T) {
	leads := newStubLeadRepo()
	svc := NewLeadService(leads, newStubInteractionRepo(), zerolog.Nop())

	cases := map[string]func(*ports.LeadInput){
		"short nome":     func(in *ports.LeadInput) { in.Nome = " A " },
		"bad email":      func(in *ports.LeadInput) { in.Email = "maria@exemplo" },
		"email spaces":   func(in *ports.LeadInput) { in.Email = "ma ria@exemplo.com" },
		"short mensagem": func(in *ports.LeadInput) { in.Mensagem = "oi tudo?" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validLead()
			mutate(&in)
			if _, err := svc.Capture(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	if leads.creates != 0 {
		t.Fatalf("invalid leads must not be stored, creates=%d", leads.creates)
	}
}

func TestLeadService_Capture_CapsLengths(t *testing.T) {
	leads := newStubLeadRepo()
	svc := NewLeadService(leads, newStubInteractionRepo(), zerolog.Nop())

	in := validLead()
	in.Nome = strings.Repeat("n", 300)
	in.Mensagem = strings.Repeat("m", 5000)
	in.Origem = strings.Repeat("o", 100)
	l, err := svc.Capture(context.Background(), in)
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if len(l.Nome) != domain.MaxLeadNome || len(l.Mensagem) != domain.MaxLeadMensagem || len(l.Origem) != domain.MaxLeadOrigem {
		t.Fatalf("lengths not capped: nome=%d mensagem=%d origem=%d", len(l.Nome), len(l.Mensagem), len(l.Origem))
	}
}

func TestLeadService_Capture_Dedup(t *testing.T) {
	leads := newStubLeadRepo()
	dedup := &stubDedup{seen: map[string]string{}}
	svc := NewLeadService(leads, newStubInteractionRepo(), zerolog.Nop(), WithSubmissionDedup(dedup))

	first, err := svc.Capture(context.Background(), validLead())
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	second, err := svc.Capture(context.Background(), validLead())
	if err != nil {
		t.Fatalf("second capture failed: %v", err)
	}
	if second.ID != first.ID || leads.creates != 1 {
		t.Fatalf("duplicate submission stored twice: first=%s second=%s creates=%d", first.ID, second.ID, leads.creates)
	}
}

func TestLeadService_Update_InvalidStatusLeavesRowUnchanged(t *testing.T) {
	leads := newStubLeadRepo()
	svc := NewLeadService(leads, newStubInteractionRepo(), zerolog.Nop())
	l, _ := svc.Capture(context.Background(), validLead())

	bad := "ganho"
	nome := "Outro Nome"
	_, err := svc.Update(context.Background(), l.ID, ports.UpdateLeadInput{Status: &bad, Nome: &nome})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if leads.updates != 0 {
		t.Fatalf("repository must not be called, updates=%d", leads.updates)
	}
	stored := leads.leads[l.ID]
	if stored.Status != domain.LeadNovo || stored.Nome != "Maria Souza" {
		t.Fatalf("row changed: %+v", stored)
	}
}

func TestLeadService_Update_KanbanMove(t *testing.T) {
	leads := newStubLeadRepo()
	svc := NewLeadService(leads, newStubInteractionRepo(), zerolog.Nop())
	l, _ := svc.Capture(context.Background(), validLead())

	st := string(domain.LeadProposta)
	ordem := 3
	updated, err := svc.Update(context.Background(), l.ID, ports.UpdateLeadInput{Status: &st, Ordem: &ordem})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.LeadProposta || updated.Ordem != 3 {
		t.Fatalf("unexpected lead: %+v", updated)
	}
}

func TestLeadService_Delete_RemovesInteractionsFirst(t *testing.T) {
	leads := newStubLeadRepo()
	interactions := newStubInteractionRepo()
	svc := NewLeadService(leads, interactions, zerolog.Nop())
	ctx := context.Background()

	l, _ := svc.Capture(ctx, validLead())
	for _, tipo := range []string{"nota", "ligacao"} {
		if _, err := svc.AddInteraction(ctx, ports.InteractionInput{LeadID: l.ID, Tipo: tipo, Descricao: "contato", Autor: "Ana"}); err != nil {
			t.Fatalf("add interaction: %v", err)
		}
	}

	if err := svc.Delete(ctx, l.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(interactions.items) != 0 {
		t.Fatalf("interactions not removed: %d left", len(interactions.items))
	}
	if len(interactions.calls) != 1 {
		t.Fatalf("expected one cascade call, got %v", interactions.calls)
	}
	if _, ok := leads.leads[l.ID]; ok {
		t.Fatal("lead not removed")
	}
	if err := svc.Delete(ctx, l.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestLeadService_AddInteraction_Validation(t *testing.T) {
	leads := newStubLeadRepo()
	svc := NewLeadService(leads, newStubInteractionRepo(), zerolog.Nop(),
		WithLeadClock(func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }))
	ctx := context.Background()
	l, _ := svc.Capture(ctx, validLead())

	if _, err := svc.AddInteraction(ctx, ports.InteractionInput{LeadID: l.ID, Tipo: "fax", Descricao: "x"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected unknown type to be rejected, got %v", err)
	}
	if _, err := svc.AddInteraction(ctx, ports.InteractionInput{LeadID: "missing", Descricao: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	it, err := svc.AddInteraction(ctx, ports.InteractionInput{LeadID: l.ID, Descricao: " Ligou pedindo portfólio "})
	if err != nil {
		t.Fatalf("add interaction: %v", err)
	}
	if it.Tipo != domain.InteractionNota || it.Descricao != "Ligou pedindo portfólio" || it.CreatedAt.Day() != 10 {
		t.Fatalf("unexpected interaction: %+v", it)
	}
}

func TestLeadService_Stats(t *testing.T) {
	leads := newStubLeadRepo()
	leads.counts = &ports.LeadCounts{
		Total: 8,
		PorStatus: map[domain.LeadStatus]int{
			domain.LeadNovo:    3,
			domain.LeadFechado: 3,
			domain.LeadPerdido: 2,
		},
		PorOrigem: map[string]int{"site": 6, "instagram": 2},
		Since:     4,
	}
	svc := NewLeadService(leads, newStubInteractionRepo(), zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Total != 8 || stats.EsteMes != 4 || stats.EmAberto != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.TaxaConversao != 37.5 {
		t.Fatalf("expected conversion 37.5, got %v", stats.TaxaConversao)
	}
	if len(stats.PorStatus) != len(domain.LeadStatuses) || stats.PorStatus[domain.LeadContatado] != 0 {
		t.Fatalf("every status must be reported: %+v", stats.PorStatus)
	}
}
