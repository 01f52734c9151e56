package handler

import (
	"errors"
	"testing"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

type sampleRequest struct {
	Titulo string   `json:"titulo" validate:"required"`
	Email  string   `json:"email" validate:"omitempty,email"`
	Tipo   string   `json:"tipo" validate:"omitempty,oneof=nota ligacao"`
	IDs    []string `json:"ids" validate:"omitempty,min=1"`
}

func TestValidator_MessagesUseJSONNames(t *testing.T) {
	err := NewValidator().Validate(&sampleRequest{Email: "not-an-email", Tipo: "fax"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected input error, got %v", err)
	}
	want := "titulo é obrigatório; email deve ser um email válido; tipo deve ser um de: nota ligacao"
	if err.Error() != want {
		t.Fatalf("message = %q\nwant      %q", err.Error(), want)
	}
}

func TestValidator_Valid(t *testing.T) {
	if err := NewValidator().Validate(&sampleRequest{Titulo: "Casamento"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReorderRequest_RequiresIDs(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(&reorderRequest{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty ids: expected input error, got %v", err)
	}
	if err := v.Validate(&reorderRequest{IDs: []string{"a", ""}}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("blank id: expected input error, got %v", err)
	}
	if err := v.Validate(&reorderRequest{IDs: []string{"a", "b"}}); err != nil {
		t.Fatalf("valid ids: %v", err)
	}
}
