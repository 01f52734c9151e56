package domain

import (
	"regexp"
	"time"
)

// LeadStatus is a stage of the sales pipeline.
type LeadStatus string

const (
	LeadNovo       LeadStatus = "novo"
	LeadContatado  LeadStatus = "contatado"
	LeadProposta   LeadStatus = "proposta"
	LeadNegociacao LeadStatus = "negociacao"
	LeadFechado    LeadStatus = "fechado"
	LeadPerdido    LeadStatus = "perdido"
)

// LeadStatuses lists the pipeline in board order.
var LeadStatuses = []LeadStatus{LeadNovo, LeadContatado, LeadProposta, LeadNegociacao, LeadFechado, LeadPerdido}

// Valid reports whether s is part of the pipeline.
func (s LeadStatus) Valid() bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Field limits applied to lead input.
const (
	MaxLeadNome        = 100
	MaxLeadEmail       = 255
	MaxLeadTelefone    = 30
	MaxLeadEmpresa     = 120
	MaxLeadTipoProjeto = 60
	MaxLeadOrcamento   = 60
	MaxLeadMensagem    = 2000
	MaxLeadOrigem      = 60

	MinLeadNome     = 2
	MinLeadMensagem = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the loose address check used by the contact form.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Lead is a prospective customer.
type Lead struct {
	ID          string     `json:"id"`
	Nome        string     `json:"nome"`
	Email       string     `json:"email"`
	Telefone    string     `json:"telefone"`
	Empresa     string     `json:"empresa"`
	TipoProjeto string     `json:"tipo_projeto"`
	Orcamento   string     `json:"orcamento"`
	Mensagem    string     `json:"mensagem"`
	Origem      string     `json:"origem"`
	Status      LeadStatus `json:"status"`
	Ordem       int        `json:"ordem"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// LeadPatch lists the fields a partial update may touch.
type LeadPatch struct {
	Nome        *string
	Email       *string
	Telefone    *string
	Empresa     *string
	TipoProjeto *string
	Orcamento   *string
	Mensagem    *string
	Origem      *string
	Status      *LeadStatus
	Ordem       *int
}

// LeadFilter narrows a lead listing. Zero values are ignored.
type LeadFilter struct {
	Status LeadStatus
	Search string
	From   time.Time
	To     time.Time
}

// LeadStats aggregates the pipeline for the CRM overview.
type LeadStats struct {
	Total         int                `json:"total"`
	PorStatus     map[LeadStatus]int `json:"por_status"`
	PorOrigem     map[string]int     `json:"por_origem"`
	EsteMes       int                `json:"este_mes"`
	TaxaConversao float64            `json:"taxa_conversao"`
	EmAberto      int                `json:"em_aberto"`
}

// InteractionType classifies a CRM timeline entry.
type InteractionType string

const (
	InteractionNota     InteractionType = "nota"
	InteractionLigacao  InteractionType = "ligacao"
	InteractionWhatsApp InteractionType = "whatsapp"
	InteractionEmail    InteractionType = "email"
	InteractionReuniao  InteractionType = "reuniao"
)

// Valid reports whether t is a known interaction type.
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionNota, InteractionLigacao, InteractionWhatsApp, InteractionEmail, InteractionReuniao:
		return true
	}
	return false
}

// LeadInteraction is one entry on a lead's timeline.
type LeadInteraction struct {
	ID        string          `json:"id" bson:"_id"`
	LeadID    string          `json:"lead_id" bson:"lead_id"`
	Tipo      InteractionType `json:"tipo" bson:"tipo"`
	Descricao string          `json:"descricao" bson:"descricao"`
	Autor     string          `json:"autor" bson:"autor"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}
