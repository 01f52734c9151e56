package domain

import "time"

// TeamMember is shown on the "about" section.
type TeamMember struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Cargo     string    `json:"cargo"`
	Bio       string    `json:"bio"`
	FotoURL   string    `json:"foto_url"`
	Instagram string    `json:"instagram"`
	Ativo     bool      `json:"ativo"`
	Ordem     int       `json:"ordem"`
	CreatedAt time.Time `json:"created_at"`
}

type TeamMemberPatch struct {
	Nome      *string
	Cargo     *string
	Bio       *string
	FotoURL   *string
	Instagram *string
	Ativo     *bool
	Ordem     *int
}

// Partner is a client or brand logo.
type Partner struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	LogoURL   string    `json:"logo_url"`
	SiteURL   string    `json:"site_url"`
	Ativo     bool      `json:"ativo"`
	Ordem     int       `json:"ordem"`
	CreatedAt time.Time `json:"created_at"`
}

type PartnerPatch struct {
	Nome    *string
	LogoURL *string
	SiteURL *string
	Ativo   *bool
	Ordem   *int
}

// MessageTemplate is a canned WhatsApp message used from the CRM.
type MessageTemplate struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Mensagem  string    `json:"mensagem"`
	Categoria string    `json:"categoria"`
	Ativo     bool      `json:"ativo"`
	Ordem     int       `json:"ordem"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageTemplatePatch struct {
	Titulo    *string
	Mensagem  *string
	Categoria *string
	Ativo     *bool
	Ordem     *int
}

// SiteConfig is the key/value configuration read by the public site.
type SiteConfig map[string]string

// Known configuration keys.
const (
	ConfigWhatsApp = "whatsapp"
)

// Project is a portfolio item as exposed by the public projects endpoint,
// whether it comes from the database or the structured-content platform.
type Project struct {
	ID        string `json:"id"`
	Titulo    string `json:"titulo"`
	Slug      string `json:"slug"`
	Descricao string `json:"descricao"`
	Categoria string `json:"categoria,omitempty"`
	CapaURL   string `json:"capa_url"`
	VideoURL  string `json:"video_url,omitempty"`
	Ordem     int    `json:"ordem"`
}

// PublicSite is the aggregate rendered by the marketing site.
type PublicSite struct {
	Config     SiteConfig   `json:"config"`
	Galerias   []Gallery    `json:"galerias"`
	Categorias []Category   `json:"categorias"`
	Equipe     []TeamMember `json:"equipe"`
	Parceiros  []Partner    `json:"parceiros"`
}

// Dashboard holds the counters of the admin overview.
type Dashboard struct {
	Leads     LeadStats `json:"leads"`
	Galerias  int       `json:"galerias"`
	Fotos     int       `json:"fotos"`
	Equipe    int       `json:"equipe"`
	Parceiros int       `json:"parceiros"`
	Templates int       `json:"templates"`
	Usuarios  int       `json:"usuarios"`
}

// MediaAsset is the media host's answer to an upload.
type MediaAsset struct {
	URL          string `json:"url"`
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
	Format       string `json:"format"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Bytes        int    `json:"bytes"`
}
