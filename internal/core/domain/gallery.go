package domain

import "time"

// MaxPrincipalGalleries caps how many galleries the home page features.
const MaxPrincipalGalleries = 6

const (
	MaxTituloLen    = 150
	MaxDescricaoLen = 5000
	MaxURLLen       = 1000
	MaxNomeLen      = 120
	MaxLegendaLen   = 300
)

// Category groups galleries on the portfolio page.
type Category struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Slug      string    `json:"slug"`
	Ordem     int       `json:"ordem"`
	CreatedAt time.Time `json:"created_at"`
}

// Gallery is a portfolio entry: a cover, an optional video and its photos.
type Gallery struct {
	ID          string    `json:"id"`
	Titulo      string    `json:"titulo"`
	Slug        string    `json:"slug"`
	Descricao   string    `json:"descricao"`
	CategoriaID *string   `json:"categoria_id"`
	CapaURL     string    `json:"capa_url"`
	VideoURL    string    `json:"video_url"`
	Principal   bool      `json:"principal"`
	Ativo       bool      `json:"ativo"`
	Ordem       int       `json:"ordem"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GalleryPatch lists the fields a partial update may touch.
type GalleryPatch struct {
	Titulo      *string
	Slug        *string
	Descricao   *string
	CategoriaID *string
	CapaURL     *string
	VideoURL    *string
	Principal   *bool
	Ativo       *bool
	Ordem       *int
}

// GalleryFilter narrows a gallery listing.
type GalleryFilter struct {
	CategoriaID string
	Principal   *bool
	OnlyActive  bool
}

// Photo belongs to a gallery. PublicID is the media host identifier used to
// delete the asset.
type Photo struct {
	ID        string    `json:"id"`
	GaleriaID string    `json:"galeria_id"`
	URL       string    `json:"url"`
	PublicID  string    `json:"public_id"`
	Legenda   string    `json:"legenda"`
	Ordem     int       `json:"ordem"`
	CreatedAt time.Time `json:"created_at"`
}

// PhotoPatch lists the fields a partial update may touch.
type PhotoPatch struct {
	Legenda *string
	Ordem   *int
}

// GalleryDetail is a gallery with its photos, as served to the public site.
type GalleryDetail struct {
	Gallery
	Fotos []Photo `json:"fotos"`
}

// CategoryPatch lists the fields a partial update may touch.
type CategoryPatch struct {
	Nome  *string
	Slug  *string
	Ordem *int
}
