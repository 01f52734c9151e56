package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   map[string]*domain.User
	touched []string
	seq     int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) List(context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.Invalid("Já existe um usuário com este email")
		}
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Nome != nil {
		u.Nome = *p.Nome
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Ativo != nil {
		u.Ativo = *p.Ativo
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) TouchLastLogin(_ context.Context, id string) error {
	r.touched = append(r.touched, id)
	return nil
}

func (r *stubUserRepo) Count(context.Context) (int, error) { return len(r.users), nil }

type stubCategoryRepo struct {
	cats    map[string]*domain.Category
	seq     int
	ordered []string
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{cats: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) List(context.Context) ([]domain.Category, error) {
	out := []domain.Category{}
	for _, c := range r.cats {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ordem < out[j].Ordem })
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) NameExists(_ context.Context, nome, excludeID string) (bool, error) {
	for id, c := range r.cats {
		if id != excludeID && strings.EqualFold(c.Nome, nome) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.seq++
	clone := *c
	clone.ID = fmt.Sprintf("cat-%d", r.seq)
	clone.Ordem = len(r.cats)
	r.cats[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, id string, p domain.CategoryPatch) (*domain.Category, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Nome != nil {
		c.Nome = *p.Nome
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.Ordem != nil {
		c.Ordem = *p.Ordem
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.cats[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.cats, id)
	return nil
}

func (r *stubCategoryRepo) Reorder(_ context.Context, ids []string) error {
	r.ordered = ids
	return nil
}

type stubGalleryRepo struct {
	galleries map[string]*domain.Gallery
	seq       int
	creates   int
}

func newStubGalleryRepo() *stubGalleryRepo {
	return &stubGalleryRepo{galleries: make(map[string]*domain.Gallery)}
}

func (r *stubGalleryRepo) List(_ context.Context, f domain.GalleryFilter) ([]domain.Gallery, error) {
	out := []domain.Gallery{}
	for _, g := range r.galleries {
		if f.OnlyActive && !g.Ativo {
			continue
		}
		if f.Principal != nil && g.Principal != *f.Principal {
			continue
		}
		if f.CategoriaID != "" && (g.CategoriaID == nil || *g.CategoriaID != f.CategoriaID) {
			continue
		}
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ordem < out[j].Ordem })
	return out, nil
}

func (r *stubGalleryRepo) FindByID(_ context.Context, id string) (*domain.Gallery, error) {
	g, ok := r.galleries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubGalleryRepo) FindBySlug(_ context.Context, slug string) (*domain.Gallery, error) {
	for _, g := range r.galleries {
		if g.Slug == slug {
			clone := *g
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubGalleryRepo) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for id, g := range r.galleries {
		if id != excludeID && g.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubGalleryRepo) CountPrincipal(_ context.Context, excludeID string) (int, error) {
	n := 0
	for id, g := range r.galleries {
		if id != excludeID && g.Principal {
			n++
		}
	}
	return n, nil
}

func (r *stubGalleryRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	n := 0
	for _, g := range r.galleries {
		if g.CategoriaID != nil && *g.CategoriaID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *stubGalleryRepo) Create(_ context.Context, g *domain.Gallery) (*domain.Gallery, error) {
	r.seq++
	r.creates++
	clone := *g
	clone.ID = fmt.Sprintf("gal-%d", r.seq)
	clone.Ordem = len(r.galleries)
	r.galleries[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubGalleryRepo) Update(_ context.Context, id string, p domain.GalleryPatch) (*domain.Gallery, error) {
	g, ok := r.galleries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Titulo != nil {
		g.Titulo = *p.Titulo
	}
	if p.Slug != nil {
		g.Slug = *p.Slug
	}
	if p.Principal != nil {
		g.Principal = *p.Principal
	}
	if p.Ativo != nil {
		g.Ativo = *p.Ativo
	}
	if p.Ordem != nil {
		g.Ordem = *p.Ordem
	}
	clone := *g
	return &clone, nil
}

func (r *stubGalleryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.galleries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.galleries, id)
	return nil
}

func (r *stubGalleryRepo) Reorder(_ context.Context, ids []string) error {
	for i, id := range ids {
		if g, ok := r.galleries[id]; ok {
			g.Ordem = i
		}
	}
	return nil
}

func (r *stubGalleryRepo) Count(context.Context) (int, error) { return len(r.galleries), nil }

type stubPhotoRepo struct {
	photos map[string]*domain.Photo
	seq    int
}

func newStubPhotoRepo() *stubPhotoRepo {
	return &stubPhotoRepo{photos: make(map[string]*domain.Photo)}
}

func (r *stubPhotoRepo) ListByGallery(_ context.Context, galleryID string) ([]domain.Photo, error) {
	out := []domain.Photo{}
	for _, p := range r.photos {
		if p.GaleriaID == galleryID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ordem < out[j].Ordem })
	return out, nil
}

func (r *stubPhotoRepo) FindByID(_ context.Context, id string) (*domain.Photo, error) {
	p, ok := r.photos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPhotoRepo) CreateMany(_ context.Context, photos []domain.Photo) ([]domain.Photo, error) {
	out := make([]domain.Photo, 0, len(photos))
	for _, p := range photos {
		r.seq++
		p.ID = fmt.Sprintf("photo-%d", r.seq)
		p.Ordem = len(r.photos)
		clone := p
		r.photos[p.ID] = &clone
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPhotoRepo) Update(_ context.Context, id string, patch domain.PhotoPatch) (*domain.Photo, error) {
	p, ok := r.photos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Legenda != nil {
		p.Legenda = *patch.Legenda
	}
	if patch.Ordem != nil {
		p.Ordem = *patch.Ordem
	}
	clone := *p
	return &clone, nil
}

func (r *stubPhotoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.photos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.photos, id)
	return nil
}

func (r *stubPhotoRepo) DeleteByGallery(_ context.Context, galleryID string) ([]domain.Photo, error) {
	out := []domain.Photo{}
	for id, p := range r.photos {
		if p.GaleriaID == galleryID {
			out = append(out, *p)
			delete(r.photos, id)
		}
	}
	return out, nil
}

func (r *stubPhotoRepo) Reorder(context.Context, []string) error { return nil }

func (r *stubPhotoRepo) Count(context.Context) (int, error) { return len(r.photos), nil }

type stubCleaner struct {
	mu       sync.Mutex
	enqueued []string
}

func (c *stubCleaner) Enqueue(publicID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if publicID != "" {
		c.enqueued = append(c.enqueued, publicID)
	}
}

type stubLeadRepo struct {
	leads   map[string]*domain.Lead
	seq     int
	creates int
	updates int
	counts  *ports.LeadCounts
}

func newStubLeadRepo() *stubLeadRepo {
	return &stubLeadRepo{leads: make(map[string]*domain.Lead)}
}

func (r *stubLeadRepo) List(_ context.Context, f domain.LeadFilter) ([]domain.Lead, error) {
	out := []domain.Lead{}
	for _, l := range r.leads {
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubLeadRepo) FindByID(_ context.Context, id string) (*domain.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLeadRepo) Create(_ context.Context, l *domain.Lead) (*domain.Lead, error) {
	r.seq++
	r.creates++
	clone := *l
	clone.ID = fmt.Sprintf("lead-%d", r.seq)
	clone.CreatedAt = time.Now()
	r.leads[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubLeadRepo) Update(_ context.Context, id string, p domain.LeadPatch) (*domain.Lead, error) {
	r.updates++
	l, ok := r.leads[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Nome != nil {
		l.Nome = *p.Nome
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Ordem != nil {
		l.Ordem = *p.Ordem
	}
	clone := *l
	return &clone, nil
}

func (r *stubLeadRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.leads[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.leads, id)
	return nil
}

func (r *stubLeadRepo) Counts(context.Context, time.Time) (*ports.LeadCounts, error) {
	if r.counts != nil {
		return r.counts, nil
	}
	c := &ports.LeadCounts{PorStatus: map[domain.LeadStatus]int{}, PorOrigem: map[string]int{}}
	for _, l := range r.leads {
		c.Total++
		c.PorStatus[l.Status]++
		c.PorOrigem[l.Origem]++
	}
	return c, nil
}

type stubInteractionRepo struct {
	items map[string]*domain.LeadInteraction
	seq   int
	calls []string
}

func newStubInteractionRepo() *stubInteractionRepo {
	return &stubInteractionRepo{items: make(map[string]*domain.LeadInteraction)}
}

func (r *stubInteractionRepo) ListByLead(_ context.Context, leadID string) ([]domain.LeadInteraction, error) {
	out := []domain.LeadInteraction{}
	for _, it := range r.items {
		if it.LeadID == leadID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *stubInteractionRepo) Create(_ context.Context, in *domain.LeadInteraction) error {
	r.seq++
	in.ID = fmt.Sprintf("it-%d", r.seq)
	clone := *in
	r.items[in.ID] = &clone
	return nil
}

func (r *stubInteractionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubInteractionRepo) DeleteByLead(_ context.Context, leadID string) (int64, error) {
	r.calls = append(r.calls, "DeleteByLead:"+leadID)
	var n int64
	for id, it := range r.items {
		if it.LeadID == leadID {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

type stubDedup struct {
	seen map[string]string
}

func (d *stubDedup) Lookup(_ context.Context, fp string) (string, error) { return d.seen[fp], nil }

func (d *stubDedup) Remember(_ context.Context, fp, id string) error {
	d.seen[fp] = id
	return nil
}

type stubConfigRepo struct {
	values domain.SiteConfig
}

func (r *stubConfigRepo) All(context.Context) (domain.SiteConfig, error) {
	out := domain.SiteConfig{}
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}

func (r *stubConfigRepo) Upsert(_ context.Context, values domain.SiteConfig) error {
	for k, v := range values {
		r.values[k] = v
	}
	return nil
}

type stubTemplateRepo struct {
	templates map[string]*domain.MessageTemplate
}

func (r *stubTemplateRepo) List(context.Context) ([]domain.MessageTemplate, error) {
	out := []domain.MessageTemplate{}
	for _, t := range r.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTemplateRepo) FindByID(_ context.Context, id string) (*domain.MessageTemplate, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTemplateRepo) Create(_ context.Context, t *domain.MessageTemplate) (*domain.MessageTemplate, error) {
	clone := *t
	clone.ID = fmt.Sprintf("tpl-%d", len(r.templates)+1)
	r.templates[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTemplateRepo) Update(_ context.Context, id string, p domain.MessageTemplatePatch) (*domain.MessageTemplate, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Titulo != nil {
		t.Titulo = *p.Titulo
	}
	if p.Mensagem != nil {
		t.Mensagem = *p.Mensagem
	}
	clone := *t
	return &clone, nil
}

func (r *stubTemplateRepo) Delete(_ context.Context, id string) error {
	delete(r.templates, id)
	return nil
}

func (r *stubTemplateRepo) Count(context.Context) (int, error) { return len(r.templates), nil }

type stubTeamRepo struct {
	members   []domain.TeamMember
	lastPatch domain.TeamMemberPatch
	reordered []string
}

func (r *stubTeamRepo) List(_ context.Context, onlyActive bool) ([]domain.TeamMember, error) {
	out := []domain.TeamMember{}
	for _, m := range r.members {
		if onlyActive && !m.Ativo {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *stubTeamRepo) Create(_ context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	clone := *m
	clone.ID = fmt.Sprintf("team-%d", len(r.members)+1)
	r.members = append(r.members, clone)
	return &clone, nil
}

func (r *stubTeamRepo) Update(_ context.Context, id string, p domain.TeamMemberPatch) (*domain.TeamMember, error) {
	r.lastPatch = p
	for _, m := range r.members {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubTeamRepo) Delete(context.Context, string) error { return nil }

func (r *stubTeamRepo) Reorder(_ context.Context, ids []string) error {
	r.reordered = ids
	return nil
}

func (r *stubTeamRepo) Count(context.Context) (int, error) { return len(r.members), nil }

type stubPartnerRepo struct {
	partners  []domain.Partner
	lastPatch domain.PartnerPatch
}

func (r *stubPartnerRepo) List(_ context.Context, onlyActive bool) ([]domain.Partner, error) {
	out := []domain.Partner{}
	for _, p := range r.partners {
		if onlyActive && !p.Ativo {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPartnerRepo) Create(_ context.Context, p *domain.Partner) (*domain.Partner, error) {
	clone := *p
	clone.ID = fmt.Sprintf("partner-%d", len(r.partners)+1)
	r.partners = append(r.partners, clone)
	return &clone, nil
}

func (r *stubPartnerRepo) Update(_ context.Context, id string, p domain.PartnerPatch) (*domain.Partner, error) {
	r.lastPatch = p
	for _, existing := range r.partners {
		if existing.ID == id {
			return &existing, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubPartnerRepo) Delete(context.Context, string) error    { return nil }
func (r *stubPartnerRepo) Reorder(context.Context, []string) error { return nil }
func (r *stubPartnerRepo) Count(context.Context) (int, error)      { return len(r.partners), nil }

// memCache is a ContentCache keeping JSON-free copies in a map.
type memCache struct {
	mu          sync.Mutex
	data        map[string]any
	invalidated []string
	sets        int
}

func newMemCache() *memCache { return &memCache{data: make(map[string]any)} }

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.PublicSite:
		*d = *(v.(*domain.PublicSite))
	case *domain.GalleryDetail:
		*d = *(v.(*domain.GalleryDetail))
	case *[]domain.Project:
		*d = v.([]domain.Project)
	default:
		return false, fmt.Errorf("memCache: unsupported type %T", dst)
	}
	return true, nil
}

func (c *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = value
	return nil
}

func (c *memCache) Invalidate(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.invalidated = append(c.invalidated, k)
	}
	return nil
}
