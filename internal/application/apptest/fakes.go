// Package apptest contiene dobles en memoria de los puertos de la aplicación
// (repositorios, almacenamiento de objetos y transacciones) para los tests de
// los casos de uso. Cada fake permite inyectar errores por operación.
package apptest

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/amartindev/TenjoConecta/internal/application/storage"
	"github.com/amartindev/TenjoConecta/internal/domain"
	"github.com/amartindev/TenjoConecta/internal/domain/entity"
	"github.com/amartindev/TenjoConecta/internal/domain/repository"
	"github.com/amartindev/TenjoConecta/internal/domain/search"
	"github.com/amartindev/TenjoConecta/pkg/logger"
)

// NewLogger devuelve un logger silencioso para los tests.
func NewLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// FakeBusinessRepo
// ──────────────────────────────────────────────────────────────────────────────

// FakeBusinessRepo implementación en memoria de repository.BusinessRepository.
type FakeBusinessRepo struct {
	mu         sync.Mutex
	Businesses map[string]*entity.Business
	Deleted    []string // ids borrados, en orden

	CreateErr error
	DeleteErr error
	SearchErr error
}

var _ repository.BusinessRepository = (*FakeBusinessRepo)(nil)

// NewFakeBusinessRepo crea el repositorio vacío.
func NewFakeBusinessRepo() *FakeBusinessRepo {
	return &FakeBusinessRepo{Businesses: make(map[string]*entity.Business)}
}

func (r *FakeBusinessRepo) Create(_ context.Context, b *entity.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	cp := *b
	r.Businesses[b.ID] = &cp
	return nil
}

func (r *FakeBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.Businesses[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *FakeBusinessRepo) GetByName(_ context.Context, name string) (*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := search.Fold(strings.ToLower(name))
	for _, b := range r.Businesses {
		if search.Fold(strings.ToLower(b.Name)) == want {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *FakeBusinessRepo) Search(_ context.Context, f search.Filter) ([]*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SearchErr != nil {
		return nil, r.SearchErr
	}
	var out []*entity.Business
	for _, b := range r.Businesses {
		if b.Status != entity.StatusApproved {
			continue
		}
		if f.Category != "" && b.Category != f.Category {
			continue
		}
		if !matchesAny(b, f.Any) {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sortPremiumFirst(out)
	return out, nil
}

func (r *FakeBusinessRepo) ListFeatured(_ context.Context, limit int) ([]*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Business
	for _, b := range r.Businesses {
		if b.Status == entity.StatusApproved && b.IsPremium {
			cp := *b
			out = append(out, &cp)
		}
	}
	sortPremiumFirst(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *FakeBusinessRepo) ListAll(_ context.Context) ([]*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Business
	for _, b := range r.Businesses {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *FakeBusinessRepo) Update(_ context.Context, b *entity.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Businesses[b.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *b
	r.Businesses[b.ID] = &cp
	return nil
}

func (r *FakeBusinessRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.Businesses[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *FakeBusinessRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	delete(r.Businesses, id)
	r.Deleted = append(r.Deleted, id)
	return nil
}

func matchesAny(b *entity.Business, conds []search.Condition) bool {
	if len(conds) == 0 {
		return true
	}
	name := search.Fold(strings.ToLower(b.Name))
	desc := search.Fold(strings.ToLower(b.Description))
	for _, c := range conds {
		switch c.Op {
		case search.OpCategoryEq:
			if b.Category == c.Value {
				return true
			}
		case search.OpNameContains:
			if strings.Contains(name, strings.ToLower(c.Value)) {
				return true
			}
		case search.OpDescriptionContains:
			if strings.Contains(desc, strings.ToLower(c.Value)) {
				return true
			}
		}
	}
	return false
}

func sortPremiumFirst(bs []*entity.Business) {
	sort.SliceStable(bs, func(i, j int) bool {
		if bs[i].IsPremium != bs[j].IsPremium {
			return bs[i].IsPremium
		}
		return bs[i].CreatedAt.After(bs[j].CreatedAt)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// FakeImageRepo
// ──────────────────────────────────────────────────────────────────────────────

// FakeImageRepo implementación en memoria de repository.BusinessImageRepository.
// FailCreateAt > 0 hace fallar el N-ésimo Create (contando desde 1), para
// probar la compensación de registros parciales.
type FakeImageRepo struct {
	mu      sync.Mutex
	Images  map[string]*entity.BusinessImage
	creates int

	FailCreateAt int
	SetMainErr   error
	ClearMainErr error
}

var _ repository.BusinessImageRepository = (*FakeImageRepo)(nil)

// NewFakeImageRepo crea el repositorio vacío.
func NewFakeImageRepo() *FakeImageRepo {
	return &FakeImageRepo{Images: make(map[string]*entity.BusinessImage)}
}

func (r *FakeImageRepo) Create(_ context.Context, img *entity.BusinessImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.FailCreateAt > 0 && r.creates == r.FailCreateAt {
		return errors.New("fallo inyectado en create")
	}
	cp := *img
	r.Images[img.ID] = &cp
	return nil
}

func (r *FakeImageRepo) GetByID(_ context.Context, id string) (*entity.BusinessImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.Images[id]
	if !ok {
		return nil, nil
	}
	cp := *img
	return &cp, nil
}

func (r *FakeImageRepo) ListAll(_ context.Context) ([]*entity.BusinessImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.BusinessImage
	for _, img := range r.Images {
		cp := *img
		out = append(out, &cp)
	}
	sortImages(out)
	return out, nil
}

func (r *FakeImageRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.BusinessImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.BusinessImage
	for _, img := range r.Images {
		if img.BusinessID == businessID {
			cp := *img
			out = append(out, &cp)
		}
	}
	sortImages(out)
	return out, nil
}

func (r *FakeImageRepo) ClearMain(_ context.Context, businessID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ClearMainErr != nil {
		return r.ClearMainErr
	}
	for _, img := range r.Images {
		if img.BusinessID == businessID {
			img.IsMain = false
		}
	}
	return nil
}

func (r *FakeImageRepo) SetMain(_ context.Context, imageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SetMainErr != nil {
		return r.SetMainErr
	}
	img, ok := r.Images[imageID]
	if !ok {
		return domain.ErrNotFound
	}
	img.IsMain = true
	return nil
}

func (r *FakeImageRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Images, id)
	return nil
}

func (r *FakeImageRepo) DeleteByBusiness(_ context.Context, businessID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, img := range r.Images {
		if img.BusinessID == businessID {
			delete(r.Images, id)
		}
	}
	return nil
}

// MainCount cuenta las imágenes principales del negocio.
func (r *FakeImageRepo) MainCount(businessID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, img := range r.Images {
		if img.BusinessID == businessID && img.IsMain {
			n++
		}
	}
	return n
}

func sortImages(imgs []*entity.BusinessImage) {
	sort.SliceStable(imgs, func(i, j int) bool {
		if imgs[i].IsMain != imgs[j].IsMain {
			return imgs[i].IsMain
		}
		return imgs[i].CreatedAt.Before(imgs[j].CreatedAt)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// FakePdfRepo
// ──────────────────────────────────────────────────────────────────────────────

// FakePdfRepo implementación en memoria de repository.BusinessPdfRepository.
type FakePdfRepo struct {
	mu   sync.Mutex
	Pdfs map[string]*entity.BusinessPdf // clave: business_id

	UpsertErr error
}

var _ repository.BusinessPdfRepository = (*FakePdfRepo)(nil)

// NewFakePdfRepo crea el repositorio vacío.
func NewFakePdfRepo() *FakePdfRepo {
	return &FakePdfRepo{Pdfs: make(map[string]*entity.BusinessPdf)}
}

func (r *FakePdfRepo) Upsert(_ context.Context, pdf *entity.BusinessPdf) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpsertErr != nil {
		return r.UpsertErr
	}
	cp := *pdf
	r.Pdfs[pdf.BusinessID] = &cp
	return nil
}

func (r *FakePdfRepo) GetByBusiness(_ context.Context, businessID string) (*entity.BusinessPdf, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pdf, ok := r.Pdfs[businessID]
	if !ok {
		return nil, nil
	}
	cp := *pdf
	return &cp, nil
}

func (r *FakePdfRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for bid, pdf := range r.Pdfs {
		if pdf.ID == id {
			delete(r.Pdfs, bid)
		}
	}
	return nil
}

func (r *FakePdfRepo) DeleteByBusiness(_ context.Context, businessID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Pdfs, businessID)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// FakeStorage
// ──────────────────────────────────────────────────────────────────────────────

// FakeStorage implementación en memoria de storage.ObjectStorage. Las claves
// son "<bucket>/<path>". FailUploadAt > 0 hace fallar el N-ésimo Upload.
type FakeStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	uploads int

	FailUploadAt int
	RemoveErr    error
}

var _ storage.ObjectStorage = (*FakeStorage)(nil)

// NewFakeStorage crea el almacenamiento vacío.
func NewFakeStorage() *FakeStorage {
	return &FakeStorage{Objects: make(map[string][]byte)}
}

func (s *FakeStorage) Upload(_ context.Context, bucket storage.Bucket, path, _ string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads++
	if s.FailUploadAt > 0 && s.uploads == s.FailUploadAt {
		return errors.New("fallo inyectado en upload")
	}
	s.Objects[string(bucket)+"/"+path] = append([]byte(nil), data...)
	return nil
}

func (s *FakeStorage) Remove(_ context.Context, bucket storage.Bucket, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	for _, p := range paths {
		delete(s.Objects, string(bucket)+"/"+p)
	}
	return nil
}

func (s *FakeStorage) PublicURL(bucket storage.Bucket, path string) string {
	return "https://cdn.test/" + string(bucket) + "/" + path
}

// Len devuelve cuántos objetos hay almacenados.
func (s *FakeStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Objects)
}

// ──────────────────────────────────────────────────────────────────────────────
// FakeTxRunner
// ──────────────────────────────────────────────────────────────────────────────

// FakeTxRunner ejecuta el closure sobre el FakeImageRepo dado y simula el
// rollback restaurando el estado previo si el closure falla.
type FakeTxRunner struct {
	Images *FakeImageRepo
	Calls  int
}

// RunImages ejecuta fn con semántica transaccional sobre el fake.
func (t *FakeTxRunner) RunImages(_ context.Context, fn func(repository.BusinessImageRepository) error) error {
	t.Calls++
	snapshot := t.Images.snapshot()
	if err := fn(t.Images); err != nil {
		t.Images.restore(snapshot)
		return err
	}
	return nil
}

func (r *FakeImageRepo) snapshot() map[string]entity.BusinessImage {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[string]entity.BusinessImage, len(r.Images))
	for id, img := range r.Images {
		snap[id] = *img
	}
	return snap
}

func (r *FakeImageRepo) restore(snap map[string]entity.BusinessImage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Images = make(map[string]*entity.BusinessImage, len(snap))
	for id, img := range snap {
		cp := img
		r.Images[id] = &cp
	}
}
