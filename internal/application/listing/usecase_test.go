package listing_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amartindev/TenjoConecta/internal/application/apptest"
	"github.com/amartindev/TenjoConecta/internal/application/listing"
	"github.com/amartindev/TenjoConecta/internal/domain"
	"github.com/amartindev/TenjoConecta/internal/domain/entity"
)

type fixture struct {
	businesses *apptest.FakeBusinessRepo
	images     *apptest.FakeImageRepo
	pdfs       *apptest.FakePdfRepo
	uc         *listing.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		businesses: apptest.NewFakeBusinessRepo(),
		images:     apptest.NewFakeImageRepo(),
		pdfs:       apptest.NewFakePdfRepo(),
	}
	f.uc = listing.NewUseCase(f.businesses, f.images, f.pdfs)
	return f
}

type seedOpts struct {
	name     string
	category string
	desc     string
	status   string
	premium  bool
	creado   time.Time
}

func (f *fixture) seed(t *testing.T, o seedOpts) string {
	t.Helper()
	if o.status == "" {
		o.status = entity.StatusApproved
	}
	if o.category == "" {
		o.category = "Restaurantes"
	}
	b := &entity.Business{
		ID:          uuid.New().String(),
		Name:        o.name,
		Description: o.desc,
		Category:    o.category,
		Whatsapp:    "3101234567",
		Status:      o.status,
		IsPremium:   o.premium,
		CreatedAt:   o.creado,
		UpdatedAt:   o.creado,
	}
	require.NoError(t, f.businesses.Create(context.Background(), b))
	return b.ID
}

func (f *fixture) seedMainImage(t *testing.T, businessID, url string) {
	t.Helper()
	require.NoError(t, f.images.Create(context.Background(), &entity.BusinessImage{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		URL:        url,
		IsMain:     true,
		CreatedAt:  time.Now(),
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda pública
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_SoloAprobados(t *testing.T) {
	f := newFixture()
	f.seed(t, seedOpts{name: "Café Luna"})
	f.seed(t, seedOpts{name: "Tienda Oculta", status: entity.StatusPending})
	f.seed(t, seedOpts{name: "Bar Cerrado", status: entity.StatusPaused})

	resp, err := f.uc.Search(context.Background(), "", "all")
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Café Luna", resp.Items[0].Name)
}

func TestSearch_PremiumPrimero(t *testing.T) {
	f := newFixture()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.seed(t, seedOpts{name: "Normal Nuevo", creado: base.AddDate(0, 2, 0)})
	f.seed(t, seedOpts{name: "Premium Viejo", premium: true, creado: base})

	resp, err := f.uc.Search(context.Background(), "", "all")
	require.NoError(t, err)

	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Premium Viejo", resp.Items[0].Name,
		"premium va primero aunque sea más antiguo")
}

func TestSearch_PorPalabraClave(t *testing.T) {
	f := newFixture()
	f.seed(t, seedOpts{name: "Donde Rosa", category: "Restaurantes"})
	f.seed(t, seedOpts{name: "Veterinaria Patas", category: "Mascotas"})

	resp, err := f.uc.Search(context.Background(), "almuerzo", "all")
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total, "'almuerzo' expande a la categoría Restaurantes")
	assert.Equal(t, "Donde Rosa", resp.Items[0].Name)
}

func TestSearch_CoincidePorDescripcion(t *testing.T) {
	f := newFixture()
	f.seed(t, seedOpts{name: "Donde Rosa", desc: "Empanadas y jugos naturales"})
	f.seed(t, seedOpts{name: "Tienda Sol", desc: "Abarrotes"})

	resp, err := f.uc.Search(context.Background(), "empanadas", "all")
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total, "un término libre también busca en la descripción")
	assert.Equal(t, "Donde Rosa", resp.Items[0].Name)
}

func TestSearch_TextoSinTildesEncuentraConTildes(t *testing.T) {
	f := newFixture()
	f.seed(t, seedOpts{name: "Cafetería El Parque"})

	resp, err := f.uc.Search(context.Background(), "cafeteria", "all")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestSearch_AdjuntaImagenPrincipal(t *testing.T) {
	f := newFixture()
	id := f.seed(t, seedOpts{name: "Café Luna"})
	f.seedMainImage(t, id, "https://cdn.test/images/portada.jpg")

	resp, err := f.uc.Search(context.Background(), "", "all")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "https://cdn.test/images/portada.jpg", resp.Items[0].ImageURL)
}

// Ante un fallo del backend el listado vuelve vacío junto con el error.
func TestSearch_FalloDevuelveListaVacia(t *testing.T) {
	f := newFixture()
	f.businesses.SearchErr = domain.ErrConflict

	resp, err := f.uc.Search(context.Background(), "", "all")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Destacados
// ──────────────────────────────────────────────────────────────────────────────

func TestFeatured_SoloPremiumAprobados(t *testing.T) {
	f := newFixture()
	f.seed(t, seedOpts{name: "Premium A", premium: true})
	f.seed(t, seedOpts{name: "Normal"})
	f.seed(t, seedOpts{name: "Premium Pendiente", premium: true, status: entity.StatusPending})

	resp, err := f.uc.Featured(context.Background(), 10)
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Premium A", resp.Items[0].Name)
}

func TestFeatured_RespetaElLimite(t *testing.T) {
	f := newFixture()
	for i := 0; i < 5; i++ {
		f.seed(t, seedOpts{name: "Premium " + string(rune('A'+i)), premium: true})
	}

	resp, err := f.uc.Featured(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
}

func TestFeatured_LimiteInvalidoUsaElDefault(t *testing.T) {
	f := newFixture()
	f.seed(t, seedOpts{name: "Premium", premium: true})

	resp, err := f.uc.Featured(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Detalle
// ──────────────────────────────────────────────────────────────────────────────

func TestDetail_PorSlugConGuiones(t *testing.T) {
	f := newFixture()
	id := f.seed(t, seedOpts{name: "Café Luna"})
	f.seedMainImage(t, id, "https://cdn.test/images/portada.jpg")

	resp, err := f.uc.Detail(context.Background(), "cafe-luna")
	require.NoError(t, err)
	assert.Equal(t, "Café Luna", resp.Business.Name,
		"el slug se resuelve sin mayúsculas ni tildes")
}

func TestDetail_GaleriaConPrincipalPrimero(t *testing.T) {
	f := newFixture()
	id := f.seed(t, seedOpts{name: "Café Luna"})
	f.seedMainImage(t, id, "https://cdn.test/images/portada.jpg")
	require.NoError(t, f.images.Create(context.Background(), &entity.BusinessImage{
		ID: uuid.New().String(), BusinessID: id,
		URL: "https://cdn.test/images/interior.jpg", CreatedAt: time.Now(),
	}))

	resp, err := f.uc.Detail(context.Background(), "Café Luna")
	require.NoError(t, err)

	require.NotEmpty(t, resp.Photos)
	assert.Equal(t, "https://cdn.test/images/portada.jpg", resp.Photos[0].URL,
		"la imagen principal encabeza la galería")
}

func TestDetail_IncluyePdfSiExiste(t *testing.T) {
	f := newFixture()
	id := f.seed(t, seedOpts{name: "Café Luna"})
	require.NoError(t, f.pdfs.Upsert(context.Background(), &entity.BusinessPdf{
		ID: uuid.New().String(), BusinessID: id,
		URL: "https://cdn.test/pdfs/menu.pdf", CreatedAt: time.Now(),
	}))

	resp, err := f.uc.Detail(context.Background(), "Café Luna")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/pdfs/menu.pdf", resp.PdfURL)
}

func TestDetail_NombreDesconocido(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Detail(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// JoinMainImage: función pura
// ──────────────────────────────────────────────────────────────────────────────

func TestJoinMainImage_NoModificaLasEntradas(t *testing.T) {
	b := &entity.Business{ID: "b1", Name: "Café Luna"}
	img := &entity.BusinessImage{ID: "i1", BusinessID: "b1", URL: "u", IsMain: true}

	out := listing.JoinMainImage([]*entity.Business{b}, []*entity.BusinessImage{img})

	require.Len(t, out, 1)
	assert.Equal(t, "u", out[0].ImageURL)
	assert.Empty(t, b.ImageURL, "la entrada original no se modifica")
}

func TestJoinMainImage_EsIdempotente(t *testing.T) {
	bs := []*entity.Business{{ID: "b1"}, {ID: "b2"}}
	imgs := []*entity.BusinessImage{{ID: "i1", BusinessID: "b1", URL: "u1", IsMain: true}}

	una := listing.JoinMainImage(bs, imgs)
	dos := listing.JoinMainImage(una, imgs)

	require.Len(t, dos, 2)
	assert.Equal(t, una[0].ImageURL, dos[0].ImageURL)
	assert.Equal(t, una[1].ImageURL, dos[1].ImageURL)
}

func TestJoinMainImage_SinPrincipalConservaImageURL(t *testing.T) {
	b := &entity.Business{ID: "b1", ImageURL: "previa"}
	secundaria := &entity.BusinessImage{ID: "i1", BusinessID: "b1", URL: "u", IsMain: false}

	out := listing.JoinMainImage([]*entity.Business{b}, []*entity.BusinessImage{secundaria})
	assert.Equal(t, "previa", out[0].ImageURL,
		"sin imagen principal no se pisa la URL existente")
}
