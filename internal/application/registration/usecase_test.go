package registration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amartindev/TenjoConecta/internal/application/apptest"
	"github.com/amartindev/TenjoConecta/internal/application/dto"
	"github.com/amartindev/TenjoConecta/internal/application/registration"
	"github.com/amartindev/TenjoConecta/internal/domain"
	"github.com/amartindev/TenjoConecta/internal/domain/entity"
)

type fixture struct {
	businesses *apptest.FakeBusinessRepo
	images     *apptest.FakeImageRepo
	pdfs       *apptest.FakePdfRepo
	store      *apptest.FakeStorage
	uc         *registration.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		businesses: apptest.NewFakeBusinessRepo(),
		images:     apptest.NewFakeImageRepo(),
		pdfs:       apptest.NewFakePdfRepo(),
		store:      apptest.NewFakeStorage(),
	}
	f.uc = registration.NewUseCase(f.businesses, f.images, f.pdfs, f.store, apptest.NewLogger())
	return f
}

func solicitudCafeLuna() dto.RegisterBusinessRequest {
	return dto.RegisterBusinessRequest{
		Name:        "Café Luna",
		Description: "Café artesanal en el centro",
		Category:    "Restaurantes",
		Address:     "Calle 3 # 4-21, Tenjo",
		Schedule:    "L-D 8am-8pm",
		Whatsapp:    "+57 310 123 4567",
		Email:       "cafe.luna@example.com",
	}
}

func imagen(nombre string) dto.FileUpload {
	return dto.FileUpload{Name: nombre, ContentType: "image/jpeg", Data: []byte("jpegdata")}
}

func pdfMenu() *dto.FileUpload {
	return &dto.FileUpload{Name: "menu.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro completo
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CompletoConImagenesYPdf(t *testing.T) {
	f := newFixture()
	fotos := []dto.FileUpload{imagen("frente.jpg"), imagen("interior.jpg"), imagen("menu-dia.jpg")}

	resp, err := f.uc.Register(context.Background(), solicitudCafeLuna(), fotos, pdfMenu())
	require.NoError(t, err)

	assert.Equal(t, "Café Luna", resp.Business.Name)
	assert.Equal(t, entity.StatusPending, resp.Business.Status,
		"todo registro nace pendiente de moderación")
	assert.Equal(t, "3101234567", resp.Business.Whatsapp,
		"el teléfono se guarda normalizado, sin indicativo")

	require.Len(t, resp.Images, 3)
	assert.True(t, resp.Images[0].IsMain, "la primera imagen es la principal")
	assert.False(t, resp.Images[1].IsMain)
	assert.False(t, resp.Images[2].IsMain)
	require.NotNil(t, resp.Pdf)

	// Persistencia: 1 negocio, 3 filas de imagen, 1 pdf, 4 objetos subidos.
	assert.Len(t, f.businesses.Businesses, 1)
	assert.Len(t, f.images.Images, 3)
	assert.Len(t, f.pdfs.Pdfs, 1)
	assert.Equal(t, 4, f.store.Len())
	assert.Equal(t, 1, f.images.MainCount(resp.Business.ID),
		"exactamente una imagen principal")
}

func TestRegister_SinPdfEsValido(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Register(context.Background(), solicitudCafeLuna(), []dto.FileUpload{imagen("a.jpg")}, nil)
	require.NoError(t, err)

	assert.Nil(t, resp.Pdf)
	assert.Empty(t, f.pdfs.Pdfs)
}

func TestRegister_SinImagenesEsValido(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Register(context.Background(), solicitudCafeLuna(), nil, nil)
	require.NoError(t, err)

	assert.Empty(t, resp.Images)
	assert.Len(t, f.businesses.Businesses, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación: nada se crea con entrada inválida
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CategoriaInvalida(t *testing.T) {
	f := newFixture()
	in := solicitudCafeLuna()
	in.Category = "Astronáutica"

	_, err := f.uc.Register(context.Background(), in, nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.businesses.Businesses, "la validación ocurre antes de crear nada")
}

func TestRegister_TelefonoCorto(t *testing.T) {
	f := newFixture()
	in := solicitudCafeLuna()
	in.Whatsapp = "12345"

	_, err := f.uc.Register(context.Background(), in, nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.businesses.Businesses)
}

func TestRegister_ImagenConTipoInvalido(t *testing.T) {
	f := newFixture()
	mala := dto.FileUpload{Name: "virus.exe", ContentType: "application/octet-stream", Data: []byte("x")}

	_, err := f.uc.Register(context.Background(), solicitudCafeLuna(), []dto.FileUpload{mala}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.businesses.Businesses)
	assert.Zero(t, f.store.Len(), "ningún archivo debe subirse si la validación falla")
}

func TestRegister_ImagenDemasiadoGrande(t *testing.T) {
	f := newFixture()
	grande := dto.FileUpload{Name: "panoramica.jpg", ContentType: "image/jpeg", Data: make([]byte, dto.MaxFileSize+1)}

	_, err := f.uc.Register(context.Background(), solicitudCafeLuna(), []dto.FileUpload{grande}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.businesses.Businesses)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compensación: un fallo a mitad de camino no deja registros parciales
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_FalloSubiendoSegundaImagen_NoDejaNada(t *testing.T) {
	f := newFixture()
	f.store.FailUploadAt = 2
	fotos := []dto.FileUpload{imagen("a.jpg"), imagen("b.jpg"), imagen("c.jpg")}

	_, err := f.uc.Register(context.Background(), solicitudCafeLuna(), fotos, nil)
	require.Error(t, err)

	assert.Empty(t, f.businesses.Businesses, "el negocio parcial debe eliminarse")
	assert.Empty(t, f.images.Images, "las filas de imagen ya creadas deben eliminarse")
	assert.Zero(t, f.store.Len(), "los objetos ya subidos deben eliminarse")
	assert.Len(t, f.businesses.Deleted, 1, "la compensación borra el negocio exactamente una vez")
}

func TestRegister_FalloInsertandoFilaDeImagen_NoDejaNada(t *testing.T) {
	f := newFixture()
	f.images.FailCreateAt = 2
	fotos := []dto.FileUpload{imagen("a.jpg"), imagen("b.jpg")}

	_, err := f.uc.Register(context.Background(), solicitudCafeLuna(), fotos, nil)
	require.Error(t, err)

	assert.Empty(t, f.businesses.Businesses)
	assert.Empty(t, f.images.Images)
}

func TestRegister_FalloEnPdf_DeshaceTodoElRegistro(t *testing.T) {
	f := newFixture()
	f.pdfs.UpsertErr = errAssert
	fotos := []dto.FileUpload{imagen("a.jpg")}

	_, err := f.uc.Register(context.Background(), solicitudCafeLuna(), fotos, pdfMenu())
	require.Error(t, err)

	assert.Empty(t, f.businesses.Businesses, "el registro es todo o nada: también con fallo en el pdf")
	assert.Empty(t, f.images.Images)
	assert.Zero(t, f.store.Len())
}

// La compensación no oculta el error original aunque ella misma falle.
func TestRegister_FalloDeCompensacion_ReportaElErrorOriginal(t *testing.T) {
	f := newFixture()
	f.store.FailUploadAt = 1
	f.store.RemoveErr = errAssert
	f.businesses.DeleteErr = errAssert

	_, err := f.uc.Register(context.Background(), solicitudCafeLuna(), []dto.FileUpload{imagen("a.jpg")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subir imagen", "el error reportado es el del paso que falló")
}

var errAssert = assertError{}

type assertError struct{}

func (assertError) Error() string { return "fallo inyectado" }
