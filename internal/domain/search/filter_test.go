package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amartindev/TenjoConecta/internal/domain/search"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Build — traducción de texto libre a filtro
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_VacioEsFiltroNeutro(t *testing.T) {
	f := search.Build("", search.AllCategories)

	assert.Empty(t, f.Category, "categoría 'all' no filtra")
	assert.Empty(t, f.Any, "sin texto no hay condiciones")
}

func TestBuild_CategoriaSeleccionada(t *testing.T) {
	f := search.Build("", "Restaurantes")
	assert.Equal(t, "Restaurantes", f.Category)
}

func TestBuild_PalabraClaveExpandeACategoria(t *testing.T) {
	f := search.Build("almuerzo", search.AllCategories)

	require.Len(t, f.Any, 1)
	assert.Equal(t, search.OpCategoryEq, f.Any[0].Op,
		"'almuerzo' debe buscar por categoría, no por texto")
	assert.Equal(t, "Restaurantes", f.Any[0].Value)
}

func TestBuild_TerminoLibreGeneraNombreYDescripcion(t *testing.T) {
	f := search.Build("ferretería", search.AllCategories)

	require.Len(t, f.Any, 2)
	assert.Equal(t, search.OpNameContains, f.Any[0].Op)
	assert.Equal(t, "ferreteria", f.Any[0].Value, "el término se guarda sin tildes")
	assert.Equal(t, search.OpDescriptionContains, f.Any[1].Op)
	assert.Equal(t, "ferreteria", f.Any[1].Value)
}

func TestBuild_MayusculasNoImportan(t *testing.T) {
	f := search.Build("PERRO", search.AllCategories)

	require.Len(t, f.Any, 1)
	assert.Equal(t, search.OpCategoryEq, f.Any[0].Op)
	assert.Equal(t, "Mascotas", f.Any[0].Value)
}

// Cada token aporta sus condiciones; todas se combinan con OR.
func TestBuild_VariosTokensSeAcumulan(t *testing.T) {
	f := search.Build("cena artesanías", "Restaurantes")

	assert.Equal(t, "Restaurantes", f.Category)
	require.Len(t, f.Any, 3, "1 por la palabra clave + 2 por el término libre")
	assert.Equal(t, search.OpCategoryEq, f.Any[0].Op)
	assert.Equal(t, "artesanias", f.Any[1].Value)
}

func TestBuild_SoloEspaciosEsNeutro(t *testing.T) {
	f := search.Build("   ", "all")
	assert.Empty(t, f.Any)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Fold — normalización de tildes
// ──────────────────────────────────────────────────────────────────────────────

func TestFold(t *testing.T) {
	casos := map[string]string{
		"cafetería":   "cafeteria",
		"Café":        "Cafe",
		"peluquería":  "peluqueria",
		"ñandú":       "nandu", // NFD también descompone la eñe
		"sin tildes":  "sin tildes",
		"":            "",
		"Tecnología":  "Tecnologia",
		"más átomos…": "mas atomos…",
	}
	for in, want := range casos {
		assert.Equal(t, want, search.Fold(in), "Fold(%q)", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestValidCategory(t *testing.T) {
	assert.True(t, search.ValidCategory("Mascotas"))
	assert.True(t, search.ValidCategory("Educación"))
	assert.False(t, search.ValidCategory("mascotas"), "la comparación es exacta")
	assert.False(t, search.ValidCategory("Viajes"))
	assert.False(t, search.ValidCategory(""))
}

func TestKeywords_ApuntanACategoriasValidas(t *testing.T) {
	for term, cats := range search.Keywords {
		require.NotEmpty(t, cats, "el término %q no mapea a nada", term)
		for _, cat := range cats {
			assert.True(t, search.ValidCategory(cat),
				"el término %q apunta a la categoría desconocida %q", term, cat)
		}
	}
}
