package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Op es el operador de una condición del filtro.
type Op int

const (
	// OpCategoryEq exige igualdad exacta sobre la categoría.
	OpCategoryEq Op = iota
	// OpNameContains coincide por substring (sin mayúsculas ni tildes) en el nombre.
	OpNameContains
	// OpDescriptionContains coincide por substring (sin mayúsculas ni tildes) en la descripción.
	OpDescriptionContains
)

// Condition es una condición atómica del filtro de búsqueda.
type Condition struct {
	Op    Op
	Value string
}

// Filter describe una consulta pública del directorio, independiente del
// proveedor de datos. Siempre restringe a negocios aprobados; Any se combina
// con OR (basta con que un término coincida), y el orden de resultados es
// premium primero.
type Filter struct {
	Category string      // "" = todas las categorías
	Any      []Condition // condiciones OR derivadas del texto de búsqueda
}

// AllCategories es el valor del selector de categoría que no filtra.
const AllCategories = "all"

// Build traduce el texto libre y la categoría seleccionada a un Filter.
//
// El texto se parte por espacios en tokens en minúscula. Un token presente en
// Keywords se expande a condiciones de igualdad sobre sus categorías; uno
// desconocido genera el par nombre-contiene / descripción-contiene. Texto
// vacío y categoría "all" producen el filtro neutro (todos los aprobados).
func Build(searchText, category string) Filter {
	f := Filter{}
	if category != "" && category != AllCategories {
		f.Category = category
	}

	for _, term := range strings.Fields(strings.ToLower(searchText)) {
		if cats, ok := Keywords[term]; ok {
			for _, cat := range cats {
				f.Any = append(f.Any, Condition{Op: OpCategoryEq, Value: cat})
			}
			continue
		}
		folded := Fold(term)
		f.Any = append(f.Any,
			Condition{Op: OpNameContains, Value: folded},
			Condition{Op: OpDescriptionContains, Value: folded},
		)
	}
	return f
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold elimina las marcas diacríticas de s ("cafetería" -> "cafeteria").
// Los términos se comparan contra columnas sin tildes en la base de datos.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}
