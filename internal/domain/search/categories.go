package search

// Categories es el conjunto ordenado de categorías válidas del directorio.
var Categories = []string{
	"Restaurantes",
	"Servicios",
	"Productos",
	"Tiendas",
	"Mascotas",
	"Salud",
	"Belleza",
	"Educación",
	"Entretenimiento",
	"Tecnología",
}

// Keywords mapea términos de búsqueda (en minúscula) a una o más categorías,
// para ampliar el recall más allá de la coincidencia literal de texto.
var Keywords = map[string][]string{
	"restaurante":     {"Restaurantes"},
	"almuerzo":        {"Restaurantes"},
	"cena":            {"Restaurantes"},
	"desayuno":        {"Restaurantes"},
	"tienda":          {"Tiendas"},
	"medicina":        {"Salud"},
	"escuela":         {"Educación"},
	"entretenimiento": {"Entretenimiento"},
	"tecnología":      {"Tecnología"},
	"mascota":         {"Mascotas"},
	"perro":           {"Mascotas"},
}

// ValidCategory indica si c es una categoría conocida del directorio.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}
