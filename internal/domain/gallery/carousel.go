package gallery

import "sync"

// Carousel mantiene el índice de la foto visible sobre una secuencia de N
// elementos, con navegación cíclica. El índice es siempre válido para el N
// actual; con N = 0 toda operación deja el índice en 0. Seguro para uso
// concurrente (el avance automático corre en su propia goroutine).
type Carousel struct {
	mu    sync.Mutex
	n     int
	index int
}

// New crea un carrusel sobre una secuencia de n elementos.
func New(n int) *Carousel {
	if n < 0 {
		n = 0
	}
	return &Carousel{n: n}
}

// Len devuelve el tamaño actual de la secuencia.
func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Index devuelve el índice actual.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Next avanza cíclicamente a la siguiente posición.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == 0 {
		c.index = 0
		return 0
	}
	c.index = (c.index + 1) % c.n
	return c.index
}

// Prev retrocede cíclicamente a la posición anterior.
func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == 0 {
		c.index = 0
		return 0
	}
	c.index = (c.index - 1 + c.n) % c.n
	return c.index
}

// JumpTo posiciona el índice directamente. Valores fuera de [0, N) se ignoran.
func (c *Carousel) JumpTo(i int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i >= 0 && i < c.n {
		c.index = i
	}
	return c.index
}

// Resize ajusta el tamaño de la secuencia (ej. tras eliminar una imagen).
// Si el índice queda fuera del nuevo rango, vuelve a 0.
func (c *Carousel) Resize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 0 {
		n = 0
	}
	c.n = n
	if c.index >= n {
		c.index = 0
	}
}
