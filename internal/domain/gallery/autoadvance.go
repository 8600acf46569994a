package gallery

import (
	"context"
	"sync"
	"time"
)

// DefaultAdvanceInterval es el intervalo del carrusel de destacados.
const DefaultAdvanceInterval = 5 * time.Second

// AutoAdvancer avanza un Carousel en un intervalo fijo mientras se cumpla
// una precondición (sin búsqueda activa y con al menos un destacado).
// Start lanza el temporizador; Stop lo cancela y es seguro llamarlo varias
// veces. El avance se detiene solo (sin consumir el tick) cuando la
// precondición deja de cumplirse, y siempre al cancelar el contexto.
type AutoAdvancer struct {
	carousel *Carousel
	interval time.Duration
	allowed  func() bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAutoAdvancer crea el avance automático. allowed se evalúa en cada tick;
// nil equivale a "siempre permitido". interval <= 0 usa DefaultAdvanceInterval.
func NewAutoAdvancer(c *Carousel, interval time.Duration, allowed func() bool) *AutoAdvancer {
	if interval <= 0 {
		interval = DefaultAdvanceInterval
	}
	return &AutoAdvancer{carousel: c, interval: interval, allowed: allowed}
}

// Start arranca el temporizador. Llamadas repetidas sin Stop intermedio
// reinician el ciclo anterior.
func (a *AutoAdvancer) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.cancel = cancel
	a.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if a.allowed != nil && !a.allowed() {
					continue
				}
				if a.carousel.Len() > 0 {
					a.carousel.Next()
				}
			}
		}
	}()
}

// Stop cancela el temporizador y espera a que el ciclo termine.
func (a *AutoAdvancer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *AutoAdvancer) stopLocked() {
	if a.cancel != nil {
		a.cancel()
		<-a.done
		a.cancel = nil
		a.done = nil
	}
}
