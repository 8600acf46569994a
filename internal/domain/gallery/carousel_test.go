package gallery_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amartindev/TenjoConecta/internal/domain/gallery"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Carousel — navegación cíclica
// ──────────────────────────────────────────────────────────────────────────────

func TestCarousel_NextEsCiclico(t *testing.T) {
	c := gallery.New(3)

	assert.Equal(t, 0, c.Index(), "el carrusel arranca en la primera foto")
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, 0, c.Next(), "después de la última vuelve a la primera")
}

func TestCarousel_PrevEsCiclico(t *testing.T) {
	c := gallery.New(3)

	assert.Equal(t, 2, c.Prev(), "retroceder desde la primera va a la última")
	assert.Equal(t, 1, c.Prev())
	assert.Equal(t, 0, c.Prev())
}

// N vueltas completas de Next dejan el índice donde empezó.
func TestCarousel_VueltaCompletaVuelveAlInicio(t *testing.T) {
	c := gallery.New(5)
	c.JumpTo(2)

	for i := 0; i < 5; i++ {
		c.Next()
	}
	assert.Equal(t, 2, c.Index(), "N avances sobre N elementos es la identidad")
}

func TestCarousel_JumpToValido(t *testing.T) {
	c := gallery.New(4)
	assert.Equal(t, 3, c.JumpTo(3))
	assert.Equal(t, 3, c.Index())
}

func TestCarousel_JumpToFueraDeRangoSeIgnora(t *testing.T) {
	c := gallery.New(4)
	c.JumpTo(2)

	assert.Equal(t, 2, c.JumpTo(7), "índice mayor que N no mueve el carrusel")
	assert.Equal(t, 2, c.JumpTo(-1), "índice negativo no mueve el carrusel")
}

func TestCarousel_Vacio(t *testing.T) {
	c := gallery.New(0)

	assert.Equal(t, 0, c.Next(), "con secuencia vacía el índice se queda en 0")
	assert.Equal(t, 0, c.Prev())
	assert.Equal(t, 0, c.JumpTo(0))
}

func TestCarousel_ResizeRecortaElIndice(t *testing.T) {
	c := gallery.New(5)
	c.JumpTo(4)

	// Al quitar elementos el índice que queda fuera vuelve al inicio.
	c.Resize(3)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 0, c.Index())

	// Si el índice sigue siendo válido, no se toca.
	c.JumpTo(1)
	c.Resize(2)
	assert.Equal(t, 1, c.Index())
}

func TestCarousel_ResizeACero(t *testing.T) {
	c := gallery.New(3)
	c.JumpTo(2)
	c.Resize(0)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, c.Next(), "un carrusel vaciado no rota")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AutoAdvancer — avance automático con precondición
// ──────────────────────────────────────────────────────────────────────────────

// esperaAvance espera hasta que el índice cambie o venza el plazo.
func esperaAvance(t *testing.T, c *gallery.Carousel, desde int, plazo time.Duration) bool {
	t.Helper()
	deadline := time.Now().Add(plazo)
	for time.Now().Before(deadline) {
		if c.Index() != desde {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return false
}

func TestAutoAdvancer_AvanzaPeriodicamente(t *testing.T) {
	c := gallery.New(3)
	adv := gallery.NewAutoAdvancer(c, 5*time.Millisecond, nil)

	adv.Start(context.Background())
	defer adv.Stop()

	require.True(t, esperaAvance(t, c, 0, time.Second),
		"el carrusel debe avanzar solo tras el intervalo")
}

func TestAutoAdvancer_RespetaPrecondicion(t *testing.T) {
	c := gallery.New(3)
	var permitido atomic.Bool // false: simula una búsqueda activa

	adv := gallery.NewAutoAdvancer(c, 5*time.Millisecond, permitido.Load)
	adv.Start(context.Background())
	defer adv.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, c.Index(), "con la precondición en falso no debe rotar")

	// Al volver a permitirse, el avance se reanuda sin reiniciar nada.
	permitido.Store(true)
	assert.True(t, esperaAvance(t, c, 0, time.Second),
		"al cumplirse la precondición el avance se reanuda")
}

func TestAutoAdvancer_StopDetieneElAvance(t *testing.T) {
	c := gallery.New(3)
	adv := gallery.NewAutoAdvancer(c, 5*time.Millisecond, nil)

	adv.Start(context.Background())
	require.True(t, esperaAvance(t, c, 0, time.Second))
	adv.Stop()

	quieto := c.Index()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, quieto, c.Index(), "tras Stop el índice no debe moverse")
}

func TestAutoAdvancer_StopEsIdempotente(t *testing.T) {
	c := gallery.New(2)
	adv := gallery.NewAutoAdvancer(c, 5*time.Millisecond, nil)

	adv.Start(context.Background())
	adv.Stop()
	adv.Stop() // segunda llamada no debe bloquear ni entrar en pánico
}

func TestAutoAdvancer_CarruselVacioNoRota(t *testing.T) {
	c := gallery.New(0)
	adv := gallery.NewAutoAdvancer(c, 5*time.Millisecond, nil)

	adv.Start(context.Background())
	defer adv.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, c.Index())
}
