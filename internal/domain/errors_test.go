package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain"
)

func TestInsufficientStockError_Mensaje(t *testing.T) {
	err := &domain.InsufficientStockError{ProductName: "Cemento gris", Current: 5, Requested: 10}

	assert.Equal(t, "stock insuficiente para el producto 'Cemento gris'. Stock actual: 5", err.Error())
}

func TestInsufficientStockError_Is(t *testing.T) {
	var err error = &domain.InsufficientStockError{ProductName: "Cemento", Current: 0, Requested: 1}

	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.False(t, errors.Is(err, domain.ErrNotFound))

	// Sigue funcionando a través de wrapping.
	wrapped := fmt.Errorf("registrar movimiento: %w", err)
	assert.True(t, errors.Is(wrapped, domain.ErrInsufficientStock))

	var target *domain.InsufficientStockError
	assert.True(t, errors.As(wrapped, &target))
	assert.EqualValues(t, 0, target.Current)
}
