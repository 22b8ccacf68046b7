package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/pkg/validator"
)

func TestValidate_MovimientoValido(t *testing.T) {
	v := validator.New()

	err := v.Validate(&dto.RegisterMovementRequest{ProductID: 1, Type: "IN", Quantity: 5})
	assert.NoError(t, err)
}

func TestValidate_TipoFueraDeEnum(t *testing.T) {
	v := validator.New()

	err := v.Validate(&dto.RegisterMovementRequest{ProductID: 1, Type: "TRANSFER", Quantity: 5})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Type")
}

func TestValidate_CamposRequeridos(t *testing.T) {
	v := validator.New()

	err := v.Validate(&dto.RegisterMovementRequest{})
	assert.Error(t, err)
}

func TestValidate_EstadoDePedido(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Validate(&dto.UpdateOrderStatusRequest{Status: "SHIPPED"}))
	assert.Error(t, v.Validate(&dto.UpdateOrderStatusRequest{Status: "CANCELLED"}))
}
