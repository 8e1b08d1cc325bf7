package cnpj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hspsystem/gestor-api/pkg/cnpj"
)

func TestClean_QuitaMascara(t *testing.T) {
	assert.Equal(t, "11222333000181", cnpj.Clean("11.222.333/0001-81"))
	assert.Equal(t, "11222333000181", cnpj.Clean("11222333000181"))
	assert.Equal(t, "", cnpj.Clean("abc.-/"))
}

func TestIsWellFormed(t *testing.T) {
	assert.True(t, cnpj.IsWellFormed("11.222.333/0001-81"))
	assert.False(t, cnpj.IsWellFormed("112223330001"), "12 dígitos no es un CNPJ")
	assert.False(t, cnpj.IsWellFormed(""))
}

func TestValidate_DigitosCorrectos(t *testing.T) {
	// CNPJ con dígitos de verificación válidos (módulo 11)
	require.NoError(t, cnpj.Validate("11.222.333/0001-81"))
	require.NoError(t, cnpj.Validate("11222333000181"))
}

func TestValidate_DigitoIncorrecto(t *testing.T) {
	err := cnpj.Validate("11.222.333/0001-80")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dígito de verificación")
}

func TestValidate_LargoIncorrecto(t *testing.T) {
	err := cnpj.Validate("123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "14 dígitos")
}

func TestFormat_AplicaMascara(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", cnpj.Format("11222333000181"))
	// entrada sin 14 dígitos: se devuelven solo los dígitos
	assert.Equal(t, "123", cnpj.Format("1-2-3"))
}
