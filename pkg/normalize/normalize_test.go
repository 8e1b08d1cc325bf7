package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hspsystem/gestor-api/pkg/normalize"
)

func TestFold_QuitaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "sao joao", normalize.Fold("São João"))
	assert.Equal(t, "acai organico", normalize.Fold("Açaí Orgânico"))
	assert.Equal(t, "ya minusculas", normalize.Fold("ya minusculas"))
}

func TestContains_InsensibleAAcentos(t *testing.T) {
	assert.True(t, normalize.Contains("Padaria São João Ltda", "sao joao"))
	assert.True(t, normalize.Contains("AÇAÍ do Norte", "acai"))
	assert.False(t, normalize.Contains("Mercado Central", "acai"))
}
