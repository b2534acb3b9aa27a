package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken("lojista-1", false)
	require.NoError(t, err)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, "lojista-1", claims.LojistaID)
	assert.False(t, claims.IsAdmin)
}

func TestTokenDeAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(UsuarioAdmin, true)
	require.NoError(t, err)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, UsuarioAdmin, claims.LojistaID)
	assert.True(t, claims.IsAdmin)
}

func TestTokenAdulteradoEhRejeitado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken("lojista-1", false)
	require.NoError(t, err)

	_, err = ValidarToken(token + "x")
	require.Error(t, err)
}

func TestTokenComOutroSegredoEhRejeitado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	token, err := GerarToken("lojista-1", false)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "outro-segredo")
	_, err = ValidarToken(token)
	require.Error(t, err)
}
