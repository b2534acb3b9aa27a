package notificacao

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestMarcarComoLida(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	n1 := Notificacao{UsuarioID: "admin", Tipo: TipoNovoPedido, Titulo: "A", Mensagem: "a"}
	n2 := Notificacao{UsuarioID: "admin", Tipo: TipoNovoPedido, Titulo: "B", Mensagem: "b"}
	require.NoError(t, repo.Criar(&n1))
	require.NoError(t, repo.Criar(&n2))

	require.NoError(t, repo.MarcarComoLida(n1.ID, "admin"))

	// só a notificação marcada muda
	var lida, naoLida Notificacao
	require.NoError(t, db.First(&lida, n1.ID).Error)
	require.NoError(t, db.First(&naoLida, n2.ID).Error)
	assert.True(t, lida.Lida)
	assert.False(t, naoLida.Lida)
}

func TestMarcarComoLidaDeOutroCanal(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	n := Notificacao{UsuarioID: "lojista-1", Tipo: TipoEstoqueBaixo, Titulo: "A", Mensagem: "a"}
	require.NoError(t, repo.Criar(&n))

	err := repo.MarcarComoLida(n.ID, "admin")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var intacta Notificacao
	require.NoError(t, db.First(&intacta, n.ID).Error)
	assert.False(t, intacta.Lida)
}

func TestMarcarTodasComoLidasRespeitaOCanal(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	doAdmin1 := Notificacao{UsuarioID: "admin", Tipo: TipoNovoPedido, Titulo: "A", Mensagem: "a"}
	doAdmin2 := Notificacao{UsuarioID: "admin", Tipo: TipoNovoPedido, Titulo: "B", Mensagem: "b"}
	doLojista := Notificacao{UsuarioID: "lojista-1", Tipo: TipoPedidoEnviado, Titulo: "C", Mensagem: "c"}
	require.NoError(t, repo.Criar(&doAdmin1))
	require.NoError(t, repo.Criar(&doAdmin2))
	require.NoError(t, repo.Criar(&doLojista))

	require.NoError(t, repo.MarcarTodasComoLidas("admin"))

	var naoLidasAdmin, naoLidasLojista int64
	db.Model(&Notificacao{}).Where("usuario_id = ? AND lida = ?", "admin", false).Count(&naoLidasAdmin)
	db.Model(&Notificacao{}).Where("usuario_id = ? AND lida = ?", "lojista-1", false).Count(&naoLidasLojista)
	assert.Zero(t, naoLidasAdmin)
	assert.EqualValues(t, 1, naoLidasLojista)
}

func TestListarPorUsuarioMaisRecentePrimeiro(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.Criar(&Notificacao{UsuarioID: "admin", Tipo: TipoNovoPedido, Titulo: "Primeira", Mensagem: "a"}))
	require.NoError(t, repo.Criar(&Notificacao{UsuarioID: "admin", Tipo: TipoNovoPedido, Titulo: "Segunda", Mensagem: "b"}))
	require.NoError(t, repo.Criar(&Notificacao{UsuarioID: "lojista-1", Tipo: TipoNovoProduto, Titulo: "Alheia", Mensagem: "c"}))

	ns, err := repo.ListarPorUsuario("admin")
	require.NoError(t, err)
	require.Len(t, ns, 2)
	for _, n := range ns {
		assert.Equal(t, "admin", n.UsuarioID)
	}
}
