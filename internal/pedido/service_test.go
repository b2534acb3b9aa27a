package pedido

import (
	"testing"

	"github.com/ArmazemHub/api-lojista/internal/auth"
	"github.com/ArmazemHub/api-lojista/internal/estoque"
	"github.com/ArmazemHub/api-lojista/internal/lojista"
	"github.com/ArmazemHub/api-lojista/internal/notificacao"
	"github.com/ArmazemHub/api-lojista/internal/produto"
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

	require.NoError(t, lojista.Migrate(db))
	require.NoError(t, produto.Migrate(db))
	require.NoError(t, estoque.Migrate(db))
	require.NoError(t, notificacao.Migrate(db))
	require.NoError(t, Migrate(db))

	return db
}

func seedLojista(t *testing.T, db *gorm.DB, comissao float64) *lojista.Lojista {
	t.Helper()

	l := lojista.Lojista{
		ID:                 "5f1b0c1e-0000-0000-0000-000000000001",
		NomeFantasia:       "Loja do João",
		Email:              "joao@loja.com",
		Telefone:           "11999999999",
		ComissaoPercentual: comissao,
		Ativo:              true,
	}
	require.NoError(t, db.Create(&l).Error)
	return &l
}

func seedProduto(t *testing.T, db *gorm.DB, lojistaID, sku string, quantidade int) *produto.Produto {
	t.Helper()

	p := produto.Produto{
		LojistaID:        lojistaID,
		Nome:             "Produto " + sku,
		SKU:              sku,
		QuantidadeAtual:  quantidade,
		QuantidadeMinima: 1,
		Status:           produto.StatusAtivo,
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func dadosClienteValidos() DadosCliente {
	return DadosCliente{
		Nome:     "Maria Souza",
		Telefone: "11988887777",
		CEP:      "01310-100",
		Endereco: "Av. Paulista",
		Numero:   "1000",
		Bairro:   "Bela Vista",
		Cidade:   "São Paulo",
		Estado:   "SP",
	}
}

func TestCriarPedido(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)

	lj := seedLojista(t, db, 15)
	prod := seedProduto(t, db, lj.ID, "SKU-1", 10)

	criado, aviso, err := svc.CriarPedido(lj.ID, CriarPedidoDTO{
		NumeroPedidoExterno: "ML-123",
		MarketplaceOrigem:   "Mercado Livre",
		DadosCliente:        dadosClienteValidos(),
		Itens: []ItemVendaDTO{
			{ProdutoID: prod.ID, Quantidade: 2, PrecoUnitario: 10.00},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusAguardandoSeparacao, criado.Status)
	assert.Equal(t, 20.00, criado.TotalPedido)
	assert.Equal(t, 3.00, criado.ComissaoCalculada)

	// estoque baixado pelo decremento condicional
	var p produto.Produto
	require.NoError(t, db.First(&p, prod.ID).Error)
	assert.Equal(t, 8, p.QuantidadeAtual)

	// exatamente um item com o preço copiado no momento da venda
	var itens []ItemPedido
	require.NoError(t, db.Where("pedido_id = ?", criado.ID).Find(&itens).Error)
	require.Len(t, itens, 1)
	assert.Equal(t, 2, itens[0].Quantidade)
	assert.Equal(t, 10.00, itens[0].PrecoUnitario)

	// exatamente uma movimentação de saída motivada pela venda
	var movs []estoque.Movimentacao
	require.NoError(t, db.Where("pedido_id = ?", criado.ID).Find(&movs).Error)
	require.Len(t, movs, 1)
	assert.Equal(t, estoque.TipoSaida, movs[0].Tipo)
	assert.Equal(t, 2, movs[0].Quantidade)
	assert.Equal(t, "venda", movs[0].Motivo)

	// exatamente uma linha de histórico, anterior nulo
	var historico []HistoricoPedido
	require.NoError(t, db.Where("pedido_id = ?", criado.ID).Find(&historico).Error)
	require.Len(t, historico, 1)
	assert.Nil(t, historico[0].StatusAnterior)
	assert.Equal(t, StatusAguardandoSeparacao, historico[0].StatusNovo)
	assert.Equal(t, lj.NomeFantasia, historico[0].Responsavel)

	// exatamente uma notificação endereçada ao canal administrativo, e é a
	// mesma que o serviço devolve
	var ns []notificacao.Notificacao
	require.NoError(t, db.Find(&ns).Error)
	require.Len(t, ns, 1)
	assert.Equal(t, auth.UsuarioAdmin, ns[0].UsuarioID)
	assert.Equal(t, notificacao.TipoNovoPedido, ns[0].Tipo)
	assert.False(t, ns[0].Lida)
	require.NotNil(t, aviso)
	assert.Equal(t, ns[0].ID, aviso.ID)
}

func TestCriarPedidoTotalIgualSomaDosItens(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)

	lj := seedLojista(t, db, 10)
	p1 := seedProduto(t, db, lj.ID, "SKU-1", 50)
	p2 := seedProduto(t, db, lj.ID, "SKU-2", 50)

	criado, _, err := svc.CriarPedido(lj.ID, CriarPedidoDTO{
		MarketplaceOrigem: "Shopee",
		DadosCliente:      dadosClienteValidos(),
		Itens: []ItemVendaDTO{
			{ProdutoID: p1.ID, Quantidade: 3, PrecoUnitario: 19.90},
			{ProdutoID: p2.ID, Quantidade: 1, PrecoUnitario: 5.50},
		},
	})
	require.NoError(t, err)

	var soma float64
	var itens []ItemPedido
	require.NoError(t, db.Where("pedido_id = ?", criado.ID).Find(&itens).Error)
	for _, item := range itens {
		soma += float64(item.Quantidade) * item.PrecoUnitario
	}
	assert.Equal(t, soma, criado.TotalPedido)
}

func TestCriarPedidoEstoqueInsuficienteDesfazTudo(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)

	lj := seedLojista(t, db, 15)
	p1 := seedProduto(t, db, lj.ID, "SKU-1", 10)
	p2 := seedProduto(t, db, lj.ID, "SKU-2", 1)

	_, _, err := svc.CriarPedido(lj.ID, CriarPedidoDTO{
		MarketplaceOrigem: "Amazon",
		DadosCliente:      dadosClienteValidos(),
		Itens: []ItemVendaDTO{
			{ProdutoID: p1.ID, Quantidade: 2, PrecoUnitario: 10.00},
			{ProdutoID: p2.ID, Quantidade: 5, PrecoUnitario: 10.00},
		},
	})
	require.ErrorIs(t, err, estoque.ErrEstoqueInsuficiente)

	// nada pode ter sido aplicado, nem o item que tinha estoque
	var p produto.Produto
	require.NoError(t, db.First(&p, p1.ID).Error)
	assert.Equal(t, 10, p.QuantidadeAtual)

	var contagem int64
	db.Model(&Pedido{}).Count(&contagem)
	assert.Zero(t, contagem)
	db.Model(&ItemPedido{}).Count(&contagem)
	assert.Zero(t, contagem)
	db.Model(&estoque.Movimentacao{}).Count(&contagem)
	assert.Zero(t, contagem)
	db.Model(&HistoricoPedido{}).Count(&contagem)
	assert.Zero(t, contagem)
	db.Model(&notificacao.Notificacao{}).Count(&contagem)
	assert.Zero(t, contagem)
}

func TestCriarPedidoProdutoDeOutroLojista(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)

	lj := seedLojista(t, db, 15)
	outro := lojista.Lojista{
		ID:           "5f1b0c1e-0000-0000-0000-000000000002",
		NomeFantasia: "Outra Loja",
		Email:        "outra@loja.com",
		Telefone:     "11911112222",
		Ativo:        true,
	}
	require.NoError(t, db.Create(&outro).Error)
	alheio := seedProduto(t, db, outro.ID, "SKU-X", 10)

	_, _, err := svc.CriarPedido(lj.ID, CriarPedidoDTO{
		MarketplaceOrigem: "Magalu",
		DadosCliente:      dadosClienteValidos(),
		Itens: []ItemVendaDTO{
			{ProdutoID: alheio.ID, Quantidade: 1, PrecoUnitario: 10.00},
		},
	})
	require.ErrorIs(t, err, ErrProdutoInvalido)
}

func TestCriarPedidoSemItens(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)
	lj := seedLojista(t, db, 15)

	_, _, err := svc.CriarPedido(lj.ID, CriarPedidoDTO{
		MarketplaceOrigem: "Mercado Livre",
		DadosCliente:      dadosClienteValidos(),
		Itens:             nil,
	})
	require.Error(t, err)
}

func TestAvancarStatusSequenciaCompleta(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)

	lj := seedLojista(t, db, 15)
	prod := seedProduto(t, db, lj.ID, "SKU-1", 10)

	criado, _, err := svc.CriarPedido(lj.ID, CriarPedidoDTO{
		MarketplaceOrigem: "Mercado Livre",
		DadosCliente:      dadosClienteValidos(),
		Itens: []ItemVendaDTO{
			{ProdutoID: prod.ID, Quantidade: 1, PrecoUnitario: 10.00},
		},
	})
	require.NoError(t, err)

	p, err := svc.AvancarStatus(criado.ID, AvancarStatusDTO{Status: StatusEmSeparacao})
	require.NoError(t, err)
	assert.NotNil(t, p.DataSeparacao)

	p, err = svc.AvancarStatus(criado.ID, AvancarStatusDTO{Status: StatusEmbalado})
	require.NoError(t, err)
	assert.NotNil(t, p.DataEmbalagem)

	p, err = svc.AvancarStatus(criado.ID, AvancarStatusDTO{
		Status:         StatusEnviado,
		CodigoRastreio: "BR123",
		Transportadora: "Correios",
	})
	require.NoError(t, err)
	assert.NotNil(t, p.DataEnvio)
	assert.Equal(t, "BR123", p.CodigoRastreio)
	assert.Equal(t, "Correios", p.Transportadora)

	// histórico sem buracos nem reordenação
	var historico []HistoricoPedido
	require.NoError(t, db.Where("pedido_id = ?", criado.ID).Order("id ASC").Find(&historico).Error)
	require.Len(t, historico, 4)

	assert.Nil(t, historico[0].StatusAnterior)
	assert.Equal(t, StatusAguardandoSeparacao, historico[0].StatusNovo)
	assert.Equal(t, StatusAguardandoSeparacao, *historico[1].StatusAnterior)
	assert.Equal(t, StatusEmSeparacao, historico[1].StatusNovo)
	assert.Equal(t, StatusEmSeparacao, *historico[2].StatusAnterior)
	assert.Equal(t, StatusEmbalado, historico[2].StatusNovo)
	assert.Equal(t, StatusEmbalado, *historico[3].StatusAnterior)
	assert.Equal(t, StatusEnviado, historico[3].StatusNovo)
}

func TestAvancarStatusTransicaoInvalida(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)

	lj := seedLojista(t, db, 15)
	prod := seedProduto(t, db, lj.ID, "SKU-1", 10)

	criado, _, err := svc.CriarPedido(lj.ID, CriarPedidoDTO{
		MarketplaceOrigem: "Shopee",
		DadosCliente:      dadosClienteValidos(),
		Itens: []ItemVendaDTO{
			{ProdutoID: prod.ID, Quantidade: 1, PrecoUnitario: 10.00},
		},
	})
	require.NoError(t, err)

	// pular direto para embalado é rejeitado pelo núcleo
	_, err = svc.AvancarStatus(criado.ID, AvancarStatusDTO{Status: StatusEmbalado})
	require.ErrorIs(t, err, ErrTransicaoInvalida)

	// nenhuma linha extra de histórico foi criada
	var contagem int64
	db.Model(&HistoricoPedido{}).Where("pedido_id = ?", criado.ID).Count(&contagem)
	assert.EqualValues(t, 1, contagem)
}

func TestCancelamento(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)

	lj := seedLojista(t, db, 15)
	prod := seedProduto(t, db, lj.ID, "SKU-1", 10)

	criado, _, err := svc.CriarPedido(lj.ID, CriarPedidoDTO{
		MarketplaceOrigem: "Amazon",
		DadosCliente:      dadosClienteValidos(),
		Itens: []ItemVendaDTO{
			{ProdutoID: prod.ID, Quantidade: 1, PrecoUnitario: 10.00},
		},
	})
	require.NoError(t, err)

	_, err = svc.AvancarStatus(criado.ID, AvancarStatusDTO{Status: StatusEmSeparacao})
	require.NoError(t, err)

	p, err := svc.AvancarStatus(criado.ID, AvancarStatusDTO{Status: StatusCancelado})
	require.NoError(t, err)
	assert.Equal(t, StatusCancelado, p.Status)

	// terminal: nada mais sai de cancelado
	_, err = svc.AvancarStatus(criado.ID, AvancarStatusDTO{Status: StatusEmbalado})
	require.ErrorIs(t, err, ErrTransicaoInvalida)
}

func TestAvancarStatusPedidoInexistente(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)

	_, err := svc.AvancarStatus(999, AvancarStatusDTO{Status: StatusEmSeparacao})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
