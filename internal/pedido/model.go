package pedido

import (
	"time"

	"github.com/ArmazemHub/api-lojista/internal/lojista"
	"github.com/ArmazemHub/api-lojista/internal/produto"
	"gorm.io/gorm"
)

// DadosCliente é o retrato do cliente no momento da venda, gravado junto do
// pedido como JSON. Não existe entidade cliente separada.
type DadosCliente struct {
	Nome        string `json:"nome" validate:"required"`
	CPFCNPJ     string `json:"cpfCnpj"`
	Telefone    string `json:"telefone" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	CEP         string `json:"cep" validate:"required"`
	Endereco    string `json:"endereco" validate:"required"`
	Numero      string `json:"numero" validate:"required"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro" validate:"required"`
	Cidade      string `json:"cidade" validate:"required"`
	Estado      string `json:"estado" validate:"required,len=2"`
}

type Pedido struct {
	ID                  uint              `gorm:"primaryKey" json:"id"`
	LojistaID           string            `gorm:"size:36;not null;index" json:"lojistaId"`
	NumeroPedidoExterno string            `gorm:"size:100" json:"numeroPedidoExterno"`
	MarketplaceOrigem   string            `gorm:"size:100;not null" json:"marketplaceOrigem"`
	Status              Status            `gorm:"size:50;not null;default:'aguardando_separacao';index" json:"status"`
	DadosCliente        DadosCliente      `gorm:"serializer:json" json:"dadosCliente"`
	TotalPedido         float64           `gorm:"not null;default:0" json:"totalPedido"`
	ComissaoCalculada   float64           `gorm:"not null;default:0" json:"comissaoCalculada"`
	DataCriacao         time.Time         `gorm:"autoCreateTime" json:"dataCriacao"`
	DataSeparacao       *time.Time        `json:"dataSeparacao"`
	DataEmbalagem       *time.Time        `json:"dataEmbalagem"`
	DataEnvio           *time.Time        `json:"dataEnvio"`
	CodigoRastreio      string            `gorm:"size:100" json:"codigoRastreio"`
	Transportadora      string            `gorm:"size:100" json:"transportadora"`
	Itens               []ItemPedido      `gorm:"foreignKey:PedidoID" json:"itens"`
	Historico           []HistoricoPedido `gorm:"foreignKey:PedidoID" json:"historico,omitempty"`
	Lojista             lojista.Lojista   `gorm:"foreignKey:LojistaID" json:"lojista,omitempty"`
}

// ItemPedido copia o preço unitário do momento da venda; alterações futuras
// no produto não mudam o histórico. Imutável após a criação.
type ItemPedido struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	PedidoID      uint            `gorm:"not null;index" json:"pedidoId"`
	ProdutoID     uint            `gorm:"not null;index" json:"produtoId"`
	Quantidade    int             `gorm:"not null" json:"quantidade"`
	PrecoUnitario float64         `gorm:"not null" json:"precoUnitario"`
	Produto       produto.Produto `gorm:"foreignKey:ProdutoID" json:"produto,omitempty"`
}

func (ItemPedido) TableName() string {
	return "itens_pedido"
}

// HistoricoPedido é o registro de auditoria, uma linha por transição, nunca
// alterado depois de criado. StatusAnterior é nulo na criação do pedido.
type HistoricoPedido struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PedidoID       uint      `gorm:"not null;index" json:"pedidoId"`
	StatusAnterior *Status   `gorm:"size:50" json:"statusAnterior"`
	StatusNovo     Status    `gorm:"size:50;not null" json:"statusNovo"`
	Observacao     string    `json:"observacao"`
	Responsavel    string    `gorm:"size:255" json:"responsavel"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (HistoricoPedido) TableName() string {
	return "historico_pedido"
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pedido{}, &ItemPedido{}, &HistoricoPedido{})
}
