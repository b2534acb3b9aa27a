package estoque

import (
	"time"

	"gorm.io/gorm"
)

const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
	TipoAjuste  = "ajuste"
)

// Movimentacao é o registro imutável do livro de estoque. Nunca é atualizada
// nem removida depois de criada.
type Movimentacao struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProdutoID  uint      `gorm:"not null;index" json:"produtoId"`
	Tipo       string    `gorm:"size:20;not null" json:"tipo"`
	Quantidade int       `gorm:"not null" json:"quantidade"`
	Motivo     string    `gorm:"size:255" json:"motivo"`
	PedidoID   *uint     `gorm:"index" json:"pedidoId"`
	Observacao string    `json:"observacao"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Movimentacao) TableName() string {
	return "movimentacoes_estoque"
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Movimentacao{})
}
