package notificacao

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de notificação conhecidos pelo sistema.
const (
	TipoNovoPedido    = "novo_pedido"
	TipoEstoqueBaixo  = "estoque_baixo"
	TipoPedidoEnviado = "pedido_enviado"
	TipoNovoProduto   = "novo_produto"
)

// Notificacao é endereçada a um lojista ou ao canal administrativo (o id
// sentinela "admin"). Depois de criada, só o campo Lida muda.
type Notificacao struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UsuarioID    string    `gorm:"size:36;not null;index" json:"usuarioId"`
	Tipo         string    `gorm:"size:50;not null" json:"tipo"`
	Titulo       string    `gorm:"size:255;not null" json:"titulo"`
	Mensagem     string    `gorm:"not null" json:"mensagem"`
	Lida         bool      `gorm:"not null;default:false" json:"lida"`
	Link         string    `json:"link"`
	EmailEnviado bool      `gorm:"not null;default:false" json:"emailEnviado"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Notificacao) TableName() string {
	return "notificacoes"
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Notificacao{})
}
