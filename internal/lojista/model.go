package lojista

import (
	"time"

	"gorm.io/gorm"
)

// Lojista é o vendedor dono de produtos e pedidos. Nunca é removido
// fisicamente; desativação é feita pelo campo Ativo.
type Lojista struct {
	ID                    string    `gorm:"primaryKey;size:36" json:"id"`
	NomeFantasia          string    `gorm:"size:255;not null" json:"nomeFantasia"`
	NomeContato           string    `gorm:"size:255" json:"nomeContato"`
	Email                 string    `gorm:"size:255;not null;unique" json:"email"`
	Telefone              string    `gorm:"size:50" json:"telefone"`
	CNPJ                  string    `gorm:"size:20" json:"cnpj"`
	ComissaoPercentual    float64   `gorm:"not null;default:0" json:"comissaoPercentual"`
	EnderecoCompleto      string    `json:"enderecoCompleto"`
	Observacoes           string    `json:"observacoes"`
	Ativo                 bool      `gorm:"not null;default:true" json:"ativo"`
	Senha                 string    `json:"-"`
	PrecisaRedefinirSenha bool      `json:"-"`
	CreatedAt             time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lojista{})
}
