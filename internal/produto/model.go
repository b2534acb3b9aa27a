package produto

import (
	"time"

	"github.com/ArmazemHub/api-lojista/internal/lojista"
	"gorm.io/gorm"
)

const (
	StatusAtivo   = "ativo"
	StatusInativo = "inativo"
)

// Produto pertence a exatamente um lojista. O SKU é único por lojista,
// não globalmente.
type Produto struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	LojistaID        string          `gorm:"size:36;not null;index;uniqueIndex:idx_lojista_sku" json:"lojistaId"`
	Nome             string          `gorm:"size:255;not null" json:"nome"`
	SKU              string          `gorm:"size:100;not null;uniqueIndex:idx_lojista_sku" json:"sku"`
	Categoria        string          `gorm:"size:100" json:"categoria"`
	Descricao        string          `json:"descricao"`
	PesoGramas       *int            `json:"pesoGramas"`
	ImagemURL        string          `json:"imagemUrl"`
	QuantidadeAtual  int             `gorm:"not null;default:0" json:"quantidadeAtual"`
	QuantidadeMinima int             `gorm:"not null;default:0" json:"quantidadeMinima"`
	Localizacao      string          `gorm:"size:100" json:"localizacao"`
	Status           string          `gorm:"size:50;not null;default:'ativo'" json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	Lojista          lojista.Lojista `gorm:"foreignKey:LojistaID" json:"lojista,omitempty"`
}

func (Produto) TableName() string {
	return "produtos_estoque"
}

// EstoqueBaixo indica se o produto está no limiar de reposição. Recalculado a
// cada leitura; não há valor armazenado.
func (p Produto) EstoqueBaixo() bool {
	return p.QuantidadeAtual <= p.QuantidadeMinima
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Produto{})
}
