package estoque

import (
	"errors"

	"github.com/ArmazemHub/api-lojista/internal/produto"
	"gorm.io/gorm"
)

var (
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente para a saída solicitada")
	ErrTipoInvalido        = errors.New("tipo de movimentação inválido")
)

// Service aplica movimentações diretas de estoque. A mudança de quantidade e o
// registro no livro acontecem na mesma transação; saídas usam decremento
// condicional para nunca deixar o estoque negativo.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// RegistrarMovimentacao aplica entrada, saída ou ajuste absoluto sobre um
// produto do lojista e grava a linha correspondente no livro.
func (s *Service) RegistrarMovimentacao(lojistaID string, produtoID uint, dto MovimentacaoDTO) (*Movimentacao, error) {
	var mov Movimentacao

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var p produto.Produto
		if err := tx.Where("id = ? AND lojista_id = ?", produtoID, lojistaID).First(&p).Error; err != nil {
			return err
		}

		if err := AplicarMovimentacao(tx, produtoID, dto.Tipo, dto.Quantidade); err != nil {
			return err
		}

		mov = Movimentacao{
			ProdutoID:  produtoID,
			Tipo:       dto.Tipo,
			Quantidade: dto.Quantidade,
			Motivo:     dto.Motivo,
			Observacao: dto.Observacao,
		}
		return tx.Create(&mov).Error
	})
	if err != nil {
		return nil, err
	}
	return &mov, nil
}

// AplicarMovimentacao muda a quantidade do produto dentro da transação do
// chamador. Saída é um decremento condicional ("quantidade_atual >= ?") para
// eliminar a corrida de oversell; ajuste grava o valor absoluto.
func AplicarMovimentacao(tx *gorm.DB, produtoID uint, tipo string, quantidade int) error {
	switch tipo {
	case TipoEntrada:
		return tx.Model(&produto.Produto{}).
			Where("id = ?", produtoID).
			UpdateColumn("quantidade_atual", gorm.Expr("quantidade_atual + ?", quantidade)).Error

	case TipoSaida:
		res := tx.Model(&produto.Produto{}).
			Where("id = ? AND quantidade_atual >= ?", produtoID, quantidade).
			UpdateColumn("quantidade_atual", gorm.Expr("quantidade_atual - ?", quantidade))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEstoqueInsuficiente
		}
		return nil

	case TipoAjuste:
		return tx.Model(&produto.Produto{}).
			Where("id = ?", produtoID).
			UpdateColumn("quantidade_atual", quantidade).Error

	default:
		return ErrTipoInvalido
	}
}

// ListarPorProduto devolve o livro de um produto, mais recente primeiro.
func (s *Service) ListarPorProduto(lojistaID string, produtoID uint, isAdmin bool) ([]Movimentacao, error) {
	var p produto.Produto
	query := s.DB.Where("id = ?", produtoID)
	if !isAdmin {
		query = query.Where("lojista_id = ?", lojistaID)
	}
	if err := query.First(&p).Error; err != nil {
		return nil, err
	}

	var movs []Movimentacao
	err := s.DB.Where("produto_id = ?", produtoID).
		Order("created_at DESC").
		Find(&movs).Error
	return movs, err
}
