package pedido

import (
	"errors"
	"fmt"
	"time"

	"github.com/ArmazemHub/api-lojista/internal/auth"
	"github.com/ArmazemHub/api-lojista/internal/estoque"
	"github.com/ArmazemHub/api-lojista/internal/lojista"
	"github.com/ArmazemHub/api-lojista/internal/notificacao"
	"github.com/ArmazemHub/api-lojista/internal/produto"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrTransicaoInvalida = errors.New("transição de status não permitida")
	ErrProdutoInvalido   = errors.New("produto inexistente ou de outro lojista")
)

// Service é o dono do ciclo de vida do pedido: criação transacional a partir
// de uma venda e avanço de status validado pela tabela de transições.
type Service struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:       db,
		validate: validator.New(),
	}
}

// CriarPedido registra a venda inteira em uma única transação: pedido, itens,
// baixa de estoque, linhas de movimentação, histórico e notificação do admin.
// Qualquer falha desfaz tudo, não existe estado parcialmente aplicado.
// A notificação criada é devolvida junto do pedido para que o chamador
// publique o evento realtime com o id da linha certa.
func (s *Service) CriarPedido(lojistaID string, dto CriarPedidoDTO) (*Pedido, *notificacao.Notificacao, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, nil, err
	}

	var criado Pedido
	var aviso notificacao.Notificacao

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var lj lojista.Lojista
		if err := tx.First(&lj, "id = ?", lojistaID).Error; err != nil {
			return err
		}

		var total float64
		for _, item := range dto.Itens {
			total += float64(item.Quantidade) * item.PrecoUnitario
		}
		comissao := total * lj.ComissaoPercentual / 100

		p := Pedido{
			LojistaID:           lojistaID,
			NumeroPedidoExterno: dto.NumeroPedidoExterno,
			MarketplaceOrigem:   dto.MarketplaceOrigem,
			Status:              StatusAguardandoSeparacao,
			DadosCliente:        dto.DadosCliente,
			TotalPedido:         total,
			ComissaoCalculada:   comissao,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}

		for _, item := range dto.Itens {
			var prod produto.Produto
			if err := tx.Where("id = ? AND lojista_id = ?", item.ProdutoID, lojistaID).First(&prod).Error; err != nil {
				return ErrProdutoInvalido
			}

			if err := tx.Create(&ItemPedido{
				PedidoID:      p.ID,
				ProdutoID:     item.ProdutoID,
				Quantidade:    item.Quantidade,
				PrecoUnitario: item.PrecoUnitario,
			}).Error; err != nil {
				return err
			}

			if err := estoque.AplicarMovimentacao(tx, item.ProdutoID, estoque.TipoSaida, item.Quantidade); err != nil {
				return err
			}

			if err := tx.Create(&estoque.Movimentacao{
				ProdutoID:  item.ProdutoID,
				Tipo:       estoque.TipoSaida,
				Quantidade: item.Quantidade,
				Motivo:     "venda",
				PedidoID:   &p.ID,
				Observacao: fmt.Sprintf("Venda #%d", p.ID),
			}).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&HistoricoPedido{
			PedidoID:    p.ID,
			StatusNovo:  StatusAguardandoSeparacao,
			Observacao:  "Pedido criado",
			Responsavel: lj.NomeFantasia,
		}).Error; err != nil {
			return err
		}

		aviso = notificacao.Notificacao{
			UsuarioID: auth.UsuarioAdmin,
			Tipo:      notificacao.TipoNovoPedido,
			Titulo:    "Nova Venda Lançada",
			Mensagem:  fmt.Sprintf("%s lançou um novo pedido de R$ %.2f", lj.NomeFantasia, total),
			Link:      fmt.Sprintf("/admin/pedidos/%d", p.ID),
		}
		if err := tx.Create(&aviso).Error; err != nil {
			return err
		}

		criado = p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &criado, &aviso, nil
}

// AvancarStatus valida a transição contra a tabela, grava o timestamp da etapa
// e anexa exatamente uma linha de histórico.
func (s *Service) AvancarStatus(id uint, dto AvancarStatusDTO) (*Pedido, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, err
	}

	var atualizado Pedido

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var p Pedido
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}

		if !TransicaoPermitida(p.Status, dto.Status) {
			return ErrTransicaoInvalida
		}

		anterior := p.Status
		agora := time.Now()
		p.Status = dto.Status

		switch dto.Status {
		case StatusEmSeparacao:
			p.DataSeparacao = &agora
		case StatusEmbalado:
			p.DataEmbalagem = &agora
		case StatusEnviado:
			p.DataEnvio = &agora
			if dto.CodigoRastreio != "" {
				p.CodigoRastreio = dto.CodigoRastreio
			}
			if dto.Transportadora != "" {
				p.Transportadora = dto.Transportadora
			}
		case StatusCancelado:
			// cancelamento não tem timestamp próprio no modelo
		}

		if err := tx.Save(&p).Error; err != nil {
			return err
		}

		if err := tx.Create(&HistoricoPedido{
			PedidoID:       p.ID,
			StatusAnterior: &anterior,
			StatusNovo:     dto.Status,
			Observacao:     fmt.Sprintf("Status atualizado para %s", dto.Status),
			Responsavel:    "Sistema",
		}).Error; err != nil {
			return err
		}

		atualizado = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &atualizado, nil
}
