package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ArmazemHub/api-lojista/internal/auth"
	"github.com/ArmazemHub/api-lojista/internal/pedido"
	"github.com/ArmazemHub/api-lojista/internal/produto"
	"gorm.io/gorm"
)

// Handler calcula as visões derivadas dos painéis. Nada é armazenado: cada
// leitura varre a coleção visível e refiltra.
type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// GET /dashboard/admin
func (h *Handler) StatsAdmin(w http.ResponseWriter, r *http.Request) {
	var pedidos []pedido.Pedido
	if err := h.DB.Select("status", "data_envio").Find(&pedidos).Error; err != nil {
		http.Error(w, "Erro ao carregar painel", http.StatusInternalServerError)
		return
	}

	var produtos []produto.Produto
	if err := h.DB.Select("quantidade_atual", "quantidade_minima").Find(&produtos).Error; err != nil {
		http.Error(w, "Erro ao carregar painel", http.StatusInternalServerError)
		return
	}

	agora := time.Now()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())

	var stats AdminStatsDTO
	for _, p := range pedidos {
		switch p.Status {
		case pedido.StatusAguardandoSeparacao:
			stats.AguardandoSeparacao++
		case pedido.StatusEmSeparacao:
			stats.EmSeparacao++
		case pedido.StatusEmbalado:
			stats.Embalado++
		case pedido.StatusEnviado:
			if p.DataEnvio != nil && !p.DataEnvio.Before(hoje) {
				stats.EnviadosHoje++
			}
		}
	}
	for _, p := range produtos {
		if p.EstoqueBaixo() {
			stats.EstoqueBaixo++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}

// GET /dashboard/lojista
func (h *Handler) StatsLojista(w http.ResponseWriter, r *http.Request) {
	lojistaID := auth.LojistaIDDoContexto(r)

	var produtos []produto.Produto
	if err := h.DB.Select("quantidade_atual", "quantidade_minima").
		Where("lojista_id = ?", lojistaID).
		Find(&produtos).Error; err != nil {
		http.Error(w, "Erro ao carregar painel", http.StatusInternalServerError)
		return
	}

	var pedidos []pedido.Pedido
	if err := h.DB.Select("status", "total_pedido", "data_criacao").
		Where("lojista_id = ?", lojistaID).
		Find(&pedidos).Error; err != nil {
		http.Error(w, "Erro ao carregar painel", http.StatusInternalServerError)
		return
	}

	agora := time.Now()
	primeiroDiaMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())

	stats := LojistaStatsDTO{TotalProdutos: len(produtos)}
	for _, p := range produtos {
		if p.EstoqueBaixo() {
			stats.EstoqueBaixo++
		}
	}
	for _, p := range pedidos {
		switch p.Status {
		case pedido.StatusAguardandoSeparacao, pedido.StatusEmSeparacao, pedido.StatusEmbalado:
			stats.PedidosPendentes++
		}
		if !p.DataCriacao.Before(primeiroDiaMes) {
			stats.PedidosMes++
			stats.FaturamentoMes += p.TotalPedido
			if p.Status == pedido.StatusEnviado {
				stats.EnviadosMes++
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}
