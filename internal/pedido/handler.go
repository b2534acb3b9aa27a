package pedido

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ArmazemHub/api-lojista/internal/auth"
	"github.com/ArmazemHub/api-lojista/internal/estoque"
	"github.com/ArmazemHub/api-lojista/internal/realtime"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	Service    *Service
	Repository *Repository
	Publisher  realtime.Publisher
}

func NewHandler(db *gorm.DB, publisher realtime.Publisher) *Handler {
	return &Handler{
		Service:    NewService(db),
		Repository: NewRepository(db),
		Publisher:  publisher,
	}
}

func (h *Handler) publicar(r *http.Request, tabela string, op realtime.Operacao, id uint) {
	ev := realtime.Evento{
		Tabela:     tabela,
		Operacao:   op,
		RegistroID: strconv.FormatUint(uint64(id), 10),
	}
	if err := h.Publisher.Publicar(r.Context(), ev); err != nil {
		logrus.WithError(err).Warn("Erro ao publicar evento de pedido")
	}
}

// POST /pedidos
func (h *Handler) CriarPedido(w http.ResponseWriter, r *http.Request) {
	lojistaID := auth.LojistaIDDoContexto(r)
	if auth.IsAdminDoContexto(r) {
		http.Error(w, "Apenas lojistas lançam vendas", http.StatusForbidden)
		return
	}

	var dto CriarPedidoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	p, aviso, err := h.Service.CriarPedido(lojistaID, dto)
	switch {
	case errors.Is(err, estoque.ErrEstoqueInsuficiente):
		http.Error(w, "Quantidade maior que o estoque disponível", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, ErrProdutoInvalido):
		http.Error(w, "Produto inexistente ou de outro lojista", http.StatusUnprocessableEntity)
		return
	case err != nil:
		logrus.WithError(err).Error("Erro ao lançar venda")
		http.Error(w, "Erro ao lançar venda: "+err.Error(), http.StatusBadRequest)
		return
	}

	// cada evento carrega o id da linha da própria tabela
	h.publicar(r, "pedidos", realtime.OperacaoInsert, p.ID)
	h.publicar(r, "notificacoes", realtime.OperacaoInsert, aviso.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /pedidos?status=aguardando_separacao,em_separacao
func (h *Handler) ListarPedidos(w http.ResponseWriter, r *http.Request) {
	lojistaID := auth.LojistaIDDoContexto(r)
	if auth.IsAdminDoContexto(r) {
		lojistaID = ""
	}

	var statuses []Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			st := Status(strings.TrimSpace(s))
			if !st.Valido() {
				http.Error(w, "Status inválido: "+s, http.StatusBadRequest)
				return
			}
			statuses = append(statuses, st)
		}
	}

	pedidos, err := h.Repository.Listar(lojistaID, statuses)
	if err != nil {
		http.Error(w, "Erro ao buscar pedidos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pedidos)
}

// GET /pedidos/fila-separacao (admin)
func (h *Handler) FilaSeparacao(w http.ResponseWriter, r *http.Request) {
	pedidos, err := h.Repository.Listar("", []Status{StatusAguardandoSeparacao, StatusEmSeparacao})
	if err != nil {
		http.Error(w, "Erro ao buscar fila de separação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pedidos)
}

// GET /pedidos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de pedido inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Pedido não encontrado", http.StatusNotFound)
		return
	}
	if !auth.IsAdminDoContexto(r) && p.LojistaID != auth.LojistaIDDoContexto(r) {
		http.Error(w, "Pedido não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PATCH /pedidos/{id}/status (admin)
func (h *Handler) AvancarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de pedido inválido", http.StatusBadRequest)
		return
	}

	var dto AvancarStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	p, err := h.Service.AvancarStatus(uint(id), dto)
	switch {
	case errors.Is(err, ErrTransicaoInvalida):
		http.Error(w, "Transição de status não permitida", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Pedido não encontrado", http.StatusNotFound)
		return
	case err != nil:
		logrus.WithError(err).Error("Erro ao atualizar status")
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}

	h.publicar(r, "pedidos", realtime.OperacaoUpdate, p.ID)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}
