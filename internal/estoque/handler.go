package estoque

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ArmazemHub/api-lojista/internal/auth"
	"github.com/ArmazemHub/api-lojista/internal/realtime"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	Service   *Service
	Publisher realtime.Publisher
	validate  *validator.Validate
}

func NewHandler(service *Service, publisher realtime.Publisher) *Handler {
	return &Handler{
		Service:   service,
		Publisher: publisher,
		validate:  validator.New(),
	}
}

// POST /produtos/{id}/movimentacoes
func (h *Handler) RegistrarMovimentacao(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	var dto MovimentacaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Movimentação inválida: "+err.Error(), http.StatusBadRequest)
		return
	}

	mov, err := h.Service.RegistrarMovimentacao(auth.LojistaIDDoContexto(r), uint(produtoID), dto)
	switch {
	case errors.Is(err, ErrEstoqueInsuficiente):
		http.Error(w, "Estoque insuficiente", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Produto não encontrado", http.StatusNotFound)
		return
	case err != nil:
		logrus.WithError(err).Error("Erro ao registrar movimentação")
		http.Error(w, "Erro ao registrar movimentação", http.StatusInternalServerError)
		return
	}

	ev := realtime.Evento{
		Tabela:     "produtos_estoque",
		Operacao:   realtime.OperacaoUpdate,
		RegistroID: strconv.Itoa(produtoID),
	}
	if err := h.Publisher.Publicar(r.Context(), ev); err != nil {
		logrus.WithError(err).Warn("Erro ao publicar evento de movimentação")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(mov)
}

// GET /produtos/{id}/movimentacoes
func (h *Handler) ListarMovimentacoes(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	movs, err := h.Service.ListarPorProduto(auth.LojistaIDDoContexto(r), uint(produtoID), auth.IsAdminDoContexto(r))
	if err != nil {
		http.Error(w, "Produto não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(movs)
}
