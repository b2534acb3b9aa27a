package notificacao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ArmazemHub/api-lojista/internal/auth"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /notificacoes
func (h *Handler) ListarNotificacoes(w http.ResponseWriter, r *http.Request) {
	ns, err := h.Repo.ListarPorUsuario(auth.LojistaIDDoContexto(r))
	if err != nil {
		http.Error(w, "Erro ao buscar notificações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ns)
}

// PATCH /notificacoes/{id}/lida
func (h *Handler) MarcarComoLida(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de notificação inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.MarcarComoLida(uint(id), auth.LojistaIDDoContexto(r)); err != nil {
		http.Error(w, "Notificação não encontrada", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /notificacoes/marcar-todas-lidas
func (h *Handler) MarcarTodasComoLidas(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.MarcarTodasComoLidas(auth.LojistaIDDoContexto(r)); err != nil {
		http.Error(w, "Erro ao marcar notificações", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
