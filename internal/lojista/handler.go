package lojista

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ArmazemHub/api-lojista/internal/email"
	"github.com/ArmazemHub/api-lojista/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Sender     email.Sender
	validate   *validator.Validate
}

func NewHandler(db *gorm.DB, sender email.Sender) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Sender:     sender,
		validate:   validator.New(),
	}
}

// POST /lojistas
func (h *Handler) CriarLojista(w http.ResponseWriter, r *http.Request) {
	var dto CriarLojistaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Dados do lojista inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	senhaTemporaria, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "Erro ao gerar senha temporária", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(senhaTemporaria)
	if err != nil {
		http.Error(w, "Erro ao gerar senha temporária", http.StatusInternalServerError)
		return
	}

	l := Lojista{
		ID:                    uuid.NewString(),
		NomeFantasia:          dto.NomeFantasia,
		NomeContato:           dto.NomeContato,
		Email:                 dto.Email,
		Telefone:              dto.Telefone,
		CNPJ:                  dto.CNPJ,
		ComissaoPercentual:    dto.ComissaoPercentual,
		EnderecoCompleto:      dto.EnderecoCompleto,
		Observacoes:           dto.Observacoes,
		Ativo:                 true,
		Senha:                 hash,
		PrecisaRedefinirSenha: true,
	}

	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		logrus.WithError(err).Error("Erro ao criar lojista")
		http.Error(w, "Erro ao criar lojista", http.StatusInternalServerError)
		return
	}

	// Envio simulado; a senha temporária só chega ao lojista por aqui.
	if err := h.Sender.Enviar(email.Mensagem{
		Para:    l.Email,
		Assunto: "Bem-vindo ao armazém",
		Corpo:   fmt.Sprintf("Olá %s, seu acesso foi criado. Senha temporária: %s", l.NomeFantasia, senhaTemporaria),
	}); err != nil {
		logrus.WithError(err).Warn("Erro ao enviar email de boas-vindas")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(l)
}

// GET /lojistas
func (h *Handler) ListarLojistas(w http.ResponseWriter, r *http.Request) {
	lojistas, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar lojistas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lojistas)
}

// GET /lojistas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	l, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Lojista não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(l)
}

// PUT /lojistas/{id}
func (h *Handler) AtualizarLojista(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var dto AtualizarLojistaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Dados do lojista inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.Repository.Atualizar(h.DB, id, &dto)
	if err != nil {
		http.Error(w, "Lojista não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(l)
}
