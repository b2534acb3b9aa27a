package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/ArmazemHub/api-lojista/internal/lojista"
	"github.com/ArmazemHub/api-lojista/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	DB          *gorm.DB
	LojistaRepo lojista.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		LojistaRepo: lojista.NewRepository(),
	}
}

type loginRequest struct {
	EmailOuCNPJ string `json:"emailOuCnpj"`
	Senha       string `json:"senha"`
}

type loginResponse struct {
	Token                 string           `json:"token"`
	IsAdmin               bool             `json:"isAdmin"`
	PrecisaRedefinirSenha bool             `json:"precisaRedefinirSenha"`
	Lojista               *lojista.Lojista `json:"lojista,omitempty"`
}

// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	// Credenciais do canal administrativo vêm do ambiente, não do banco.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail != "" && req.EmailOuCNPJ == adminEmail {
		if !utils.VerificarSenha(os.Getenv("ADMIN_SENHA_HASH"), req.Senha) {
			http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
			return
		}
		token, err := GerarToken(UsuarioAdmin, true)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar token de admin")
			http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(loginResponse{Token: token, IsAdmin: true})
		return
	}

	l, err := h.LojistaRepo.BuscarPorEmailOuCNPJ(h.DB, req.EmailOuCNPJ)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Usuário não encontrado", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lojista no login")
		http.Error(w, "Erro ao efetuar login", http.StatusInternalServerError)
		return
	}
	if !l.Ativo {
		http.Error(w, "Lojista desativado", http.StatusUnauthorized)
		return
	}
	if !utils.VerificarSenha(l.Senha, req.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := GerarToken(l.ID, false)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar token")
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(loginResponse{
		Token:                 token,
		PrecisaRedefinirSenha: l.PrecisaRedefinirSenha,
		Lojista:               l,
	})
}

type redefinirSenhaRequest struct {
	NovaSenha string `json:"novaSenha"`
}

// PUT /senha
func (h *Handler) RedefinirSenha(w http.ResponseWriter, r *http.Request) {
	id := LojistaIDDoContexto(r)
	if id == "" || id == UsuarioAdmin {
		http.Error(w, "Apenas lojistas podem redefinir a senha", http.StatusForbidden)
		return
	}

	var req redefinirSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if len(req.NovaSenha) < 8 {
		http.Error(w, "A senha deve ter ao menos 8 caracteres", http.StatusBadRequest)
		return
	}

	l, err := h.LojistaRepo.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Lojista não encontrado", http.StatusNotFound)
		return
	}

	hash, err := utils.HashSenha(req.NovaSenha)
	if err != nil {
		http.Error(w, "Erro ao atualizar senha", http.StatusInternalServerError)
		return
	}
	l.Senha = hash
	l.PrecisaRedefinirSenha = false

	if err := h.LojistaRepo.Salvar(h.DB, l); err != nil {
		logrus.WithError(err).Error("Erro ao salvar nova senha")
		http.Error(w, "Erro ao atualizar senha", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
