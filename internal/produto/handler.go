package produto

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ArmazemHub/api-lojista/internal/auth"
	"github.com/ArmazemHub/api-lojista/internal/realtime"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Repo      *Repository
	Publisher realtime.Publisher
	validate  *validator.Validate
}

func NewHandler(repo *Repository, publisher realtime.Publisher) *Handler {
	return &Handler{
		Repo:      repo,
		Publisher: publisher,
		validate:  validator.New(),
	}
}

func (h *Handler) publicar(r *http.Request, op realtime.Operacao, id uint) {
	ev := realtime.Evento{
		Tabela:     "produtos_estoque",
		Operacao:   op,
		RegistroID: strconv.FormatUint(uint64(id), 10),
	}
	if err := h.Publisher.Publicar(r.Context(), ev); err != nil {
		logrus.WithError(err).Warn("Erro ao publicar evento de produto")
	}
}

// POST /produtos
func (h *Handler) CriarProduto(w http.ResponseWriter, r *http.Request) {
	lojistaID := auth.LojistaIDDoContexto(r)

	var dto ProdutoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Dados do produto inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	status := dto.Status
	if status == "" {
		status = StatusAtivo
	}

	p := Produto{
		LojistaID:        lojistaID,
		Nome:             dto.Nome,
		SKU:              dto.SKU,
		Categoria:        dto.Categoria,
		Descricao:        dto.Descricao,
		PesoGramas:       dto.PesoGramas,
		ImagemURL:        dto.ImagemURL,
		QuantidadeAtual:  dto.QuantidadeAtual,
		QuantidadeMinima: dto.QuantidadeMinima,
		Status:           status,
	}

	if err := h.Repo.Criar(&p); err != nil {
		logrus.WithError(err).Error("Erro ao criar produto")
		http.Error(w, "Erro ao criar produto (SKU já cadastrado?)", http.StatusInternalServerError)
		return
	}

	h.publicar(r, realtime.OperacaoInsert, p.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /produtos
func (h *Handler) ListarMeusProdutos(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.Repo.FindByLojista(auth.LojistaIDDoContexto(r))
	if err != nil {
		http.Error(w, "Erro ao buscar produtos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(produtos)
}

// GET /produtos/disponiveis
func (h *Handler) ListarDisponiveis(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.Repo.FindDisponiveis(auth.LojistaIDDoContexto(r))
	if err != nil {
		http.Error(w, "Erro ao buscar produtos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(produtos)
}

// PUT /produtos/{id}
func (h *Handler) AtualizarProduto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	existing, err := h.Repo.FindByID(uint(id))
	if err != nil || existing.LojistaID != auth.LojistaIDDoContexto(r) {
		http.Error(w, "Produto não encontrado", http.StatusNotFound)
		return
	}

	var dto ProdutoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Dados do produto inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	// atualiza campos; quantidade_atual só muda por movimentação
	existing.Nome = dto.Nome
	existing.SKU = dto.SKU
	existing.Categoria = dto.Categoria
	existing.Descricao = dto.Descricao
	existing.PesoGramas = dto.PesoGramas
	existing.ImagemURL = dto.ImagemURL
	existing.QuantidadeMinima = dto.QuantidadeMinima
	if dto.Status != "" {
		existing.Status = dto.Status
	}

	if err := h.Repo.Update(existing); err != nil {
		http.Error(w, "Erro ao atualizar produto", http.StatusInternalServerError)
		return
	}

	h.publicar(r, realtime.OperacaoUpdate, existing.ID)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existing)
}

// GET /estoque (admin)
func (h *Handler) ListarEstoqueCompleto(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.Repo.ListarEstoqueCompleto()
	if err != nil {
		http.Error(w, "Erro ao buscar estoque", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(produtos)
}

// PATCH /produtos/{id}/localizacao (admin)
func (h *Handler) DefinirLocalizacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	var dto LocalizacaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if err := h.Repo.AtualizarLocalizacao(uint(id), dto.Localizacao); err != nil {
		http.Error(w, "Produto não encontrado", http.StatusNotFound)
		return
	}

	h.publicar(r, realtime.OperacaoUpdate, uint(id))

	w.WriteHeader(http.StatusNoContent)
}
