package produto

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(p *Produto) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByID(id uint) (*Produto, error) {
	var p Produto
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByLojista(lojistaID string) ([]Produto, error) {
	var ps []Produto
	err := r.DB.Where("lojista_id = ?", lojistaID).
		Order("created_at DESC").
		Find(&ps).Error
	return ps, err
}

// Produtos vendáveis: ativos e com estoque disponível.
func (r *Repository) FindDisponiveis(lojistaID string) ([]Produto, error) {
	var ps []Produto
	err := r.DB.Where("lojista_id = ? AND status = ? AND quantidade_atual > 0", lojistaID, StatusAtivo).
		Order("nome").
		Find(&ps).Error
	return ps, err
}

// Visão do admin: todos os produtos com o lojista, mais críticos primeiro.
func (r *Repository) ListarEstoqueCompleto() ([]Produto, error) {
	var ps []Produto
	err := r.DB.Preload("Lojista").
		Order("quantidade_atual ASC").
		Find(&ps).Error
	return ps, err
}

func (r *Repository) Update(p *Produto) error {
	return r.DB.Save(p).Error
}

func (r *Repository) AtualizarLocalizacao(id uint, localizacao string) error {
	res := r.DB.Model(&Produto{}).Where("id = ?", id).Update("localizacao", localizacao)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
