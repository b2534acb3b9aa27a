package pedido

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Listar filtra por lojista e/ou status; lojistaID vazio significa a visão do
// admin (todos os pedidos).
func (r *Repository) Listar(lojistaID string, statuses []Status) ([]Pedido, error) {
	query := r.DB.Preload("Itens").Order("data_criacao DESC")
	if lojistaID != "" {
		query = query.Where("lojista_id = ?", lojistaID)
	}
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var pedidos []Pedido
	err := query.Find(&pedidos).Error
	return pedidos, err
}

func (r *Repository) BuscarPorID(id uint) (*Pedido, error) {
	var p Pedido
	err := r.DB.Preload("Itens.Produto").
		Preload("Historico", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Lojista").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
