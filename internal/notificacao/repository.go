package notificacao

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(n *Notificacao) error {
	return r.DB.Create(n).Error
}

func (r *Repository) ListarPorUsuario(usuarioID string) ([]Notificacao, error) {
	var ns []Notificacao
	err := r.DB.Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Find(&ns).Error
	return ns, err
}

func (r *Repository) MarcarComoLida(id uint, usuarioID string) error {
	res := r.DB.Model(&Notificacao{}).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		Update("lida", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Só as não lidas do próprio canal; canais de outros usuários ficam intactos.
func (r *Repository) MarcarTodasComoLidas(usuarioID string) error {
	return r.DB.Model(&Notificacao{}).
		Where("usuario_id = ? AND lida = ?", usuarioID, false).
		Update("lida", true).Error
}
