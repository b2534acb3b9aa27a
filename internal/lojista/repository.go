package lojista

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, l *Lojista) error
	BuscarPorID(db *gorm.DB, id string) (*Lojista, error)
	BuscarPorEmailOuCNPJ(db *gorm.DB, valor string) (*Lojista, error)
	ListarTodos(db *gorm.DB) ([]Lojista, error)
	Atualizar(db *gorm.DB, id string, novosDados *AtualizarLojistaDTO) (*Lojista, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *Lojista) error {
	return db.Save(l).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Lojista, error) {
	var l Lojista
	if err := db.First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// Busca primeiro por e-mail, depois por CNPJ, para evitar ambiguidade.
// Só a ausência de registro vira ErrRecordNotFound; falhas do banco sobem
// como estão.
func (r *repositoryImpl) BuscarPorEmailOuCNPJ(db *gorm.DB, valor string) (*Lojista, error) {
	var l Lojista

	err := db.Where("email = ?", valor).First(&l).Error
	if err == nil {
		return &l, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := db.Where("cnpj = ?", valor).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Lojista, error) {
	var lojistas []Lojista
	err := db.Order("nome_fantasia").Find(&lojistas).Error
	return lojistas, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id string, novosDados *AtualizarLojistaDTO) (*Lojista, error) {
	var existente Lojista
	if err := db.First(&existente, "id = ?", id).Error; err != nil {
		return nil, err
	}

	existente.NomeFantasia = novosDados.NomeFantasia
	existente.NomeContato = novosDados.NomeContato
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.CNPJ = novosDados.CNPJ
	existente.ComissaoPercentual = novosDados.ComissaoPercentual
	existente.EnderecoCompleto = novosDados.EnderecoCompleto
	existente.Observacoes = novosDados.Observacoes
	existente.Ativo = novosDados.Ativo

	if err := db.Save(&existente).Error; err != nil {
		return nil, err
	}
	return &existente, nil
}
