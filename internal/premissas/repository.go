package premissas

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, p *PremissasEconomicas) error
	BuscarPorPais(db *gorm.DB, pais string) (*PremissasEconomicas, error)
	ListarTodas(db *gorm.DB) ([]PremissasEconomicas, error)
	Deletar(db *gorm.DB, pais string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *PremissasEconomicas) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorPais(db *gorm.DB, pais string) (*PremissasEconomicas, error) {
	var p PremissasEconomicas
	if err := db.Where("pais = ?", pais).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]PremissasEconomicas, error) {
	var lista []PremissasEconomicas
	err := db.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, pais string) error {
	return db.Where("pais = ?", pais).Delete(&PremissasEconomicas{}).Error
}
