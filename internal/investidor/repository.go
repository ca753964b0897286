package investidor

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, inv *Investidor) error
	BuscarPorID(db *gorm.DB, id uint) (*Investidor, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Investidor, error)
	ListarTodos(db *gorm.DB) ([]Investidor, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, inv *Investidor) error {
	return db.Save(inv).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Investidor, error) {
	var inv Investidor
	err := db.First(&inv, id).Error
	return &inv, err
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Investidor, error) {
	var inv Investidor
	err := db.Where("email = ?", email).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Investidor, error) {
	var investidores []Investidor
	err := db.Find(&investidores).Error
	return investidores, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Investidor{}, id).Error
}
