package imovel

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, i *Imovel) error
	BuscarPorID(db *gorm.DB, id uint) (*Imovel, error)
	ListarPorInvestidor(db *gorm.DB, investidorID uint) ([]Imovel, error)
	ListarTodos(db *gorm.DB) ([]Imovel, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Imovel) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, i *Imovel) error {
	return db.Save(i).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Imovel, error) {
	var i Imovel
	if err := db.First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repositoryImpl) ListarPorInvestidor(db *gorm.DB, investidorID uint) ([]Imovel, error) {
	var imoveis []Imovel
	err := db.Where("investidor_id = ?", investidorID).Find(&imoveis).Error
	return imoveis, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Imovel, error) {
	var imoveis []Imovel
	err := db.Find(&imoveis).Error
	return imoveis, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Imovel) error {
	var existente Imovel
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Pais = novosDados.Pais
	existente.PrecoCompra = novosDados.PrecoCompra
	existente.ValorMercado = novosDados.ValorMercado
	existente.AluguelMensal = novosDados.AluguelMensal
	existente.DespesasMensais = novosDados.DespesasMensais
	existente.Entrada = novosDados.Entrada
	existente.SaldoFinanciamento = novosDados.SaldoFinanciamento
	existente.PrestacaoMensal = novosDados.PrestacaoMensal
	existente.TaxaJurosAnualPct = novosDados.TaxaJurosAnualPct
	existente.PrazoTotalMeses = novosDados.PrazoTotalMeses
	existente.MesesDecorridos = novosDados.MesesDecorridos
	existente.CustosFechamento = novosDados.CustosFechamento

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Imovel{}, id).Error
}
