package investidor

import "gorm.io/gorm"

// Investidor é o dono de uma carteira de imóveis.
type Investidor struct {
	gorm.Model
	Nome     string `json:"nome"`
	Email    string `json:"email" gorm:"unique"`
	Telefone string `json:"telefone"`
	Senha    string `json:"-"`
	Admin    bool   `json:"-"`
}
