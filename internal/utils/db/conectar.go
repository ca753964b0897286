package db

import (
	"fmt"

	"github.com/ImovelPrime/api-imoveis/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre a conexão postgres com as credenciais da configuração.
func Conectar(cfg *config.Config) (*gorm.DB, error) {
	var sslMode string
	if cfg.DBSSLDesabilitado {
		sslMode = " sslmode=disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		cfg.DBHost, cfg.DBUsuario, cfg.DBSenha, cfg.DBNome, cfg.DBPorta, sslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
