package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config concentra a configuração do serviço lida do ambiente.
type Config struct {
	Porta int

	DBHost            string
	DBPorta           uint
	DBNome            string
	DBUsuario         string
	DBSenha           string
	DBSSLDesabilitado bool

	RedisAddr string

	JWTSegredo string

	// Limites e padrões do motor de cálculo.
	HorizonteMaxAnos            int
	TaxaDescontoPadraoPct       float64
	TaxaFinanciamentoPadraoPct  float64
	TaxaReinvestimentoPadraoPct float64

	OTELEndpoint string
	OTELServico  string
}

// Carregar lê o .env (se existir) e monta a configuração com os padrões de
// desenvolvimento local.
func Carregar() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Porta:             lerInt("PORTA", 8080),
		DBHost:            lerString("DB_HOST", "localhost"),
		DBPorta:           uint(lerInt("DB_PORT", 5432)),
		DBNome:            lerString("DB_NAME", "imoveis"),
		DBUsuario:         lerString("DB_USER", "postgres"),
		DBSenha:           lerString("DB_PASSWORD", "postgres"),
		DBSSLDesabilitado: lerString("DB_SSL_MODE_DISABLE", "true") == "true",

		RedisAddr: lerString("REDIS_ADDR", ""),

		JWTSegredo: lerString("JWT_SECRET", ""),

		HorizonteMaxAnos:            lerInt("HORIZONTE_MAX_ANOS", 50),
		TaxaDescontoPadraoPct:       lerFloat("TAXA_DESCONTO_PADRAO", 8),
		TaxaFinanciamentoPadraoPct:  lerFloat("TAXA_FINANCIAMENTO_PADRAO", 4),
		TaxaReinvestimentoPadraoPct: lerFloat("TAXA_REINVESTIMENTO_PADRAO", 5),

		OTELEndpoint: lerString("OTEL_ENDPOINT", ""),
		OTELServico:  lerString("OTEL_SERVICE_NAME", "api-imoveis"),
	}
	return cfg, nil
}

func lerString(chave, padrao string) string {
	if valor := os.Getenv(chave); valor != "" {
		return valor
	}
	return padrao
}

func lerInt(chave string, padrao int) int {
	if valor := os.Getenv(chave); valor != "" {
		if n, err := strconv.Atoi(valor); err == nil {
			return n
		}
	}
	return padrao
}

func lerFloat(chave string, padrao float64) float64 {
	if valor := os.Getenv(chave); valor != "" {
		if f, err := strconv.ParseFloat(valor, 64); err == nil {
			return f
		}
	}
	return padrao
}
