package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ImovelPrime/api-imoveis/internal/auth"
	"github.com/ImovelPrime/api-imoveis/internal/cache"
	"github.com/ImovelPrime/api-imoveis/internal/config"
	"github.com/ImovelPrime/api-imoveis/internal/imovel"
	"github.com/ImovelPrime/api-imoveis/internal/investidor"
	"github.com/ImovelPrime/api-imoveis/internal/premissas"
	"github.com/ImovelPrime/api-imoveis/internal/projecao"
	"github.com/ImovelPrime/api-imoveis/internal/telemetria"
	"github.com/ImovelPrime/api-imoveis/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Carregar()
	if err != nil {
		log.Fatal("Erro ao carregar configuração:", err)
	}

	if err := auth.Configurar(cfg.JWTSegredo); err != nil {
		log.Fatal("Erro ao configurar autenticação:", err)
	}

	if err := telemetria.IniciarTracing(cfg.OTELServico, cfg.OTELEndpoint); err != nil {
		log.Fatal("Erro ao iniciar tracing:", err)
	}

	conexao, err := db.Conectar(cfg)
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conexao.AutoMigrate(
		&investidor.Investidor{},
		&imovel.Imovel{},
		&premissas.PremissasEconomicas{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Redis quando configurado; cache em memória como fallback local.
	var armazemCache cache.Repository = cache.NewCacheMemoria()
	if cfg.RedisAddr != "" {
		armazemCache = cache.NewRedisCache(cfg.RedisAddr)
	}

	// Handlers
	investidorHandler := investidor.NewHandler(conexao)
	imovelHandler := imovel.NewHandler(conexao)
	premissasHandler := premissas.NewHandler(conexao)
	projecaoHandler := projecao.NewHandler(conexao, armazemCache, cfg)

	// Router
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Rotas públicas
	r.HandleFunc("/login", investidorHandler.Login).Methods("POST")
	r.HandleFunc("/investidores", investidorHandler.Criar).Methods("POST")
	r.HandleFunc("/simulacoes", projecaoHandler.Simular).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/investidores", investidorHandler.Listar).Methods("GET")
	api.HandleFunc("/investidores/{id}", investidorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/investidores/{id}", investidorHandler.Deletar).Methods("DELETE")

	api.HandleFunc("/imoveis", imovelHandler.Criar).Methods("POST")
	api.HandleFunc("/imoveis", imovelHandler.Listar).Methods("GET")
	api.HandleFunc("/imoveis/{id}", imovelHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/imoveis/{id}", imovelHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/imoveis/{id}", imovelHandler.Deletar).Methods("DELETE")

	api.HandleFunc("/imoveis/{id}/metricas", projecaoHandler.Metricas).Methods("GET")
	api.HandleFunc("/imoveis/{id}/projecao", projecaoHandler.Projecao).Methods("GET")
	api.HandleFunc("/imoveis/{id}/amortizacao", projecaoHandler.Amortizacao).Methods("GET")

	api.HandleFunc("/premissas", premissasHandler.Listar).Methods("GET")
	api.HandleFunc("/premissas/{pais}", premissasHandler.BuscarPorPais).Methods("GET")

	// Rotas administrativas (cadastro de premissas por país)
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.ExigirAdmin)
	admin.HandleFunc("/premissas", premissasHandler.Criar).Methods("POST")
	admin.HandleFunc("/premissas/{pais}", premissasHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/premissas/{pais}", premissasHandler.Deletar).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	servidor := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Porta),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("Servidor rodando em http://localhost:%d\n", cfg.Porta)
		if err := servidor.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Erro no servidor HTTP:", err)
		}
	}()

	parada := make(chan os.Signal, 1)
	signal.Notify(parada, syscall.SIGINT, syscall.SIGTERM)
	<-parada

	ctx, cancelar := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelar()
	if err := servidor.Shutdown(ctx); err != nil {
		log.Fatal("Erro no desligamento do servidor:", err)
	}
	log.Println("Servidor encerrado")
}
