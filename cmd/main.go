package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAgendamentoHandler "github.com/ubsagenda/agendamento-service/internal/api/handlers/create_agendamento"
	getAgendamentosHandler "github.com/ubsagenda/agendamento-service/internal/api/handlers/get_agendamentos"
	getAvailableSlotsHandler "github.com/ubsagenda/agendamento-service/internal/api/handlers/get_available_slots"
	"github.com/ubsagenda/agendamento-service/internal/api/middleware"
	"github.com/ubsagenda/agendamento-service/internal/config"
	agendamentoRepo "github.com/ubsagenda/agendamento-service/internal/infra/storage/agendamento"
	slotRepo "github.com/ubsagenda/agendamento-service/internal/infra/storage/slot"
	postoClient "github.com/ubsagenda/agendamento-service/internal/integrations/posto"
	agendamentosService "github.com/ubsagenda/agendamento-service/internal/service/agendamentos"
	"github.com/ubsagenda/agendamento-service/internal/service/roster"
	createAgendamentoUC "github.com/ubsagenda/agendamento-service/internal/usecase/create_agendamento"
	getAvailableSlotsUC "github.com/ubsagenda/agendamento-service/internal/usecase/get_available_slots"
	"github.com/ubsagenda/agendamento-service/pkg/dbmetrics"
	"github.com/ubsagenda/agendamento-service/pkg/logger"
	"github.com/ubsagenda/agendamento-service/pkg/metrics"
	"github.com/ubsagenda/agendamento-service/pkg/simpletxmanager"
	"github.com/ubsagenda/agendamento-service/pkg/txmanager"
)

func main() {
	// Carrega a configuração
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializa o logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting agendamento-service...")
	log.Info("Configuration loaded from config.toml")

	// Fuso da unidade (datas e horas dos agendamentos)
	loc, err := time.LoadLocation(cfg.Agenda.Timezone)
	if err != nil {
		log.Fatal("Invalid timezone %q: %v", cfg.Agenda.Timezone, err)
	}

	// Inicializa as métricas (se habilitadas)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Conecta no banco
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Inicializa repositórios e transaction manager (com métricas ou sem)
	var (
		slotRepository        *slotRepo.Repository
		agendamentoRepository *agendamentoRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		agendamentoRepository = agendamentoRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		agendamentoRepository = agendamentoRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Integração com a planilha do posto (opcional)
	var (
		tabLocator  createAgendamentoUC.TabLocator
		postoWriter createAgendamentoUC.PostoWriter
	)
	if cfg.Posto.Enabled() {
		client := postoClient.NewClient(
			cfg.Posto.URL,
			cfg.Posto.PlanilhaID,
			time.Duration(cfg.Posto.Timeout)*time.Second,
			log,
		)

		sufixos := make(map[int]string, len(cfg.Posto.YearSuffixes))
		for ano, sufixo := range cfg.Posto.YearSuffixes {
			n, err := strconv.Atoi(ano)
			if err != nil {
				log.Fatal("Invalid year %q in posto.year_suffixes", ano)
			}
			sufixos[n] = sufixo
		}

		tabLocator = roster.NewLocator(client, cfg.Posto.Equipe, sufixos, log)
		postoWriter = client
		log.Info("Posto integration enabled (url=%s, planilha=%s, equipe=%s)",
			cfg.Posto.URL, cfg.Posto.PlanilhaID, cfg.Posto.Equipe)
	} else {
		log.Warn("Posto integration disabled (posto.url or posto.planilha_id not set)")
	}

	// Serviços
	agendamentosSvc := agendamentosService.NewService(agendamentoRepository, log)

	// Use cases
	createAgendamentoUseCase := createAgendamentoUC.NewUseCase(
		slotRepository,
		agendamentoRepository,
		tabLocator,
		postoWriter,
		txMgr,
		loc,
		cfg.Posto.Equipe,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, log)

	// Handlers
	createAgendamento := createAgendamentoHandler.NewHandler(createAgendamentoUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAgendamentos := getAgendamentosHandler.NewHandler(agendamentosSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Rotas de compatibilidade com o frontend original (estilo Apps Script)
	r.HandleFunc("/exec", getAvailableSlots.HandleExec).Methods(http.MethodGet)
	r.HandleFunc("/exec", createAgendamento.Handle).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/exec", getAvailableSlots.HandleExec).Methods(http.MethodGet)
	api.HandleFunc("/exec", createAgendamento.Handle).Methods(http.MethodPost)

	// Rotas públicas (pacientes)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/agendamentos", createAgendamento.Handle).Methods(http.MethodPost)

	// Rotas de gestão (exigem X-Admin-Token)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Auth.AdminToken))
	protected.HandleFunc("/agendamentos", getAgendamentos.Handle).Methods(http.MethodGet)

	// Servidor HTTP
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
