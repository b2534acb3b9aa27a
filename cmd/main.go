package main

import (
	"context"
	"net/http"
	"os"

	"github.com/ArmazemHub/api-lojista/internal/auth"
	"github.com/ArmazemHub/api-lojista/internal/dashboard"
	"github.com/ArmazemHub/api-lojista/internal/email"
	"github.com/ArmazemHub/api-lojista/internal/estoque"
	"github.com/ArmazemHub/api-lojista/internal/lojista"
	"github.com/ArmazemHub/api-lojista/internal/notificacao"
	"github.com/ArmazemHub/api-lojista/internal/pedido"
	"github.com/ArmazemHub/api-lojista/internal/produto"
	"github.com/ArmazemHub/api-lojista/internal/realtime"
	"github.com/ArmazemHub/api-lojista/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if os.Getenv("JWT_SECRET") == "" {
		logrus.Fatal("JWT_SECRET não definida")
	}

	database, err := db.GetDB()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := lojista.Migrate(database); err != nil {
		logrus.WithError(err).Fatal("Erro no AutoMigrate de lojistas")
	}
	if err := produto.Migrate(database); err != nil {
		logrus.WithError(err).Fatal("Erro no AutoMigrate de produtos")
	}
	if err := estoque.Migrate(database); err != nil {
		logrus.WithError(err).Fatal("Erro no AutoMigrate de movimentações")
	}
	if err := pedido.Migrate(database); err != nil {
		logrus.WithError(err).Fatal("Erro no AutoMigrate de pedidos")
	}
	if err := notificacao.Migrate(database); err != nil {
		logrus.WithError(err).Fatal("Erro no AutoMigrate de notificações")
	}

	// Canal realtime: com Redis publica eventos tipados, sem Redis descarta.
	var publisher realtime.Publisher = realtime.NoopPublisher{}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := realtime.NovoClienteRedis(context.Background(), addr)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar no Redis")
		}
		publisher = realtime.NewRedisPublisher(client)
		logrus.Info("Canal realtime habilitado via Redis")
	}

	sender := email.NewLogSender()

	// Handlers
	authHandler := auth.NewHandler(database)
	lojistaHandler := lojista.NewHandler(database, sender)
	produtoHandler := produto.NewHandler(produto.NewRepository(database), publisher)
	estoqueHandler := estoque.NewHandler(estoque.NewService(database), publisher)
	pedidoHandler := pedido.NewHandler(database, publisher)
	notificacaoHandler := notificacao.NewHandler(notificacao.NewRepository(database))
	dashboardHandler := dashboard.NewHandler(database)
	emailHandler := email.NewHandler(sender)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/enviar-email", emailHandler.EnviarEmail).Methods("POST")

	// Rotas autenticadas (lojista ou admin)
	protegido := r.NewRoute().Subrouter()
	protegido.Use(auth.MiddlewareAutenticacao)

	protegido.HandleFunc("/senha", authHandler.RedefinirSenha).Methods("PUT")

	// Rotas de produtos
	protegido.HandleFunc("/produtos", produtoHandler.CriarProduto).Methods("POST")
	protegido.HandleFunc("/produtos", produtoHandler.ListarMeusProdutos).Methods("GET")
	protegido.HandleFunc("/produtos/disponiveis", produtoHandler.ListarDisponiveis).Methods("GET")
	protegido.HandleFunc("/produtos/{id:[0-9]+}", produtoHandler.AtualizarProduto).Methods("PUT")
	protegido.HandleFunc("/produtos/{id:[0-9]+}/movimentacoes", estoqueHandler.RegistrarMovimentacao).Methods("POST")
	protegido.HandleFunc("/produtos/{id:[0-9]+}/movimentacoes", estoqueHandler.ListarMovimentacoes).Methods("GET")

	// Rotas de pedidos
	protegido.HandleFunc("/pedidos", pedidoHandler.CriarPedido).Methods("POST")
	protegido.HandleFunc("/pedidos", pedidoHandler.ListarPedidos).Methods("GET")
	protegido.HandleFunc("/pedidos/{id:[0-9]+}", pedidoHandler.BuscarPorID).Methods("GET")

	// Rotas de notificações
	protegido.HandleFunc("/notificacoes", notificacaoHandler.ListarNotificacoes).Methods("GET")
	protegido.HandleFunc("/notificacoes/{id:[0-9]+}/lida", notificacaoHandler.MarcarComoLida).Methods("PATCH")
	protegido.HandleFunc("/notificacoes/marcar-todas-lidas", notificacaoHandler.MarcarTodasComoLidas).Methods("POST")

	protegido.HandleFunc("/dashboard/lojista", dashboardHandler.StatsLojista).Methods("GET")

	// Rotas administrativas
	admin := r.NewRoute().Subrouter()
	admin.Use(auth.MiddlewareAutenticacao, auth.RequireAdmin)

	admin.HandleFunc("/lojistas", lojistaHandler.CriarLojista).Methods("POST")
	admin.HandleFunc("/lojistas", lojistaHandler.ListarLojistas).Methods("GET")
	admin.HandleFunc("/lojistas/{id}", lojistaHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/lojistas/{id}", lojistaHandler.AtualizarLojista).Methods("PUT")

	admin.HandleFunc("/estoque", produtoHandler.ListarEstoqueCompleto).Methods("GET")
	admin.HandleFunc("/produtos/{id:[0-9]+}/localizacao", produtoHandler.DefinirLocalizacao).Methods("PATCH")

	admin.HandleFunc("/pedidos/fila-separacao", pedidoHandler.FilaSeparacao).Methods("GET")
	admin.HandleFunc("/pedidos/{id:[0-9]+}/status", pedidoHandler.AvancarStatus).Methods("PATCH")

	admin.HandleFunc("/dashboard/admin", dashboardHandler.StatsAdmin).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	logrus.Infof("Servidor rodando em http://localhost:%s", porta)
	logrus.Fatal(http.ListenAndServe(":"+porta, handler))
}
