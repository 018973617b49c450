package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/hothat-pawa/go-backend/internal/cfg"
	v1Http "github.com/hothat-pawa/go-backend/internal/delivery/v1/http"
	"github.com/hothat-pawa/go-backend/internal/infrastructure/advisor"
	"github.com/hothat-pawa/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/hothat-pawa/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/hothat-pawa/go-backend/internal/repository/minio"
	"github.com/hothat-pawa/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/hothat-pawa/go-backend/internal/repository/pgdb/converter"
	"github.com/hothat-pawa/go-backend/internal/repository/redis"
	redisConv "github.com/hothat-pawa/go-backend/internal/repository/redis/converter"
	"github.com/hothat-pawa/go-backend/internal/usecase"
	"github.com/hothat-pawa/go-backend/pkg/clients"
	"github.com/hothat-pawa/go-backend/pkg/closer"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/hothat-pawa/go-backend/pkg/logger"
	"github.com/hothat-pawa/go-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App связывает все слои приложения и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	catalogUC    *usecase.CatalogUseCase
	imagesInfra  *minioInfra.MinioInfrastructure
	outboxWorker *kafka.OutboxWorker
	httpSrv      *v1Http.Server
	closer       *closer.Closer

	shutdownCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	const op = "app.NewApp"

	cl := closer.NewCloser(0)

	// Контекст для фоновых компенсаций: живёт дольше контекста запроса,
	// отменяется последним этапом завершения.
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	db, err := initPGDB(log, cfg)
	if err != nil {
		shutdownCancel()
		return nil, e.Wrap(op, err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("PostgreSQL pool closed")
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		shutdownCancel()
		return nil, e.Wrap(op, err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		shutdownCancel()
		return nil, e.Wrap(op, err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		shutdownCancel()
		return nil, e.Wrap(op, err)
	}

	genaiCtx, genaiCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer genaiCancel()
	genaiClient, err := clients.NewGenAIClient(genaiCtx, cfg.Gemini)
	if err != nil {
		shutdownCancel()
		return nil, e.Wrap(op, err)
	}

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		shutdownCancel()
		return nil, e.Wrap(op, err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		shutdownCancel()
		return nil, e.Wrap(op, err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	prConv := pgdbConv.NewProductConverterImpl()
	catConv := pgdbConv.NewCategoryConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	cartConv := redisConv.NewCartConverterImpl()
	chatConv := redisConv.NewChatConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)
	cartRepo := redis.NewCartRepo(redisClient, cartConv, cfg.Redis)
	chatRepo := redis.NewChatRepo(redisClient, chatConv, cfg.Redis)
	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, shutdownCtx)
	geminiAdvisor := advisor.NewGeminiAdvisor(genaiClient, cfg.Gemini, log)

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, outboxRepo, db.Pool, imagesInfra, log)
	cartUC := usecase.NewCartUC(cartRepo, catalogUC, log)
	chatUC := usecase.NewChatUC(chatRepo, catalogUC, geminiAdvisor, log, cfg.Chat.HistoryWindow)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg, log)
	router.Init(catalogUC, cartUC, chatUC)

	return &App{
		cfg:            cfg,
		logger:         log,
		catalogUC:      catalogUC,
		imagesInfra:    imagesInfra,
		outboxWorker:   outboxWorker,
		httpSrv:        v1Http.NewServer(r, cfg.Http),
		closer:         cl,
		shutdownCancel: shutdownCancel,
	}, nil
}

// Run загружает каталог, запускает outbox-воркер и HTTP-сервер, а затем
// блокируется до сигнала завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())

	a.catalogUC.Load(workerCtx)

	a.outboxWorker.Start(workerCtx)
	a.closer.Add(func(ctx context.Context) error {
		workerCancel()
		a.outboxWorker.Stop()
		a.logger.Infof("outbox worker stopped")
		return nil
	})

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.imagesInfra.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup error: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource shutdown error: %v", err)
	}
	a.shutdownCancel()

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
