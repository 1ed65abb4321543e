package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/app/server"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/catalog"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/config"
	deliveryhttp "github.com/denisemathewspdf/tech-with-denise-sub000/internal/delivery/http"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service/aggregate"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service/checkout"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service/entitlement"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service/progress"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service/query"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/storage/elastic"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/storage/memory"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/storage/minio_storage"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/storage/postgres"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
)

type progressRepo interface {
	LoadRecord(ctx context.Context) (models.ProgressRecord, error)
	SaveRecord(ctx context.Context, rec models.ProgressRecord) error
}

func Run(cfg *config.Config) {

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	cat := catalog.MustLoad(cfg.Catalog.Path)
	log.Info("catalog loaded", "modules", len(cat.Modules()), "lessons", cat.TotalLessons())

	var repo progressRepo
	var pg *postgres.Storage
	if cfg.Progress.Driver == "memory" {
		repo = memory.NewProgressMemory()
	} else {
		var err error
		pg, err = postgres.NewPostgresPool(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
		if err != nil {
			log.FatalErr("error connecting to database", err)
		}
		defer pg.Close()
		repo = postgres.NewProgressPostgres(pg.Pool, cfg.Progress.RecordKey)
	}

	ms, err := minio_storage.NewMinioStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL, cfg.Minio.Buckets)
	if err != nil {
		log.FatalErr("error connecting to minio", err)
	}
	mediaBucket := cfg.Minio.Buckets["media"]
	media := minio_storage.NewMediaStorage(ms, mediaBucket.Name, mediaBucket.PresignTTL)

	esClient, err := elastic.NewElasticClient(cfg.ES.Password, cfg.ES.Hosts)
	if err != nil {
		log.FatalErr("error connecting to elasticsearch", err)
	}
	search := elastic.NewModuleSearchRepository(esClient, cfg.ES.Index)
	if err := search.CreateIndexIfNotExist(context.Background()); err != nil {
		log.FatalErr("error preparing search index", err)
	}
	if err := search.IndexCatalog(context.Background(), cat.Modules()); err != nil {
		log.FatalErr("error indexing catalog", err)
	}

	progressService := progress.NewProgressService(log, repo, cat)
	gate := entitlement.NewEntitlementGate(log, cfg.Entitlement.PreviewModules)
	aggregator := aggregate.NewProgressAggregator(log, cat, progressService)
	checkoutService, err := checkout.NewCheckoutService(log, cfg.Checkout)
	if err != nil {
		log.FatalErr("checkout configuration is invalid", err)
	}
	queryService := query.NewModuleQueryService(log, cat, aggregator, gate, progressService, media, search)

	u := service.Collection{
		ProgressService:    progressService,
		EntitlementGate:    gate,
		ProgressAggregator: aggregator,
		CheckoutService:    checkoutService,
		ModuleQueryService: queryService,
	}

	defaultEnt := models.Entitlement{
		Tier:         cfg.Entitlement.Tier,
		ChosenModule: cfg.Entitlement.ChosenModule,
	}

	r := deliveryhttp.InitRoutes(log, u, cfg.HTTPServer.AllowOrigin, defaultEnt)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server stopped", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown failed", err)
	}
}
