package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "cattery-breeding/docs"
	"cattery-breeding/internal/adapters/storage/cached"
	mem "cattery-breeding/internal/adapters/storage/memory"
	pg "cattery-breeding/internal/adapters/storage/postgres"
	"cattery-breeding/internal/domain/cats"
	"cattery-breeding/internal/domain/kittens"
	"cattery-breeding/internal/domain/litters"
	"cattery-breeding/internal/middleware"
	"cattery-breeding/internal/platform/logger"
	"cattery-breeding/internal/ports/auth"
	"cattery-breeding/internal/ports/cache"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: read-through de litters por id.
	Cache    cache.Store
	CacheTTL time.Duration

	Logger   logger.Logger        // nil => nop
	Registry *prometheus.Registry // nil => uno nuevo por router
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewMetrics(reg).Handler)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		litterRepo litters.Repository
		noteRepo   litters.NoteRepository
		kittenRepo kittens.Repository
		weightRepo kittens.WeightRepository
		catRepo    cats.Repository
	)

	if opts.DB != nil {
		litterRepo = pg.NewLittersRepo(opts.DB)
		noteRepo = pg.NewPregnancyNotesRepo(opts.DB)
		kittenRepo = pg.NewKittensRepo(opts.DB)
		weightRepo = pg.NewKittenWeightsRepo(opts.DB)
		catRepo = pg.NewCatsRepo(opts.DB)
	} else {
		store := mem.NewStore()
		litterRepo = store.Litters()
		noteRepo = store.PregnancyNotes()
		kittenRepo = store.Kittens()
		weightRepo = store.Weights()
		catRepo = mem.NewCatRepo()
	}

	if opts.Cache != nil {
		litterRepo = cached.NewLittersRepo(litterRepo, opts.Cache, opts.CacheTTL, log)
	}

	// Services por módulo
	littersSvc := litters.NewService(litterRepo, noteRepo)
	kittensSvc := kittens.NewService(kittenRepo, weightRepo)
	catsSvc := cats.NewService(catRepo)

	// Rutas por módulo
	litters.RegisterRoutes(r, littersSvc)
	kittens.RegisterRoutes(r, kittensSvc, littersSvc)
	cats.RegisterRoutes(r, catsSvc)

	return r
}
