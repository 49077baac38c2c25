package app

import (
	"context"
	"net/http"

	rouletteAPI "roulette_bot/internal/api/roulette"
	"roulette_bot/internal/config"
	"roulette_bot/internal/config/env"
	"roulette_bot/internal/logger"
	"roulette_bot/internal/metrics"
	"roulette_bot/internal/middleware"
	"roulette_bot/internal/repository"
	"roulette_bot/internal/repository/session_repo"
	"roulette_bot/internal/repository/stats_repo"
	"roulette_bot/internal/service"
	"roulette_bot/internal/service/roulette"
	"roulette_bot/internal/service/roulette/wheel"
	"roulette_bot/pkg/resp"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServiceProvider struct {
	// Configs
	configPath  string
	httpCfg     config.HTTPConfig
	jwtCfg      config.JWTConfig
	logCfg      config.LogConfig
	sessionCfg  config.SessionConfig
	rouletteCfg config.RouletteConfig

	// Ambient
	logger   *log.Logger
	clock    quartz.Clock
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Roulette bits
	sessionRepo  repository.SessionRepository
	statsRepo    *stats_repo.StateRepo
	machine      *roulette.Machine
	rouletteServ service.RouletteService
	rouletteHand *rouletteAPI.Handler

	// Router
	router chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) RouletteCfg() config.RouletteConfig {
	if sp.rouletteCfg == nil {
		path := sp.configPath
		if path == "" {
			path = env.RouletteConfigPath()
		}
		cfg, err := env.NewRouletteConfigFromYAML(path)
		if err != nil {
			panic("failed to get roulette config: " + err.Error())
		}
		sp.rouletteCfg = cfg
	}
	return sp.rouletteCfg
}

func (sp *ServiceProvider) Logger() *log.Logger {
	if sp.logger == nil {
		cfg := sp.LogCfg()
		sp.logger = logger.MustNew(cfg.Env(), cfg.Level())
	}
	return sp.logger
}

func (sp *ServiceProvider) Clock() quartz.Clock {
	if sp.clock == nil {
		sp.clock = quartz.NewReal()
	}
	return sp.clock
}

func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New(sp.Registry())
		metrics.RegisterSessionGauge(sp.Registry(), sp.SessionRepository().Len)
	}
	return sp.metrics
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.Clock())
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StatsRepository() *stats_repo.StateRepo {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.RouletteCfg().StatsWindowSize(), sp.Clock(), sp.Logger())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) Machine() *roulette.Machine {
	if sp.machine == nil {
		cfg := sp.RouletteCfg()
		sp.machine = roulette.NewMachine(wheel.New(wheel.NewSource(cfg.Seed())), cfg.Stakes(), cfg.MaxStake())
	}
	return sp.machine
}

func (sp *ServiceProvider) RouletteService() service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(
			sp.Machine(),
			sp.SessionRepository(),
			sp.StatsRepository(),
			sp.Metrics(),
			sp.Logger(),
		)
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) RouletteHandler() *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		cfg := sp.RouletteCfg()
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Serv: sp.RouletteService(),
			// Кадры анимации не должны сдвигать последовательность настоящего колеса
			Spinner: rouletteAPI.NewSpinner(sp.Clock(), wheel.NewSource(0), cfg.AnimationFrames(), cfg.AnimationDelay()),
			Logger:  sp.Logger(),
		})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logger(sp.Logger()))
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Handle("/metrics", promhttp.HandlerFor(sp.Registry(), promhttp.HandlerOpts{}))

		// Roulette endpoints
		rouletteHandler := sp.RouletteHandler()
		r.Route("/roulette", func(rr chi.Router) {
			rr.Get("/stats", rouletteHandler.Stats)

			rr.Group(func(auth chi.Router) {
				auth.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))
				auth.Post("/events", rouletteHandler.Event)
				auth.Get("/session", rouletteHandler.Session)
				auth.Get("/prompt", rouletteHandler.Prompt)
				auth.Get("/ws", rouletteHandler.Stream)
			})
		})

		sp.router = r
	}
	return sp.router
}
