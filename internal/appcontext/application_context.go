package appcontext

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/api/router"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/mail"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/infra/storage"
	"github.com/RoyceAzure/lab/storefront/internal/logger"
	"github.com/RoyceAzure/lab/storefront/internal/metrics"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/token"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf      *config.Config
	Logger  *zerolog.Logger
	Metrics *metrics.Metrics
	// 未設定 KAFKA_LOG_TOPIC 時為nil
	LogWriter *logger.KafkaLogWriter

	DbConn      *pgxpool.Pool
	GormDB      *gorm.DB
	DbDao       db.IStore
	RedisClient *redis.Client
	TokenRepo   redis_repo.ITokenRedisRepository
	TokenMaker  token.Maker
	Publisher   producer.IEventPublisher
	FileStorage *storage.LocalStorage
	Limiters    router.Limiters

	MailService    service.IMailService
	AuthService    service.IAuthService
	ProductService service.IProductService
	ReviewService  service.IReviewService
	CartService    service.ICartService
	OrderService   service.IOrderService
	AdminService   service.IAdminService
	SeedService    service.ISeedService
}

func NewApplicationContext(ctx context.Context, cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf:      cf,
		Metrics: metrics.New(),
	}
	if brokers := cf.KafkaBrokerList(); len(brokers) > 0 && cf.KafkaLogTopic != "" {
		app.LogWriter = logger.NewKafkaLogWriter(brokers, cf.KafkaLogTopic)
		app.Logger = logger.New(cf.Env, cf.LogLevel, app.LogWriter)
	} else {
		app.Logger = logger.New(cf.Env, cf.LogLevel)
	}
	app.Logger.Info().
		Str("env", cf.Env).
		Str("port", cf.ServerPort).
		Str("db_host", cf.DbHost).
		Str("redis_addr", cf.RedisAddr).
		Strs("kafka_brokers", cf.KafkaBrokerList()).
		Str("kafka_log_topic", cf.KafkaLogTopic).
		Str("rate_limit_type", cf.RateLimitType).
		Msg("load config")

	if err := app.Init(ctx); err != nil {
		// 已經建立的連線要釋放
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Shutdown(shutdownCtx)
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init(ctx context.Context) error {
	steps := []func(ctx context.Context) error{
		app.setUpDbConn,
		app.setUpDbMigration,
		app.setUpDbDao,
		app.setUpRedis,
		app.setUpTokenMaker,
		app.setUpPublisher,
		app.setUpFileStorage,
		app.setUpMailService,
		app.setUpAuthService,
		app.setUpProductService,
		app.setUpReviewService,
		app.setUpCartService,
		app.setUpOrderService,
		app.setUpAdminService,
		app.setUpSeedService,
		app.setUpLimiters,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}

	// 系統內沒有admin時建立預設admin
	app.Logger.Info().Msg("ensure default admin...")
	if err := app.AuthService.EnsureAdmin(ctx, app.Cf.AdminName, app.Cf.AdminEmail, app.Cf.AdminPassword); err != nil {
		return fmt.Errorf("ensure default admin: %w", err)
	}
	app.Logger.Info().Msg("ensure default admin successed")
	return nil
}

// DSN migrate 指令不需要建立整個context, 單獨提供
func DSN(cf *config.Config) string {
	return db.ConnConfig{
		DbName:   cf.DbName,
		Host:     cf.DbHost,
		Port:     cf.DbPort,
		User:     cf.DbUser,
		Password: cf.DbPas,
		SslMode:  cf.DbSslMode,
	}.DSN()
}

func (app *ApplicationContext) setUpDbConn(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup database connection")
	pool, gormDB, err := db.GetDbConn(ctx, DSN(app.Cf), app.Cf.DbMaxConns)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	app.DbConn = pool
	app.GormDB = gormDB
	app.Logger.Info().Msg("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpDbMigration(ctx context.Context) error {
	if !app.Cf.AutoMigrate {
		return nil
	}
	app.Logger.Info().Msg("Start setup database migration")
	if err := db.RunDBMigration(DSN(app.Cf)); err != nil {
		return fmt.Errorf("run migration: %w", err)
	}
	app.Logger.Info().Msg("Finish setup database migration")
	return nil
}

func (app *ApplicationContext) setUpDbDao(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup database DAO")
	app.DbDao = db.NewStore(app.GormDB)
	if err := app.DbDao.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	app.Logger.Info().Msg("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpRedis(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup redis")
	app.RedisClient = redis_repo.GetRedisClient(app.Cf.RedisAddr,
		redis_repo.WithPassword(app.Cf.RedisPassword),
		redis_repo.WithDB(app.Cf.RedisDB),
	)
	if err := redis_repo.PingRedis(ctx, app.RedisClient); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	app.TokenRepo = redis_repo.NewTokenRedisRepo(app.RedisClient)
	app.Logger.Info().Msg("Finish setup redis")
	return nil
}

func (app *ApplicationContext) setUpTokenMaker(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup token maker")
	tokenMaker, err := token.NewPasetoMaker(app.Cf.AuthTokenKey)
	if err != nil {
		return fmt.Errorf("create token maker: %w", err)
	}
	app.TokenMaker = tokenMaker
	app.Logger.Info().Msg("Finish setup token maker")
	return nil
}

// 沒有設定broker時事件只寫log
func (app *ApplicationContext) setUpPublisher(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup order event publisher")
	brokers := app.Cf.KafkaBrokerList()
	if len(brokers) == 0 {
		app.Publisher = producer.NewLogEventPublisher(app.Logger)
		app.Logger.Warn().Msg("kafka brokers not configured, order events are logged only")
		return nil
	}

	cfg := producer.DefaultConfig()
	cfg.Brokers = brokers
	cfg.Topic = app.Cf.KafkaOrderTopic
	publisher, err := producer.NewKafkaEventPublisher(cfg, app.Logger)
	if err != nil {
		return fmt.Errorf("create kafka publisher: %w", err)
	}
	app.Publisher = publisher
	app.Logger.Info().Msg("Finish setup order event publisher")
	return nil
}

func (app *ApplicationContext) setUpFileStorage(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup file storage")
	fileStorage, err := storage.NewLocalStorage(app.Cf.UploadDir)
	if err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	app.FileStorage = fileStorage
	app.Logger.Info().Str("dir", fileStorage.Dir()).Msg("Finish setup file storage")
	return nil
}

func (app *ApplicationContext) setUpMailService(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup mail service")
	var sender mail.EmailSender
	if app.Cf.SmtpHost == "" {
		sender = mail.NewLogSender(app.Logger)
	} else {
		sender = mail.NewSmtpSender(app.Cf.CompanyName, app.Cf.EmailAccount, app.Cf.SmtpAuthKey, app.Cf.SmtpHost, app.Cf.SmtpPort)
	}
	app.MailService = service.NewMailService(sender)
	app.Logger.Info().Msg("Finish setup mail service")
	return nil
}

func (app *ApplicationContext) setUpAuthService(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup auth service")
	app.AuthService = service.NewAuthService(app.DbDao, app.TokenMaker, app.TokenRepo, app.MailService, service.AuthConfig{
		AccessTokenDuration: time.Duration(app.Cf.AccessTokenHours) * time.Hour,
		ResetTokenTTL:       time.Duration(app.Cf.ResetTokenMinutes) * time.Minute,
		PublicURL:           app.Cf.PublicURL,
		CompanyName:         app.Cf.CompanyName,
	}, app.Logger)
	app.Logger.Info().Msg("Finish setup auth service")
	return nil
}

func (app *ApplicationContext) setUpProductService(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup product service")
	app.ProductService = service.NewProductService(app.DbDao, app.FileStorage, app.Logger)
	app.Logger.Info().Msg("Finish setup product service")
	return nil
}

func (app *ApplicationContext) setUpReviewService(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup review service")
	app.ReviewService = service.NewReviewService(app.DbDao, app.Logger)
	app.Logger.Info().Msg("Finish setup review service")
	return nil
}

func (app *ApplicationContext) setUpCartService(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup cart service")
	app.CartService = service.NewCartService(app.DbDao)
	app.Logger.Info().Msg("Finish setup cart service")
	return nil
}

func (app *ApplicationContext) setUpOrderService(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup order service")
	pricing := service.NewPricingPolicy(app.Cf.TaxRate, app.Cf.FreeShippingThreshold, app.Cf.FlatShippingFee)
	policy := service.NewStatusPolicy(app.Cf.StrictOrderTransitions)
	app.OrderService = service.NewOrderService(app.DbDao, app.Publisher, app.Metrics, pricing, policy, app.Logger)
	app.Logger.Info().Msg("Finish setup order service")
	return nil
}

func (app *ApplicationContext) setUpAdminService(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup admin service")
	app.AdminService = service.NewAdminService(app.DbDao, app.Logger)
	app.Logger.Info().Msg("Finish setup admin service")
	return nil
}

func (app *ApplicationContext) setUpSeedService(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup seed service")
	app.SeedService = service.NewSeedService(app.DbDao, app.AuthService, app.ProductService, app.Logger)
	app.Logger.Info().Msg("Finish setup seed service")
	return nil
}

func (app *ApplicationContext) setUpLimiters(ctx context.Context) error {
	app.Logger.Info().Msg("Start setup rate limiters")
	limitType := ratelimit.RateLimitType(app.Cf.RateLimitType)
	newLimiter := func(name string, capacity int) (ratelimit.KeyedLimiter, error) {
		cfg := ratelimit.NewWindowLimiterConfig("ratelimit:"+name, capacity, app.Cf.RateLimitWindow)
		return ratelimit.NewKeyedLimiter(limitType, cfg, app.RedisClient, app.Logger)
	}

	var err error
	if app.Limiters.General, err = newLimiter("general", app.Cf.RateLimitGeneral); err != nil {
		return err
	}
	if app.Limiters.Auth, err = newLimiter("auth", app.Cf.RateLimitAuth); err != nil {
		return err
	}
	if app.Limiters.Api, err = newLimiter("api", app.Cf.RateLimitApi); err != nil {
		return err
	}
	app.Logger.Info().Str("type", string(limitType)).Msg("Finish setup rate limiters")
	return nil
}

// HealthChecks /api/ready 檢查的依賴
func (app *ApplicationContext) HealthChecks() map[string]handler.HealthCheck {
	return map[string]handler.HealthCheck{
		"postgres": app.DbDao.Ping,
		"redis": func(ctx context.Context) error {
			return redis_repo.PingRedis(ctx, app.RedisClient)
		},
	}
}

// NewRouterServer 建立所有handler
func (app *ApplicationContext) NewRouterServer() *router.Server {
	return router.NewServer(
		handler.NewAuthHandler(app.AuthService),
		handler.NewProductHandler(app.ProductService),
		handler.NewReviewHandler(app.ReviewService),
		handler.NewCartHandler(app.CartService),
		handler.NewOrderHandler(app.OrderService),
		handler.NewAdminHandler(app.AdminService),
		handler.NewHealthHandler(app.HealthChecks()),
	)
}

func (app *ApplicationContext) RouterOptions() router.Options {
	return router.Options{
		AuthService: app.AuthService,
		Limiters:    app.Limiters,
		Metrics:     app.Metrics,
		UploadDir:   app.Cf.UploadDir,
		Logger:      app.Logger,
	}
}

// Shutdown 依建立的反序釋放資源, 單一步驟失敗不中斷流程
func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	app.Logger.Info().Msg("Start application shutdown")

	done := make(chan error, 1)
	go func() {
		var errs []error

		for _, limiter := range []ratelimit.KeyedLimiter{app.Limiters.General, app.Limiters.Auth, app.Limiters.Api} {
			if limiter != nil {
				limiter.Stop()
			}
		}

		if app.Publisher != nil {
			app.Logger.Info().Msg("Closing order event publisher...")
			if err := app.Publisher.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close publisher: %w", err))
			}
		}

		if app.RedisClient != nil {
			app.Logger.Info().Msg("Closing redis client...")
			if err := redis_repo.CloseRedisClient(app.Cf.RedisAddr); err != nil {
				errs = append(errs, fmt.Errorf("close redis: %w", err))
			}
		}

		// 關閉 DB
		if app.DbConn != nil {
			app.Logger.Info().Msg("Closing database connection...")
			app.DbConn.Close()
		}

		done <- errors.Join(errs...)
	}()

	var err error
	select {
	case err = <-done:
		if err != nil {
			app.Logger.Error().Err(err).Msg("application shutdown with errors")
		} else {
			app.Logger.Info().Msg("Application shutdown complete")
		}
	case <-ctx.Done():
		err = fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}

	// log writer 最後關閉, 確保前面的shutdown log有送出
	if app.LogWriter != nil {
		if closeErr := app.LogWriter.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close log writer: %w", closeErr))
		}
	}
	return err
}
