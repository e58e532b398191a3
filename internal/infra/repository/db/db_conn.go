package db

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ConnConfig struct {
	DbName   string
	Host     string
	Port     string
	User     string
	Password string
	SslMode  string
}

// DSN url格式, golang-migrate 與 pgxpool 共用
func (c ConnConfig) DSN() string {
	sslMode := c.SslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DbName,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

// GetDbConn 建立pgx連線池, gorm 透過 stdlib 包裝共用同一個pool
// 呼叫端負責 pool.Close()
func GetDbConn(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, *gorm.DB, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, nil, err
	}
	if maxConns > 0 {
		poolCfg.MaxConns = maxConns
	}
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, err
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return pool, gormDB, nil
}
