package db

import (
	"context"

	"cafe-console/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

var Pool *pgxpool.Pool

func Init(cfg config.DBConfig) error {
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		return err
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return err
	}
	Pool = pool
	return nil
}

func Close() {
	if Pool != nil {
		Pool.Close()
		Pool = nil
	}
}
