package db

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

// ConnConfig converts go-pg options into a pgx config usable by database/sql.
func ConnConfig(opt *pg.Options) (pgx.ConnConfig, error) {
	cfg := pgx.ConnConfig{
		Host:     opt.Addr,
		Database: opt.Database,
		User:     opt.User,
		Password: opt.Password,
	}

	if opt.Network == "unix" {
		return cfg, nil
	}

	host, port, err := net.SplitHostPort(opt.Addr)
	if err != nil {
		return pgx.ConnConfig{}, fmt.Errorf("split database addr %q: %w", opt.Addr, err)
	}

	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return pgx.ConnConfig{}, fmt.Errorf("parse database port %q: %w", port, err)
	}

	cfg.Host = host
	cfg.Port = uint16(p)

	return cfg, nil
}

// Migrate applies every pending goose migration found in migrations.
func Migrate(ctx context.Context, config pgx.ConnConfig, migrations fs.FS) error {
	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
