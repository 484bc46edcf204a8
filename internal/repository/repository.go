package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repositoryImpl struct {
	db    *sqlx.DB
	event EventRepository
}

// NewRepository bundles the repositories sharing db.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:    db,
		event: NewEventRepository(db),
	}
}

func (r *repositoryImpl) Event() EventRepository {
	return r.event
}

// Ping checks database connectivity, giving up after two seconds.
func (r *repositoryImpl) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
