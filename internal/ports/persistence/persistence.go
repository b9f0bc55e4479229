package persistence

import "context"

// Persistence интерфейс доступа к базе данных.
// Справочник городов в рантайме только читается (пишут миграции),
// поэтому транзакционного API здесь нет.
type Persistence interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) error
	Close() error
}
