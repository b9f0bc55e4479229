package storage

import "context"

// IArtifactStore хранилище сгенерированных SVG-карт.
// Имя артефакта задаёт вызывающая сторона: оно строится из request ID,
// а не из имени человека, чтобы параллельные запросы не перетирали файлы.
type IArtifactStore interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
}
