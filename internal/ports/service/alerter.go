package service

import "context"

// IAlerterService интерфейс для отправки диагностических алертов
type IAlerterService interface {
	SendAlert(ctx context.Context, message string) error
}
