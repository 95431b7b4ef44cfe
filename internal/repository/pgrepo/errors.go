package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode      = "23505"
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - pgx.ErrNoRows возвращается как ErrRecordNotFound из domain.
//   - Ошибка, уже несущая сентинел domain (ErrConflict при попытке перезаписать проведенную
//     комиссию и т.п.), пробрасывается как есть: errors.Is по сентинелу обязан работать
//     у вызывающего.
//   - Дубликат ключа (uniqueViolationCode) — как ErrDuplicateKey.
//   - Сбой сериализации и дедлок — как ErrConcurrency: транзакцию можно безопасно повторить.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
//
// Используется для единообразной обработки и возврата ошибок из репозитория.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	if isDomainErr(err) {
		return fmt.Errorf("[repository/%s] %w", msg, err)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch {
		case isUniqueViolationErr(pgErr):
			errType = domain.ErrDuplicateKey
		case pgErr.Code == serializationFailureCode, pgErr.Code == deadlockDetectedCode:
			errType = domain.ErrConcurrency
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}

// isDomainErr ошибка уже классифицирована бизнес-сентинелом domain.
func isDomainErr(err error) bool {
	return errors.Is(err, domain.ErrRecordNotFound) ||
		errors.Is(err, domain.ErrDuplicateKey) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrConcurrency)
}
