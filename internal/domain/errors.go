package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// ErrConflict попытка изменить закредитованную или отмененную комиссию, либо недопустимый
	// переход статуса. Финансовая история неизменяема, перезапись молча недопустима.
	ErrConflict = errors.New("immutable record conflict")
	// ErrConcurrency потерянное обновление, обнаруженное оптимистической проверкой.
	// Ретраится ограниченное число раз внутри транзакционной обертки.
	ErrConcurrency = errors.New("concurrent update detected")
)

// ValidationError некорректные входные данные запроса (неположительная сумма, битая ссылка и т.п.).
// Поднимается вызывающему сразу, без ретраев.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// CycleDetectedError цикл в реферальном графе. Фатальна при создании реферальной связи,
// при обходе цепочки во время расчета комиссий — нефатальна (логируется, прямая комиссия
// селлера все равно проводится).
type CycleDetectedError struct {
	UserID int64
	Chain  []int64
}

func NewCycleDetectedError(userID int64, chain []int64) error {
	return &CycleDetectedError{UserID: userID, Chain: chain}
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("referral cycle detected at user %d, chain %v", e.UserID, e.Chain)
}
