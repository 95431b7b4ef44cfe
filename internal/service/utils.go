package service

import (
	"errors"

	"github.com/fsdevblog/groph-commission/internal/domain"
)

// maxTxAttempts лимит повторов балансовых транзакций перед тем как ошибка всплывет наружу.
const maxTxAttempts uint = 3

// isRetryableTxErr сбой сериализации/дедлок и гонка на уникальном ключе комиссии безопасно
// ретраятся: повторный заход увидит уже существующую строку и обновит её.
func isRetryableTxErr(err error) bool {
	return errors.Is(err, domain.ErrConcurrency) || errors.Is(err, domain.ErrDuplicateKey)
}
