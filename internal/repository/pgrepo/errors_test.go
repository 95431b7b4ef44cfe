package pgrepo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-commission/internal/domain"
)

type ConvertErrTestSuite struct {
	suite.Suite
}

func TestConvertErrSuite(t *testing.T) {
	suite.Run(t, new(ConvertErrTestSuite))
}

func (s *ConvertErrTestSuite) TestNoRows() {
	err := convertErr(pgx.ErrNoRows, "finding user with id %d", 1)
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

// TestDomainSentinelPassthrough сентинелы domain не должны затираться до ErrUnknown:
// сервисный слой различает их через errors.Is.
func (s *ConvertErrTestSuite) TestDomainSentinelPassthrough() {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "bare conflict",
			err:      domain.ErrConflict,
			sentinel: domain.ErrConflict,
		}, {
			name:     "wrapped conflict",
			err:      fmt.Errorf("commission %d is %s: %w", int64(1), domain.CommissionStatusCredited, domain.ErrConflict),
			sentinel: domain.ErrConflict,
		}, {
			name:     "bare record not found",
			err:      domain.ErrRecordNotFound,
			sentinel: domain.ErrRecordNotFound,
		}, {
			name:     "bare concurrency",
			err:      domain.ErrConcurrency,
			sentinel: domain.ErrConcurrency,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			err := convertErr(t.err, "upserting commission for order %d", int64(10))
			s.ErrorIs(err, t.sentinel)
			s.NotErrorIs(err, domain.ErrUnknown)
		})
	}
}

func (s *ConvertErrTestSuite) TestPgErrorCodes() {
	cases := []struct {
		name     string
		code     string
		sentinel error
	}{
		{
			name:     "unique violation",
			code:     uniqueViolationCode,
			sentinel: domain.ErrDuplicateKey,
		}, {
			name:     "serialization failure",
			code:     serializationFailureCode,
			sentinel: domain.ErrConcurrency,
		}, {
			name:     "deadlock",
			code:     deadlockDetectedCode,
			sentinel: domain.ErrConcurrency,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			err := convertErr(&pgconn.PgError{Code: t.code}, "creating user `%s`", "seller")
			s.ErrorIs(err, t.sentinel)
		})
	}
}

func (s *ConvertErrTestSuite) TestUnknown() {
	err := convertErr(errors.New("connection reset"), "listing commissions")
	s.ErrorIs(err, domain.ErrUnknown)
}

func (s *ConvertErrTestSuite) TestNil() {
	s.NoError(convertErr(nil, "noop"))
}
