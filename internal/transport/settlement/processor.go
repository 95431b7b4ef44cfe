// Package settlement доводит до конца проводку комиссий по заказам в терминальных статусах.
// Каждая комиссия проводится в отдельной транзакции, поэтому падение процесса посреди проводки
// оставляет заказ недопроведенным. Процессор находит такие заказы и повторяет проводку;
// повторная проводка уже проведенных комиссий безопасна.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-commission/internal/domain"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultSettleTimeout          = 10 * time.Second
	defaultLimitPerIteration uint = 50
	defaultWorkers           uint = 5
	defaultIdlePause              = 5 * time.Second
)

// Processor фоновый обработчик недопроведенных заказов.
type Processor struct {
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	idlePause         time.Duration
}

// New создает новый экземпляр процессора проводки.
func New(svs Servicer, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "settlement",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultWorkers,
		idlePause:         defaultIdlePause,
	}
}

// SetLimitPerIteration устанавливает кол-во заказов, обрабатываемых в одной итерации обработчика.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetWorkers устанавливает кол-во воркеров, проводящих заказы.
func (p *Processor) SetWorkers(workers uint) *Processor {
	p.workers = workers
	return p
}

// Run запускает обработку заказов в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации цикла, запрашивает через сервисный слой список терминальных заказов с
//     незакрытыми комиссиями. Объем списка лимитируется через SetLimitPerIteration.
//  2. Для каждой итерации создаются N воркеров (кол-во настраивается через SetWorkers),
//     каждый проводит свои заказы через сервисный слой.
//  3. Если заказов нет, процессор засыпает перед следующей итерацией.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
	}).Info("Starting")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil {
				if !errors.Is(err, ErrNoOrders) {
					p.l.WithError(err).Error("process error")
				}
				p.pause(ctx)
			}
		}
	}
}

func (p *Processor) pause(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(p.idlePause):
	}
}

// process выполняет одну итерацию: получение списка заказов и их параллельная проводка.
// Возвращает ошибку в случае проблем или ErrNoOrders если нет заказов для обработки.
func (p *Processor) process(ctx context.Context) error {
	orders, ordersErr := p.produce(ctx)
	if ordersErr != nil {
		return fmt.Errorf("process: %w", ordersErr)
	}

	results := p.runWorkers(ctx, orders)

	var failed int
	for _, result := range results {
		if result.Error != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("process: %d of %d orders failed to settle", failed, len(results))
	}
	return nil
}

// workerResult результат проводки одного заказа.
type workerResult struct {
	WorkerID uint
	Order    *domain.Order
	Error    error
}

// runWorkers запускает параллельных воркеров проводки и ожидает конца их работы.
// Реализует паттерн fan-out/fan-in.
func (p *Processor) runWorkers(ctx context.Context, orders []domain.Order) []workerResult {
	var taskCh = make(chan *domain.Order, len(orders))

	for i := range orders {
		taskCh <- &orders[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(orders))

	for i := range p.workers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(orders))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":  result.WorkerID,
			"orderID": result.Order.ID,
			"status":  result.Order.Status,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("settle order")
		} else {
			l.Info("Success")
		}
		results = append(results, *result)
	}
	return results
}

// worker проводит заказы из канала и отправляет результаты.
func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.Order,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.settle(ctx, workerID, task)
		}
	}
}

func (p *Processor) settle(ctx context.Context, workerID uint, task *domain.Order) *workerResult {
	reqCtx, cancel := context.WithTimeout(ctx, defaultSettleTimeout)
	defer cancel()

	err := p.svs.SettleOrder(reqCtx, task)
	return &workerResult{
		WorkerID: workerID,
		Order:    task,
		Error:    err,
	}
}

// produce получает список заказов для проводки.
// Возвращает ErrNoOrders, если заказы отсутствуют.
func (p *Processor) produce(ctx context.Context) ([]domain.Order, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	orders, ordersErr := p.svs.UnsettledOrders(produceCtx, p.limitPerIteration)
	if ordersErr != nil {
		return nil, fmt.Errorf("produce: %w", ordersErr)
	}

	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	return orders, nil
}
