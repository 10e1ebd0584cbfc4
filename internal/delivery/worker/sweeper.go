package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// StaleOrderSweeper periodically cancels pending orders that were never paid
// and returns their units to stock.
type StaleOrderSweeper struct {
	orderUC  usecase.OrderUsecase
	logger   *slog.Logger
	interval time.Duration
	maxAge   time.Duration
	now      func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// SweeperParams holds dependencies for the sweeper
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	OrderUC usecase.OrderUsecase
}

// NewStaleOrderSweeper registers the sweep loop on the fx lifecycle.
func NewStaleOrderSweeper(params SweeperParams) *StaleOrderSweeper {
	s := newStaleOrderSweeper(params.OrderUC, params.Logger, params.Cfg.Worker.SweepInterval, params.Cfg.Worker.StaleOrderAfter)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()

			return nil
		},
		OnStop: func(context.Context) error {
			s.Stop()

			return nil
		},
	})

	return s
}

func newStaleOrderSweeper(orderUC usecase.OrderUsecase, logger *slog.Logger, interval, maxAge time.Duration) *StaleOrderSweeper {
	return &StaleOrderSweeper{
		orderUC:  orderUC,
		logger:   logger,
		interval: interval,
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Start launches the loop. The first sweep runs after one interval.
func (s *StaleOrderSweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Stop ends the loop and waits for an in-flight sweep.
func (s *StaleOrderSweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Sweep runs one pass and reports how many orders were released.
func (s *StaleOrderSweeper) Sweep(ctx context.Context) int {
	cutoff := s.now().Add(-s.maxAge)

	released, err := s.orderUC.ReleaseStaleOrders(ctx, cutoff, false)
	if err != nil {
		s.logger.Error("[Worker] Stale order sweep failed", slog.Any("error", err))

		return 0
	}

	if len(released) > 0 {
		ids := make([]int64, 0, len(released))
		for _, order := range released {
			ids = append(ids, order.ID)
		}
		s.logger.Info("[Worker] Released stale orders",
			slog.Int("count", len(released)),
			slog.Any("order_ids", ids),
			slog.Time("cutoff", cutoff),
		)
	}

	return len(released)
}
