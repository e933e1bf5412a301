package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"authgate/config"
	"authgate/internal/domain/lifecycle"
	"authgate/internal/usecase"

	"go.uber.org/fx"
)

// OTPSweeper periodically deletes expired one-time codes.
type OTPSweeper struct {
	otp      usecase.OTPUsecase
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// OTPSweeperParams holds dependencies for OTPSweeper, injected by Fx.
type OTPSweeperParams struct {
	fx.In
	fx.Lifecycle

	OTP    usecase.OTPUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewOTPSweeper creates the sweeper and ties it to the application lifecycle.
func NewOTPSweeper(params OTPSweeperParams) *OTPSweeper {
	interval := config.DefaultOTPSweepInterval
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPSweepInterval != 0 {
		interval = params.Config.Auth.OTPSweepInterval
	}

	sweeper := newOTPSweeper(params.OTP, interval, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sweeper.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})

	return sweeper
}

func newOTPSweeper(otp usecase.OTPUsecase, interval time.Duration, logger *slog.Logger) *OTPSweeper {
	return &OTPSweeper{
		otp:      otp,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the sweep loop. A non-positive interval leaves the sweeper idle.
func (s *OTPSweeper) Start() {
	if s.interval <= 0 {
		s.logger.Info("OTP sweeper disabled")

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *OTPSweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *OTPSweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *OTPSweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	removed, err := s.otp.CleanupExpired(sweepCtx)
	if err != nil {
		s.logger.Warn("Failed to sweep expired one-time codes", slog.Any("error", err))

		return
	}

	if removed > 0 {
		s.logger.Debug("Swept expired one-time codes", slog.Int64("count", removed))
	}
}
