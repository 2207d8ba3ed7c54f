package payment

import (
	"context"
	"fmt"
	"time"

	"rentwheels/internal/pkg/config"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase"

	"github.com/google/uuid"
)

var (
	ErrMissingAPIKey    = errs.New("payment api key is not configured")
	ErrNonPositiveCents = errs.New("payment amount must be positive")
	ErrUnknownIntent    = errs.New("unknown payment intent")
)

// SimulatedGateway stands in for a real processor. It honours context
// deadlines during its artificial latency, so a slow processor shows up to
// callers exactly like a real one would.
type SimulatedGateway struct {
	apiKey       string
	intentDelay  time.Duration
	captureDelay time.Duration
}

func NewSimulatedGateway(cfg config.PaymentConfig) (*SimulatedGateway, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &SimulatedGateway{
		apiKey:       cfg.APIKey,
		intentDelay:  cfg.IntentDelay,
		captureDelay: cfg.CaptureDelay,
	}, nil
}

var _ usecase.PaymentClient = (*SimulatedGateway)(nil)

func (g *SimulatedGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", ErrNonPositiveCents
	}
	if err := sleepCtx(ctx, g.intentDelay); err != nil {
		return "", err
	}
	return fmt.Sprintf("pi_sim_%s", uuid.NewString()), nil
}

func (g *SimulatedGateway) Capture(ctx context.Context, intentID string) (usecase.CaptureResult, error) {
	if intentID == "" {
		return usecase.CaptureResult{}, ErrUnknownIntent
	}
	if err := sleepCtx(ctx, g.captureDelay); err != nil {
		return usecase.CaptureResult{}, err
	}
	return usecase.CaptureResult{
		Status:        usecase.CaptureSucceeded,
		TransactionID: fmt.Sprintf("txn_sim_%s", uuid.NewString()),
	}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
