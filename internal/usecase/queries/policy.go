package queries

import (
	"context"
	"log/slog"

	"timewise/internal/domain/availability"
	"timewise/internal/usecase/shared"
)

type PolicyQueries interface {
	// GetCurrentPolicy bootstraps the stored settings and returns the result.
	GetCurrentPolicy(ctx context.Context) (availability.Policy, error)
}

type policyQueriesImpl struct {
	bootstrapper shared.PolicyBootstrapper
	logger       *slog.Logger
}

func NewPolicyQueries(bootstrapper shared.PolicyBootstrapper, logger *slog.Logger) PolicyQueries {
	return &policyQueriesImpl{
		bootstrapper: bootstrapper,
		logger:       logger,
	}
}

func (q *policyQueriesImpl) GetCurrentPolicy(ctx context.Context) (availability.Policy, error) {
	res, err := q.bootstrapper.Bootstrap(ctx)
	if err != nil {
		return availability.Policy{}, err
	}
	if res.Outcome != shared.OutcomeFound {
		q.logger.Info("settings bootstrapped", "outcome", string(res.Outcome))
	}
	return res.Policy, nil
}
