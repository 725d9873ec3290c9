package commands

import (
	"context"
	"log/slog"

	"timewise/internal/domain/availability"
	reqdto "timewise/internal/handler/dto/request"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/shared"
)

type PolicyCommands interface {
	// ReplacePolicy overwrites all stored settings fields with the request.
	ReplacePolicy(ctx context.Context, req reqdto.UpdateSettingsRequest) (availability.Policy, error)
}

type policyCommandsImpl struct {
	bootstrapper shared.PolicyBootstrapper
	logger       *slog.Logger
}

func NewPolicyCommands(bootstrapper shared.PolicyBootstrapper, logger *slog.Logger) PolicyCommands {
	return &policyCommandsImpl{
		bootstrapper: bootstrapper,
		logger:       logger,
	}
}

func (c *policyCommandsImpl) ReplacePolicy(ctx context.Context, req reqdto.UpdateSettingsRequest) (availability.Policy, error) {
	policy, err := req.ToDomain()
	if err != nil {
		return availability.Policy{}, errs.Mark(err, ErrInvalidPolicy)
	}

	// an empty stored field reads back as the default, so it cannot be saved
	if len(policy.Weekdays()) == 0 {
		return availability.Policy{}, errs.Mark(ErrEmptyWeekdays, ErrInvalidPolicy)
	}
	if len(policy.TimeSlots()) == 0 {
		return availability.Policy{}, errs.Mark(ErrEmptyTimeSlots, ErrInvalidPolicy)
	}

	if err := c.bootstrapper.Replace(ctx, policy); err != nil {
		return availability.Policy{}, err
	}

	c.logger.Info("settings replaced",
		"weekdays", len(policy.Weekdays()),
		"disabled_dates", len(policy.DisabledDates()),
		"time_slots", len(policy.TimeSlots()))
	return policy, nil
}
