package shared

import (
	"context"
	"log/slog"

	"timewise/internal/domain/availability"
	"timewise/internal/infra"
)

// PolicyBootstrapper is the only reader and writer of the settings store.
type PolicyBootstrapper interface {
	// Bootstrap always yields a complete policy unless the store fails with
	// something other than a missing container.
	Bootstrap(ctx context.Context) (BootstrapResult, error)
	// Replace overwrites all three stored fields with p.
	Replace(ctx context.Context, p availability.Policy) error
}

type policyBootstrapperImpl struct {
	store  SettingsStore
	logger *slog.Logger
}

func NewPolicyBootstrapper(store SettingsStore, logger *slog.Logger) PolicyBootstrapper {
	return &policyBootstrapperImpl{
		store:  store,
		logger: logger,
	}
}

func (b *policyBootstrapperImpl) Bootstrap(ctx context.Context) (BootstrapResult, error) {
	fields, err := b.store.ReadFields(ctx)
	if err == nil {
		return b.mergeAndHeal(ctx, fields)
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return BootstrapResult{}, MarkStorageError(err, "read settings")
	}

	created, err := b.ensureContainer(ctx)
	if err != nil {
		return BootstrapResult{}, err
	}
	if created {
		def := availability.DefaultPolicy()
		if err := b.store.WriteFields(ctx, availability.EncodeFields(def)); err != nil {
			return BootstrapResult{}, MarkStorageError(err, "write default settings")
		}
		b.logger.Info("settings container created with default policy")
		return BootstrapResult{Policy: def, Outcome: OutcomeCreated}, nil
	}

	// another caller created the container first; continue from its state
	fields, err = b.store.ReadFields(ctx)
	if err != nil {
		return BootstrapResult{}, MarkStorageError(err, "read settings after concurrent create")
	}
	return b.mergeAndHeal(ctx, fields)
}

func (b *policyBootstrapperImpl) Replace(ctx context.Context, p availability.Policy) error {
	fields := availability.EncodeFields(p)

	err := b.store.WriteFields(ctx, fields)
	if infra.IsKind(err, infra.KindNotFound) {
		if _, err = b.ensureContainer(ctx); err != nil {
			return err
		}
		err = b.store.WriteFields(ctx, fields)
	}
	if err != nil {
		return MarkStorageError(err, "replace settings")
	}
	return nil
}

// ensureContainer reports false when the container already existed.
func (b *policyBootstrapperImpl) ensureContainer(ctx context.Context) (bool, error) {
	err := b.store.CreateContainer(ctx)
	switch {
	case err == nil:
		return true, nil
	case infra.IsKind(err, infra.KindAlreadyExists):
		b.logger.Debug("settings container already exists, continuing")
		return false, nil
	default:
		return false, MarkStorageError(err, "create settings container")
	}
}

func (b *policyBootstrapperImpl) mergeAndHeal(ctx context.Context, fields availability.Fields) (BootstrapResult, error) {
	partial, rejected := fields.Decode()
	if len(rejected) > 0 {
		b.logger.Warn("ignoring unusable stored setting values", "values", rejected)
	}

	policy := availability.MergeWithDefaults(partial)

	missing := fields.MissingKeys()
	if len(missing) > 0 {
		heal := availability.EncodeFields(policy).Subset(missing)
		if err := b.store.WriteFields(ctx, heal); err != nil {
			return BootstrapResult{}, MarkStorageError(err, "write missing settings")
		}
		b.logger.Info("missing settings written with defaults", "keys", missing)
	}

	outcome := OutcomeFound
	if len(missing) > 0 || len(partial.Weekdays) == 0 || len(partial.TimeSlots) == 0 {
		outcome = OutcomeMerged
	}
	return BootstrapResult{Policy: policy, Outcome: outcome}, nil
}
