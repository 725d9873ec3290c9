//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"

	"timewise/internal/domain/availability"
	"timewise/internal/infra"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/queries"
	"timewise/internal/usecase/shared"
	sharedmock "timewise/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetCurrentPolicy(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setupMock func(*sharedmock.MockPolicyBootstrapper)
		expectErr error
	}{
		{
			name: "success: returns the bootstrapped policy",
			setupMock: func(m *sharedmock.MockPolicyBootstrapper) {
				m.EXPECT().Bootstrap(ctx).Return(shared.BootstrapResult{
					Policy:  availability.DefaultPolicy(),
					Outcome: shared.OutcomeCreated,
				}, nil)
			},
		},
		{
			name: "error: storage failure is passed through",
			setupMock: func(m *sharedmock.MockPolicyBootstrapper) {
				cause := infra.WrapRepoErr(slog.New(slog.DiscardHandler), infra.KindUnavailable, "timeout", nil)
				m.EXPECT().Bootstrap(ctx).Return(shared.BootstrapResult{}, shared.MarkStorageError(cause, "read settings"))
			},
			expectErr: queries.ErrStorageUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bootstrapper := sharedmock.NewMockPolicyBootstrapper(ctrl)
			tc.setupMock(bootstrapper)

			q := queries.NewPolicyQueries(bootstrapper, slog.New(slog.DiscardHandler))
			policy, err := q.GetCurrentPolicy(ctx)

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr))
				return
			}
			require.NoError(t, err)
			assert.True(t, policy.Equal(availability.DefaultPolicy()))
		})
	}
}
