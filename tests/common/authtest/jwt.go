//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"boat-scheduler/internal/domain/operator"
	"boat-scheduler/internal/pkg/clock"
	"boat-scheduler/internal/pkg/config"
	"boat-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs an access token for username. The operator id is the one the
// account repository derives from the same username.
func (h *JWTHelper) GenerateToken(t *testing.T, username string, role operator.Role) (string, uuid.UUID) {
	t.Helper()
	op := newOperator(t, username, role)
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessDuration, h.cfg.RefreshDuration, nil)
	token, err := service.GenerateAccessToken(op)
	require.NoError(t, err)
	return token, op.ID()
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, username string, role operator.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessDuration, h.cfg.RefreshDuration, nil)
	token, err := service.GenerateRefreshToken(newOperator(t, username, role))
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs with a clock set far enough back that the token is already stale.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, username string, role operator.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.AccessDuration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessDuration, h.cfg.RefreshDuration, past)
	token, err := service.GenerateAccessToken(newOperator(t, username, role))
	require.NoError(t, err)
	return token
}

func newOperator(t *testing.T, username string, role operator.Role) *operator.Operator {
	t.Helper()
	u, err := operator.NewUsername(username)
	require.NoError(t, err)
	return operator.NewOperator(u, "", role)
}
