package repository

import (
	"context"
	"log/slog"
	"strings"

	"boat-scheduler/internal/domain/operator"
	"boat-scheduler/internal/infra"
	"boat-scheduler/internal/pkg/config"
	"boat-scheduler/internal/pkg/errs"
	"boat-scheduler/internal/pkg/password"
	"boat-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type account struct {
	view *queries.OperatorView
	hash string
}

// OperatorRepository serves the staff accounts listed in OPERATOR_ACCOUNTS.
// The list is parsed once; changes need a restart.
type OperatorRepository struct {
	logger     *slog.Logger
	byID       map[uuid.UUID]account
	byUsername map[string]account
}

func NewOperatorRepository(cfg config.OperatorConfig, logger *slog.Logger) (*OperatorRepository, error) {
	r := &OperatorRepository{
		logger:     logger,
		byID:       make(map[uuid.UUID]account, len(cfg.Accounts)),
		byUsername: make(map[string]account, len(cfg.Accounts)),
	}
	for i, entry := range cfg.Accounts {
		op, hash, err := parseAccount(entry)
		if err != nil {
			return nil, infra.WrapRepoErr(logger, infra.KindInvalidConfig, "invalid operator account", errs.Wrapf(err, "entry %d", i))
		}
		if _, dup := r.byUsername[op.Username().Value()]; dup {
			return nil, infra.WrapRepoErr(logger, infra.KindInvalidConfig, "duplicate operator account", errs.Newf("username %q", op.Username().Value()))
		}

		acc := account{
			view: &queries.OperatorView{ID: op.ID(), Username: op.Username().Value(), Role: op.Role().String()},
			hash: hash,
		}
		r.byID[op.ID()] = acc
		r.byUsername[op.Username().Value()] = acc
	}
	return r, nil
}

// parseAccount reads "username:role:bcrypt-hash". bcrypt hashes never contain ':'.
func parseAccount(entry string) (*operator.Operator, string, error) {
	parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
	if len(parts) != 3 {
		return nil, "", errs.New("expected username:role:hash")
	}
	username, err := operator.NewUsername(parts[0])
	if err != nil {
		return nil, "", err
	}
	role, err := operator.NewRole(parts[1])
	if err != nil {
		return nil, "", err
	}
	if err := password.ValidateHash(parts[2]); err != nil {
		return nil, "", err
	}
	return operator.NewOperator(username, parts[2], role), parts[2], nil
}

func (r *OperatorRepository) FindByID(_ context.Context, id uuid.UUID) (*queries.OperatorView, error) {
	acc, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "operator not found", nil)
	}
	view := *acc.view
	return &view, nil
}

func (r *OperatorRepository) FindByUsername(_ context.Context, username string) (*queries.OperatorView, string, error) {
	acc, ok := r.byUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, "", infra.WrapRepoErr(r.logger, infra.KindNotFound, "operator not found", nil)
	}
	view := *acc.view
	return &view, acc.hash, nil
}
