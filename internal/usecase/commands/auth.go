package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"boat-scheduler/internal/domain/operator"
	reqdto "boat-scheduler/internal/handler/dto/request"
	"boat-scheduler/internal/pkg/errs"
	"boat-scheduler/internal/pkg/jwt"
	"boat-scheduler/internal/pkg/password"
	"boat-scheduler/internal/usecase/queries"
	"boat-scheduler/internal/usecase/shared"
)

var (
	ErrOperatorNotFound     = errs.New("operator not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	Operator  *queries.OperatorView
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout drops the operator's session, discarding unsynced edits and any armed action.
	Logout(ctx context.Context, operatorID uuid.UUID) error
}

type authCommandsImpl struct {
	readStore  queries.OperatorReadStore
	jwtService *jwt.Service
	sessions   shared.SessionRepository
}

func NewAuthCommands(readStore queries.OperatorReadStore, jwtService *jwt.Service, sessions shared.SessionRepository) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateOperator(ctx, credentials)
	if err != nil {
		return nil, err
	}

	op, err := toOperator(view)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issue(op)
	if err != nil {
		return nil, err
	}

	slog.Info("operator logged in", "operator_id", op.ID(), "username", op.Username().Value())
	return &LoginResult{Operator: view, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// the account may have been removed from the configuration since the token was issued
	view, err := a.readStore.FindByID(ctx, claims.OperatorID)
	if err != nil || view == nil {
		return nil, ErrOperatorNotFound
	}

	op, err := toOperator(view)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issue(op)
}

func (a *authCommandsImpl) Logout(_ context.Context, operatorID uuid.UUID) error {
	if a.sessions.Drop(operatorID) {
		slog.Info("operator session dropped", "operator_id", operatorID)
	}
	return nil
}

func (a *authCommandsImpl) issue(op *operator.Operator) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(op)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(op)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateOperator(ctx context.Context, credentials operator.Credentials) (*queries.OperatorView, error) {
	view, hashedPassword, err := a.readStore.FindByUsername(ctx, credentials.Username().Value())
	if err != nil || view == nil {
		// same error as a password mismatch, so usernames cannot be enumerated
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		if !errs.Is(err, password.ErrComparisonFailed) {
			slog.Warn("operator password check failed", "username", view.Username, "error", err.Error())
		}
		return nil, ErrInvalidCredentials
	}

	return view, nil
}

func toOperator(view *queries.OperatorView) (*operator.Operator, error) {
	username, err := operator.NewUsername(view.Username)
	if err != nil {
		return nil, err
	}
	role, err := operator.NewRole(view.Role)
	if err != nil {
		return nil, err
	}
	return operator.NewOperator(username, "", role), nil
}
