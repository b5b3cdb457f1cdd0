//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"boat-scheduler/cmd/bootstrap"
	"boat-scheduler/cmd/bootstrap/components"
	"boat-scheduler/internal/pkg/config"
	"boat-scheduler/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// Accounts from config.NewTestConfig; all share this password.
const (
	OperatorUsername = "skipper"
	ViewerUsername   = "deckhand"
	AdminUsername    = "harbormaster"
	Password         = "password123"
)

// buildE2EApp wires the real modules against the demo schedule. Returns router, config,
// and fx.App for proper lifecycle management.
func buildE2EApp(t *testing.T, cfg config.Config) (*gin.Engine, *fx.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			bootstrap.NewScheduleLocation,
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.InfraModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		// start without fx's own logs
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not built")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return router, app
}

// SharedSuite gives every test method a fresh app, so operator sessions never leak between tests.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupTest() {
	s.Config = config.NewTestConfig()
	s.Router, _ = buildE2EApp(s.T(), s.Config)
}

// Login returns the access token as a cookie ready to send back.
func (s *SharedSuite) Login(username string) []*http.Cookie {
	token := authtest.LoginOperator(s.T(), s.Router, username, Password)
	return []*http.Cookie{{Name: "access_token", Value: token}}
}
