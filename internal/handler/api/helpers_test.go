//go:build unit

package api_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	resdto "boat-scheduler/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// mutationBody decodes resdto.MutationResponse with a typed result.
type mutationBody[T any] struct {
	Result   T                         `json:"result"`
	Schedule *resdto.ScheduleResponse `json:"schedule"`
}

func decodeMutation[T any](t *testing.T, rec *httptest.ResponseRecorder) mutationBody[T] {
	t.Helper()
	var body mutationBody[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

// asOperator stands in for RequireAuth.
func asOperator(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("operator_id", id)
		c.Next()
	}
}
