package health

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smmpanel/panel/internal/application/provider/testutil"
	handlertest "github.com/smmpanel/panel/internal/interfaces/http/handlers/testutil"
)

type stubPinger struct {
	err error
}

func (s stubPinger) PingContext(ctx context.Context) error {
	return s.err
}

func TestHandler_Check(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := NewHandler(stubPinger{}, testutil.NewMockLogger())
		c, w := handlertest.NewTestContext(http.MethodGet, "/health", nil)
		h.Check(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy","service":"smm-panel","database":"ok"}`, w.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		log := testutil.NewMockLogger()
		h := NewHandler(stubPinger{err: stderrors.New("dial tcp: connection refused")}, log)
		c, w := handlertest.NewTestContext(http.MethodGet, "/health", nil)
		h.Check(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
		assert.True(t, log.HasMessage("ERROR", "health check database ping failed"))
	})
}
