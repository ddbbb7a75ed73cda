package infra

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPServerAppliesConfig(t *testing.T) {
	cfg := &Config{
		Port:             "5050",
		HTTPReadTimeout:  3 * time.Second,
		HTTPWriteTimeout: 4 * time.Second,
		HTTPIdleTimeout:  5 * time.Second,
	}
	srv := NewHTTPServer(cfg, http.NotFoundHandler())

	assert.Equal(t, ":5050", srv.Addr())
	assert.Equal(t, 3*time.Second, srv.server.ReadTimeout)
	assert.Equal(t, 4*time.Second, srv.server.WriteTimeout)
	assert.Equal(t, 5*time.Second, srv.server.IdleTimeout)
}

func TestHTTPServerZeroValueIsNoop(t *testing.T) {
	var srv HTTPServer
	assert.NoError(t, srv.Start())
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Empty(t, srv.Addr())
}

func TestNewOutboundClientTimeout(t *testing.T) {
	client := NewOutboundClient(&Config{OutboundTimeout: 30 * time.Second})
	assert.Equal(t, 30*time.Second, client.Timeout)
}
