package server_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrforge/core/server"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestStartReturnsContextError(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := srv.Start(ctx, okHandler())
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, srv.Stop())
}

func TestStartTwiceFails(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	go func() {
		close(started)
		_ = srv.Start(ctx, okHandler())
	}()

	<-started
	time.Sleep(50 * time.Millisecond)

	err := srv.Start(ctx, okHandler())
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)

	cancel()
	require.NoError(t, srv.Stop())
}

func TestStopWithoutStart(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	assert.NoError(t, srv.Stop())
}

func TestRunWithErrgroup(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(srv.Run(ctx, okHandler()))

	time.Sleep(50 * time.Millisecond)
	cancel()

	// Context cancellation is a clean shutdown, not an error.
	assert.NoError(t, eg.Wait())
}

func TestRunReturnsListenError(t *testing.T) {
	t.Parallel()

	srv := server.New("256.256.256.256:99999")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, okHandler()))

	assert.Error(t, eg.Wait())
}
