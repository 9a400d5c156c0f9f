package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hrops/recruiting-server/internal/config"
	mocksvc "github.com/hrops/recruiting-server/internal/service/mocks"
	syncmocks "github.com/hrops/recruiting-server/internal/sync/mocks"
	"github.com/hrops/recruiting-server/internal/sync/coordinator"
)

// mockCoordinator implements coordinator.Coordinator. Start blocks until
// its context is cancelled or Stop is called, like the real loop.
type mockCoordinator struct {
	mu          sync.Mutex
	startCalled bool
	stopCalled  bool
	startErr    error
	stopCh      chan struct{}
	stopOnce    sync.Once
}

func newMockCoordinator() *mockCoordinator {
	return &mockCoordinator{stopCh: make(chan struct{})}
}

func (m *mockCoordinator) Start(ctx context.Context) error {
	m.mu.Lock()
	m.startCalled = true
	err := m.startErr
	m.mu.Unlock()

	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
	case <-m.stopCh:
	}
	return nil
}

func (m *mockCoordinator) Stop() error {
	m.mu.Lock()
	m.stopCalled = true
	m.mu.Unlock()
	m.stopOnce.Do(func() { close(m.stopCh) })
	return nil
}

func (m *mockCoordinator) wasStartCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startCalled
}

func (m *mockCoordinator) wasStopCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalled
}

// createTestApp creates a RecruitingApp with mocked components for testing.
// This directly constructs the RecruitingApp without using NewRecruitingApp
// to avoid a database.
func createTestApp(t *testing.T, ctrl *gomock.Controller, addr string) *RecruitingApp {
	t.Helper()

	mockSvc := mocksvc.NewMockService(ctrl)
	mockSvc.EXPECT().CheckReadiness(gomock.Any()).Return(nil).AnyTimes()

	cfg := createTestAppConfig()

	ctx := context.Background()
	appCtx, cancel := context.WithCancel(ctx)

	appCfg := &recruitingAppConfig{
		config:         cfg,
		address:        addr,
		requestTimeout: 10 * time.Second,
		readTimeout:    10 * time.Second,
		writeTimeout:   15 * time.Second,
		idleTimeout:    60 * time.Second,
		authMiddleware: func(next http.Handler) http.Handler { return next },
	}

	components := &AppComponents{
		SyncCoordinator: newMockCoordinator(),
		SyncManager:     syncmocks.NewMockManager(ctrl),
		Service:         mockSvc,
	}

	server, err := buildHTTPServer(appCfg, components)
	require.NoError(t, err)

	return &RecruitingApp{
		config:     cfg,
		components: components,
		httpServer: server,
		ctx:        appCtx,
		cancelFunc: cancel,
	}
}

// createTestAppConfig creates a minimal valid config for testing
func createTestAppConfig() *config.Config {
	return &config.Config{
		Database: &config.DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "recruiting",
			Database: "recruiting",
		},
		Ashby: &config.AshbyConfig{
			APIKey: "test-key",
		},
		Sync: &config.SyncConfig{
			Interval: "30m",
		},
	}
}

func freeAddress(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	return addr
}

func TestRecruitingApp_StartAndStop(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	addr := freeAddress(t)
	app := createTestApp(t, ctrl, addr)

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Start()
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	mockCoord := app.components.SyncCoordinator.(*mockCoordinator)
	assert.True(t, mockCoord.wasStartCalled(), "sync coordinator should be started")

	require.NoError(t, app.Stop(5*time.Second))
	assert.True(t, mockCoord.wasStopCalled(), "sync coordinator Stop should be called")

	select {
	case startErr := <-errChan:
		require.NoError(t, startErr)
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after Stop()")
	}
}

func TestRecruitingApp_StopWithoutStart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	app := createTestApp(t, ctrl, ":0")

	require.NoError(t, app.Stop(time.Second))
	assert.True(t, app.components.SyncCoordinator.(*mockCoordinator).wasStopCalled())
}

func TestRecruitingApp_StopWithNilCancelFunc(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	app := createTestApp(t, ctrl, ":0")

	// Set cancelFunc to nil to test nil safety
	app.cancelFunc = nil

	require.NoError(t, app.Stop(5*time.Second))
}

func TestRecruitingApp_StartError_PortInUse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	app := createTestApp(t, ctrl, listener.Addr().String())

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Start()
	}()

	// The listen failure cancels the coordinator as well
	select {
	case startErr := <-errChan:
		require.Error(t, startErr)
		assert.Contains(t, startErr.Error(), "HTTP server failed")
	case <-time.After(5 * time.Second):
		_ = app.Stop(time.Second)
		t.Fatal("Expected Start() to fail due to port in use")
	}
}

func TestRecruitingApp_StartError_Coordinator(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	app := createTestApp(t, ctrl, freeAddress(t))
	app.components.SyncCoordinator.(*mockCoordinator).startErr = errors.New("boom")

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Start()
	}()

	// The server keeps serving until stopped; the coordinator error is reported
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, app.Stop(time.Second))

	select {
	case startErr := <-errChan:
		require.Error(t, startErr)
		assert.Contains(t, startErr.Error(), "sync coordinator failed")
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after Stop()")
	}
}

func TestRecruitingApp_Getters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	app := createTestApp(t, ctrl, ":8080")

	require.NotNil(t, app.GetConfig())
	assert.Equal(t, "30m", app.GetConfig().Sync.Interval)

	server := app.GetHTTPServer()
	require.NotNil(t, server)
	assert.Equal(t, ":8080", server.Addr)
	assert.NotNil(t, app.Components().SyncManager)
}

// Verify that Coordinator interface is properly defined
var _ coordinator.Coordinator = (*mockCoordinator)(nil)
