package main

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/artshop/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Name:        "order-service",
			Host:        "127.0.0.1",
			Port:        0,
			MetricsAddr: "127.0.0.1:0",
		},
		Database: config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "orders.db")},
	}
}

func stopped() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	ch <- os.Interrupt
	return ch
}

func TestRun_ShutsDownOnSignal(t *testing.T) {
	require.NoError(t, run(testConfig(t), zap.NewNop(), stopped()))
}

func TestRun_ReturnsStartupErrors(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = "oracle"

	err := run(cfg, zap.NewNop(), make(chan os.Signal))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported database driver "oracle"`)
}

func TestRun_ServerFailureStopsStack(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { busy.Close() })

	cfg := testConfig(t)
	cfg.Server.Port = busy.Addr().(*net.TCPAddr).Port

	err = run(cfg, zap.NewNop(), make(chan os.Signal))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
