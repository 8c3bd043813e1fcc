package grpc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health/grpc_health_v1"

	storegrpc "github.com/shashiranjanraj/storefront/pkg/grpc"
)

func TestHealthServing(t *testing.T) {
	h := storegrpc.NewHealthServer(func(context.Context) error { return nil })
	resp, err := h.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)
}

func TestHealthNotServingWhenCheckFails(t *testing.T) {
	h := storegrpc.NewHealthServer(
		func(context.Context) error { return nil },
		func(context.Context) error { return errors.New("db down") },
	)
	resp, err := h.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, resp.Status)
}
