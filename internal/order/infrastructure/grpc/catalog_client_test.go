package grpc

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalog "github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
	pb "github.com/dmehra2102/ecommerce-store/internal/catalog/infrastructure/grpc/catalogrpc"
)

type countingChecker struct {
	calls int
	err   error
}

func (c *countingChecker) CheckVariant(_ context.Context, in *pb.CheckVariantRequest, _ ...grpc.CallOption) (*pb.CheckVariantResponse, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &pb.CheckVariantResponse{Available: in.Size == "L"}, nil
}

func TestCheckVariantIsCached(t *testing.T) {
	cc := &countingChecker{}
	c := newCatalogClient(slog.New(slog.NewTextHandler(io.Discard, nil)), cc, time.Minute)
	ctx := context.Background()

	for range 3 {
		ok, err := c.CheckVariant(ctx, "p-1", catalog.SizeL)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 1, cc.calls)
	assert.NoError(t, c.Close())
}

func TestCheckVariantUnavailableIsNotCached(t *testing.T) {
	cc := &countingChecker{}
	c := newCatalogClient(slog.New(slog.NewTextHandler(io.Discard, nil)), cc, time.Minute)
	ctx := context.Background()

	for range 2 {
		ok, err := c.CheckVariant(ctx, "p-1", catalog.SizeS)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Equal(t, 2, cc.calls)
	assert.NoError(t, c.Close())
}

func TestCheckVariantErrorsAreNotCached(t *testing.T) {
	cc := &countingChecker{err: status.Error(codes.Unavailable, "down")}
	c := newCatalogClient(slog.New(slog.NewTextHandler(io.Discard, nil)), cc, time.Minute)

	_, err := c.CheckVariant(context.Background(), "p-1", catalog.SizeL)
	require.Error(t, err)
	_, err = c.CheckVariant(context.Background(), "p-1", catalog.SizeL)
	require.Error(t, err)
	assert.Equal(t, 2, cc.calls)
}
