package grpc

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	catalog "github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
	pb "github.com/dmehra2102/ecommerce-store/internal/catalog/infrastructure/grpc/catalogrpc"
)

type variantChecker interface {
	CheckVariant(ctx context.Context, in *pb.CheckVariantRequest, opts ...grpc.CallOption) (*pb.CheckVariantResponse, error)
}

// CatalogClient asks the catalog service whether a product is sold in a
// size. Products never change once created, so positive answers are cached
// for ttl; negative ones are not, since the product may be created later.
type CatalogClient struct {
	log   *slog.Logger
	cc    variantChecker
	conn  *grpc.ClientConn
	cache *gocache.Cache
}

func NewCatalogClient(log *slog.Logger, addr string, ttl time.Duration) (*CatalogClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	c := newCatalogClient(log, pb.NewCatalogServiceClient(conn), ttl)
	c.conn = conn
	return c, nil
}

func newCatalogClient(log *slog.Logger, cc variantChecker, ttl time.Duration) *CatalogClient {
	return &CatalogClient{
		log:   log,
		cc:    cc,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *CatalogClient) CheckVariant(ctx context.Context, productID string, size catalog.Size) (bool, error) {
	key := productID + "/" + size.String()
	if v, ok := c.cache.Get(key); ok {
		return v.(bool), nil
	}

	resp, err := c.cc.CheckVariant(ctx, &pb.CheckVariantRequest{ProductID: productID, Size: size.String()})
	if err != nil {
		c.log.Error("catalog check variant failed", "product_id", productID, "size", size, "err", err)
		return false, err
	}
	if resp.Available {
		c.cache.SetDefault(key, true)
	}
	return resp.Available, nil
}

func (c *CatalogClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
