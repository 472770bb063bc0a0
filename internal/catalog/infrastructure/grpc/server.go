package grpc

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmehra2102/ecommerce-store/internal/catalog/application"
	"github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
	pb "github.com/dmehra2102/ecommerce-store/internal/catalog/infrastructure/grpc/catalogrpc"
	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
	"github.com/dmehra2102/ecommerce-store/pkg/metrics"
)

type Server struct {
	log     *slog.Logger
	svc     *application.Service
	metrics *metrics.Metrics
}

func NewServer(log *slog.Logger, svc *application.Service, m *metrics.Metrics) *Server {
	return &Server{log: log, svc: svc, metrics: m}
}

func (s *Server) CheckVariant(ctx context.Context, req *pb.CheckVariantRequest) (*pb.CheckVariantResponse, error) {
	size, err := domain.ParseSize(req.Size)
	if err != nil {
		s.metrics.ObserveRejection(err, "grpc")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ok, err := s.svc.CheckVariant(ctx, req.ProductID, size)
	if errors.Is(err, enumeration.ErrInvalidValue) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err != nil {
		s.log.Error("check variant failed", "product_id", req.ProductID, "err", err)
		return nil, status.Error(codes.Internal, "check variant failed")
	}
	return &pb.CheckVariantResponse{Available: ok}, nil
}

// Run serves srv on addr in the background.
func Run(addr string, srv *Server) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	gs := grpc.NewServer()
	pb.RegisterCatalogServiceServer(gs, srv)
	go func() {
		_ = gs.Serve(lis)
	}()
	return gs, nil
}
