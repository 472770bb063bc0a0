package catalogrpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ServiceName            = "catalog.v1.CatalogService"
	CheckVariantFullMethod = "/" + ServiceName + "/CheckVariant"
)

// Size travels as its canonical text; the server parses it.
type CheckVariantRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
}

type CheckVariantResponse struct {
	Available bool `json:"available"`
}

type CatalogServiceServer interface {
	CheckVariant(ctx context.Context, req *CheckVariantRequest) (*CheckVariantResponse, error)
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CheckVariant", Handler: checkVariantHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.json",
}

func checkVariantHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CheckVariantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).CheckVariant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CheckVariantFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).CheckVariant(ctx, req.(*CheckVariantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

type CatalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) *CatalogServiceClient {
	return &CatalogServiceClient{cc: cc}
}

func (c *CatalogServiceClient) CheckVariant(ctx context.Context, in *CheckVariantRequest, opts ...grpc.CallOption) (*CheckVariantResponse, error) {
	out := new(CheckVariantResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, CheckVariantFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
