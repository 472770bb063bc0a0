// Package catalogrpc declares the catalog gRPC service by hand. Messages are
// plain Go structs carried with a JSON codec instead of protobuf.
package catalogrpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (Codec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(Codec{})
}
