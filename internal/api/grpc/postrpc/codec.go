// Package postrpc defines the internal RPC protocol between the gateway and
// the post service: message types, the wire codec and the service contracts.
// Messages travel as CBOR over gRPC; the codec is registered globally and
// clients select it through the content-subtype call option.
package postrpc

import (
	"github.com/fxamacker/cbor/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the registered codec name, used as the gRPC content-subtype.
const CodecName = "cbor"

func init() {
	encoding.RegisterCodec(codec{})
}

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}

func (codec) Name() string {
	return CodecName
}

// CallOption selects the CBOR codec on outgoing calls. Dial with
// grpc.WithDefaultCallOptions(postrpc.CallOption()).
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}
