package rpc

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/aura-nw/smart-account-sample/log"
)

// Transport is the protocol used to talk to a node.
type Transport int

const (
	TransportCometRPC Transport = iota
	TransportGrpc
)

func (t Transport) String() string {
	switch t {
	case TransportCometRPC:
		return "cometbft-rpc"
	case TransportGrpc:
		return "grpc"
	default:
		return "unknown"
	}
}

var ErrUnsupportedEndpoint = errors.New("unsupported endpoint")

// Endpoint is a parsed node address.
type Endpoint struct {
	Transport Transport
	// Address is a full URL for CometBFT RPC and host:port for gRPC.
	Address string
	TLS     bool
}

// ParseEndpoint accepts http(s):// and tcp:// URLs for CometBFT RPC and grpc(s):// for gRPC.
func ParseEndpoint(endpoint string) (*Endpoint, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %s", ErrUnsupportedEndpoint, endpoint, err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w %q: missing host", ErrUnsupportedEndpoint, endpoint)
	}

	switch parsed.Scheme {
	case "http", "https", "tcp":
		return &Endpoint{
			Transport: TransportCometRPC,
			Address:   endpoint,
			TLS:       parsed.Scheme == "https",
		}, nil
	case "grpc", "grpcs":
		if parsed.Port() == "" {
			return nil, fmt.Errorf("%w %q: grpc endpoints need a port", ErrUnsupportedEndpoint, endpoint)
		}
		return &Endpoint{
			Transport: TransportGrpc,
			Address:   parsed.Host,
			TLS:       parsed.Scheme == "grpcs",
		}, nil
	default:
		return nil, fmt.Errorf("%w %q: unknown scheme %q", ErrUnsupportedEndpoint, endpoint, parsed.Scheme)
	}
}

// NewClient picks the transport from the endpoint scheme.
func NewClient(endpoint string, cdc *codec.ProtoCodec, logger *log.Logger) (RpcClient, error) {
	parsed, err := ParseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	logger = logger.With("endpoint", endpoint, "transport", parsed.Transport.String())
	switch parsed.Transport {
	case TransportGrpc:
		return NewGrpcClient(parsed.Address, parsed.TLS, cdc, logger)
	default:
		return NewCometClient(parsed.Address, cdc, logger)
	}
}
