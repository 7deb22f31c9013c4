package grpc

import (
	"crypto/tls"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// GetGrpcConnection dials address ("host:port"). TLS is used when requested or when the port is 443.
func GetGrpcConnection(address string, useTLS bool) (*grpc.ClientConn, error) {
	transportCredentials := grpc.WithTransportCredentials(insecure.NewCredentials())
	if useTLS || strings.HasSuffix(address, ":443") {
		// System roots
		creds := credentials.NewTLS(&tls.Config{
			MinVersion: tls.VersionTLS12,
		})
		transportCredentials = grpc.WithTransportCredentials(creds)
	}

	opts := []grpc.DialOption{
		transportCredentials,
	}

	return grpc.Dial(
		address,
		opts...,
	)
}
