package server

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// RegistrationFunc registers a grpc service with the server.
type RegistrationFunc func(*grpc.Server)

// NewGRPCServer creates a gRPC server, applies the given service
// registrations and optionally enables server reflection.
func NewGRPCServer(enableReflection bool, registrations ...RegistrationFunc) *grpc.Server {
	srv := grpc.NewServer()

	for _, register := range registrations {
		register(srv)
	}

	if enableReflection {
		reflection.Register(srv)
	}

	return srv
}
