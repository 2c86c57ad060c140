package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/server/auth"
)

type ctxKey string

// ClientIDKey carries the authenticated client ID in handler contexts.
const ClientIDKey ctxKey = "clientID"

// openMethods are reachable without a session token.
var openMethods = map[string]bool{
	"/larkstore.hoststore.v1.HostStore/Handshake": true,
	"/larkstore.hoststore.v1.HostStore/Ping":      true,
}

func (s *GRPCServer) sessionTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if openMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	clientID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	return handler(context.WithValue(ctx, ClientIDKey, clientID), req)
}

func (s *GRPCServer) sessionTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if openMethods[info.FullMethod] {
		return handler(srv, ss)
	}

	clientID, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}

	return handler(srv, &authenticatedStream{
		ServerStream: ss,
		ctx:          context.WithValue(ss.Context(), ClientIDKey, clientID),
	})
}

// authenticate extracts and verifies the session token from the incoming
// metadata and returns the client ID it was issued to.
func (s *GRPCServer) authenticate(ctx context.Context) (string, error) {
	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.SessionTokenHeaderName)
		if len(values) > 0 {
			token = values[0]
		}
	}
	if len(token) == 0 {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}

	clientID, err := auth.GetClientIDFromToken(token, s.authKey)
	if err != nil {
		return "", status.Error(codes.Unauthenticated, err.Error())
	}

	return clientID, nil
}

// authenticatedStream overrides Context so stream handlers see the client ID.
type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context { return s.ctx }
