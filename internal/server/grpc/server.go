// Package grpc serves the HostStore API: area-scoped key-value operations,
// a handshake that trades the shared auth key for a session token, and a
// change-feed stream. Handlers stay thin; everything stateful lives in the
// hostkv.Store implementations the server routes to.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
	pb "github.com/larkstore/larkstore/internal/proto"
)

type GRPCServer struct {
	pb.UnimplementedHostStoreServer
	address    string
	logger     logging.Logger
	stores     map[hostkv.Area]hostkv.Store
	authKey    []byte
	sessionTTL time.Duration
}

// NewGRPCServer wires the HostStore service. local backs hostkv.AreaLocal,
// session backs hostkv.AreaSession; authKey is the shared secret Handshake
// verifies and the HMAC key session tokens are signed with.
func NewGRPCServer(addr string, l logging.Logger, local, session hostkv.Store, authKey string, sessionTTL time.Duration) (*GRPCServer, error) {
	return &GRPCServer{
		address: addr,
		logger:  l.With("module", "grpc_server"),
		stores: map[hostkv.Area]hostkv.Store{
			hostkv.AreaLocal:   local,
			hostkv.AreaSession: session,
		},
		authKey:    []byte(authKey),
		sessionTTL: sessionTTL,
	}, nil
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.sessionTokenInterceptor),
		grpc.ChainStreamInterceptor(s.sessionTokenStreamInterceptor),
	)

	pb.RegisterHostStoreServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "stopping gRPC server")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
