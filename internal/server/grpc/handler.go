package grpc

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/hostkv"
	pb "github.com/larkstore/larkstore/internal/proto"
	"github.com/larkstore/larkstore/internal/server/auth"
)

// Handshake verifies the shared auth key and issues a session token bound to
// a freshly assigned client ID.
func (s *GRPCServer) Handshake(ctx context.Context, req *pb.HandshakeRequest) (*pb.HandshakeResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.AuthKey), s.authKey) != 1 {
		s.logger.Warn(ctx, "handshake rejected", "client_name", req.ClientName)
		return nil, status.Error(codes.Unauthenticated, "invalid auth key")
	}

	clientID := uuid.NewString()
	token, err := auth.GenerateToken(clientID, s.authKey, s.sessionTTL)
	if err != nil {
		s.logger.Error(ctx, "minting session token failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "handshake complete", "client_name", req.ClientName, "client_id", clientID)
	return &pb.HandshakeResponse{SessionToken: token}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Get(ctx context.Context, req *pb.GetRequest) (*pb.GetResponse, error) {
	store, err := s.store(req.Area)
	if err != nil {
		return nil, err
	}

	items, err := store.Get(ctx, hostkv.Area(req.Area), req.Keys)
	if err != nil {
		return nil, rpcError(err)
	}

	return &pb.GetResponse{Items: fromRaw(items)}, nil
}

func (s *GRPCServer) List(ctx context.Context, req *pb.ListRequest) (*pb.ListResponse, error) {
	store, err := s.store(req.Area)
	if err != nil {
		return nil, err
	}

	items, err := store.List(ctx, hostkv.Area(req.Area))
	if err != nil {
		return nil, rpcError(err)
	}

	return &pb.ListResponse{Items: fromRaw(items)}, nil
}

func (s *GRPCServer) Set(ctx context.Context, req *pb.SetRequest) (*pb.SetResponse, error) {
	store, err := s.store(req.Area)
	if err != nil {
		return nil, err
	}

	if err := store.Set(ctx, hostkv.Area(req.Area), toRaw(req.Items)); err != nil {
		return nil, rpcError(err)
	}

	return &pb.SetResponse{}, nil
}

func (s *GRPCServer) Remove(ctx context.Context, req *pb.RemoveRequest) (*pb.RemoveResponse, error) {
	store, err := s.store(req.Area)
	if err != nil {
		return nil, err
	}

	if err := store.Remove(ctx, hostkv.Area(req.Area), req.Keys); err != nil {
		return nil, rpcError(err)
	}

	return &pb.RemoveResponse{}, nil
}

func (s *GRPCServer) Clear(ctx context.Context, req *pb.ClearRequest) (*pb.ClearResponse, error) {
	store, err := s.store(req.Area)
	if err != nil {
		return nil, err
	}

	if err := store.Clear(ctx, hostkv.Area(req.Area)); err != nil {
		return nil, rpcError(err)
	}

	return &pb.ClearResponse{}, nil
}

func (s *GRPCServer) Stats(ctx context.Context, req *pb.StatsRequest) (*pb.StatsResponse, error) {
	store, err := s.store(req.Area)
	if err != nil {
		return nil, err
	}

	stats, err := store.Stats(ctx, hostkv.Area(req.Area))
	if err != nil {
		return nil, rpcError(err)
	}

	return &pb.StatsResponse{
		BytesInUse: stats.BytesInUse,
		QuotaBytes: stats.QuotaBytes,
		KeyCount:   stats.KeyCount,
	}, nil
}

// Watch subscribes to every backing store and streams merged change batches
// until the client goes away.
func (s *GRPCServer) Watch(req *pb.WatchRequest, stream pb.HostStore_WatchServer) error {
	ctx := stream.Context()

	merged := make(chan []hostkv.Change, 8)
	var cancels []func()

	// both areas may be served by one store; subscribe to each store once
	seen := make(map[hostkv.Store]bool, len(s.stores))
	for _, store := range s.stores {
		if seen[store] {
			continue
		}
		seen[store] = true

		ch, cancel, err := store.Subscribe(ctx)
		if err != nil {
			for _, c := range cancels {
				c()
			}
			return rpcError(err)
		}
		cancels = append(cancels, cancel)

		go func(ch <-chan []hostkv.Change) {
			for batch := range ch {
				select {
				case merged <- batch:
				case <-ctx.Done():
					return
				}
			}
		}(ch)
	}
	defer func() {
		for _, c := range cancels {
			c()
		}
	}()

	s.logger.Debug(ctx, "watch stream opened", "client_id", ctx.Value(ClientIDKey))

	for {
		select {
		case <-ctx.Done():
			return nil
		case batch := <-merged:
			resp := &pb.WatchResponse{Changes: make([]*pb.Change, 0, len(batch))}
			for _, c := range batch {
				resp.Changes = append(resp.Changes, &pb.Change{
					Area:     string(c.Area),
					Key:      c.Key,
					OldValue: c.OldValue,
					NewValue: c.NewValue,
				})
			}
			if err := stream.Send(resp); err != nil {
				return err
			}
		}
	}
}

func (s *GRPCServer) store(area string) (hostkv.Store, error) {
	store, ok := s.stores[hostkv.Area(area)]
	if !ok || store == nil {
		return nil, status.Errorf(codes.InvalidArgument, "unknown area %q", area)
	}
	return store, nil
}

// rpcError translates store errors into gRPC status codes.
func rpcError(err error) error {
	switch {
	case errors.Is(err, common.ErrQuotaExceeded):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrHostUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toRaw(items map[string][]byte) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(items))
	for k, v := range items {
		out[k] = v
	}
	return out
}

func fromRaw(items map[string]json.RawMessage) map[string][]byte {
	out := make(map[string][]byte, len(items))
	for k, v := range items {
		out[k] = v
	}
	return out
}
