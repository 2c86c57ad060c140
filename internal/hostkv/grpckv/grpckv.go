// Package grpckv implements hostkv.Store over the larkstored gRPC API.
// It performs the auth-key handshake, attaches the session token to every
// call, re-handshakes once when the token expires, and keeps the change
// feed alive by resubscribing with backoff.
package grpckv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
	pb "github.com/larkstore/larkstore/internal/proto"
)

// subscriber channels buffer this many batches before dropping.
const subscriberBuffer = 64

// Watch resubscribe backoff bounds.
const (
	watchBackoffBase = 500 * time.Millisecond
	watchBackoffCap  = 30 * time.Second
)

// Store is a hostkv.Store served by a larkstored daemon.
//
// The session token is acquired lazily on the first authenticated call and
// refreshed transparently when the daemon rejects it as expired. The watch
// stream is opened on the first Subscribe and shared by all subscribers.
type Store struct {
	endpoint   string
	clientName string
	authKey    string
	logger     logging.Logger

	conn   *grpc.ClientConn
	client pb.HostStoreClient

	tokenMu sync.Mutex
	token   string

	mu          sync.Mutex
	subs        map[string]chan []hostkv.Change
	watchCancel context.CancelFunc
	closed      bool
	wg          sync.WaitGroup
}

// New dials endpoint and returns a Store identifying itself as clientName.
// The connection is lazy; the daemon is first contacted when a call needs it.
func New(endpoint, clientName, authKey string, logger logging.Logger) (*Store, error) {
	s := &Store{
		endpoint:   endpoint,
		clientName: clientName,
		authKey:    authKey,
		logger:     logger.With("module", "grpckv"),
		subs:       make(map[string]chan []hostkv.Change),
	}

	conn, err := grpc.NewClient(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.sessionTokenInterceptor),
	)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", endpoint, err)
	}

	s.conn = conn
	s.client = pb.NewHostStoreClient(conn)
	return s, nil
}

// openMethods need no session token; everything else does.
var openMethods = map[string]bool{
	"/larkstore.hoststore.v1.HostStore/Handshake": true,
	"/larkstore.hoststore.v1.HostStore/Ping":      true,
}

// sessionTokenInterceptor attaches the session token to outgoing unary
// calls, handshaking first when no token is held yet. On Unauthenticated it
// re-handshakes once and replays the call; the retried error is final.
func (s *Store) sessionTokenInterceptor(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	if openMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	token, err := s.sessionToken(ctx, false)
	if err != nil {
		return err
	}

	err = invoker(withSessionToken(ctx, token), method, req, reply, cc, opts...)
	if status.Code(err) != codes.Unauthenticated {
		return err
	}

	token, herr := s.sessionToken(ctx, true)
	if herr != nil {
		return herr
	}
	return invoker(withSessionToken(ctx, token), method, req, reply, cc, opts...)
}

// sessionToken returns the held token, handshaking when none is held or
// when force is set.
func (s *Store) sessionToken(ctx context.Context, force bool) (string, error) {
	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()

	if s.token != "" && !force {
		return s.token, nil
	}

	resp, err := s.client.Handshake(ctx, &pb.HandshakeRequest{
		ClientName: s.clientName,
		AuthKey:    s.authKey,
	})
	if err != nil {
		return "", mapError(err)
	}

	s.token = resp.SessionToken
	s.logger.Debug(ctx, "handshake complete", "client_name", s.clientName)
	return s.token, nil
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.SessionTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

// Ping checks daemon liveness. Not part of hostkv.Store; the CLI status
// command uses it.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.client.Ping(ctx, &pb.PingRequest{}); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, area hostkv.Area, keys []string) (map[string]json.RawMessage, error) {
	resp, err := s.client.Get(ctx, &pb.GetRequest{Area: string(area), Keys: keys})
	if err != nil {
		return nil, mapError(err)
	}
	return toRaw(resp.Items), nil
}

func (s *Store) List(ctx context.Context, area hostkv.Area) (map[string]json.RawMessage, error) {
	resp, err := s.client.List(ctx, &pb.ListRequest{Area: string(area)})
	if err != nil {
		return nil, mapError(err)
	}
	return toRaw(resp.Items), nil
}

func (s *Store) Set(ctx context.Context, area hostkv.Area, items map[string]json.RawMessage) error {
	if len(items) == 0 {
		return nil
	}
	_, err := s.client.Set(ctx, &pb.SetRequest{Area: string(area), Items: fromRaw(items)})
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, area hostkv.Area, keys []string) error {
	_, err := s.client.Remove(ctx, &pb.RemoveRequest{Area: string(area), Keys: keys})
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, area hostkv.Area) error {
	_, err := s.client.Clear(ctx, &pb.ClearRequest{Area: string(area)})
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Store) Stats(ctx context.Context, area hostkv.Area) (hostkv.Stats, error) {
	resp, err := s.client.Stats(ctx, &pb.StatsRequest{Area: string(area)})
	if err != nil {
		return hostkv.Stats{}, mapError(err)
	}
	return hostkv.Stats{
		BytesInUse: resp.BytesInUse,
		QuotaBytes: resp.QuotaBytes,
		KeyCount:   resp.KeyCount,
	}, nil
}

// Subscribe registers for change batches. The first subscriber starts the
// shared watch stream; it stays up until Close.
func (s *Store) Subscribe(ctx context.Context) (<-chan []hostkv.Change, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil, common.ErrHostUnavailable
	}

	if s.watchCancel == nil {
		watchCtx, cancel := context.WithCancel(context.Background())
		s.watchCancel = cancel
		s.wg.Add(1)
		go s.watchLoop(watchCtx)
	}

	id := uuid.NewString()
	ch := make(chan []hostkv.Change, subscriberBuffer)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(ch)
			}
		})
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return ch, cancel, nil
}

// watchLoop keeps one Watch stream open, forwarding batches to subscribers.
// Stream failures trigger a resubscribe with exponential backoff; a stream
// that delivered at least one batch resets the backoff.
func (s *Store) watchLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		stream, err := s.openWatch(ctx)
		if err != nil {
			return // ctx cancelled
		}

		for {
			resp, err := stream.Recv()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.Warn(ctx, "watch stream broken, resubscribing", "error", err)
				break
			}
			s.publish(fromProtoChanges(resp.Changes))
		}
	}
}

// openWatch establishes a Watch stream, retrying with capped exponential
// backoff until it succeeds or ctx is cancelled.
func (s *Store) openWatch(ctx context.Context) (pb.HostStore_WatchClient, error) {
	backoff := retry.WithCappedDuration(watchBackoffCap, retry.NewExponential(watchBackoffBase))

	var stream pb.HostStore_WatchClient
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		token, err := s.sessionToken(ctx, false)
		if err != nil {
			return retry.RetryableError(err)
		}

		st, err := s.client.Watch(withSessionToken(ctx, token), &pb.WatchRequest{})
		if err != nil {
			if status.Code(err) == codes.Unauthenticated {
				// expired token; next attempt handshakes again
				s.tokenMu.Lock()
				s.token = ""
				s.tokenMu.Unlock()
			}
			return retry.RetryableError(mapError(err))
		}

		stream = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func (s *Store) publish(batch []hostkv.Change) {
	if len(batch) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs {
		select {
		case ch <- batch:
		default:
			s.logger.Warn(context.Background(), "subscriber lagging, dropping change batch", "subscriber", id, "changes", len(batch))
		}
	}
}

// Close stops the watch stream, detaches subscribers and closes the
// connection.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	if s.watchCancel != nil {
		s.watchCancel()
	}
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	s.mu.Unlock()

	s.wg.Wait()
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// mapError translates gRPC status codes into the shared sentinels so
// callers never see transport details.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", common.ErrHostUnavailable, st.Message())
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", common.ErrQuotaExceeded, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, st.Message())
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
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

func fromProtoChanges(changes []*pb.Change) []hostkv.Change {
	out := make([]hostkv.Change, 0, len(changes))
	for _, c := range changes {
		out = append(out, hostkv.Change{
			Area:     hostkv.Area(c.Area),
			Key:      c.Key,
			OldValue: c.OldValue,
			NewValue: c.NewValue,
		})
	}
	return out
}
