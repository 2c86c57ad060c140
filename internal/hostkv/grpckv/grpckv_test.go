package grpckv

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
	pb "github.com/larkstore/larkstore/internal/proto"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeClient scripts the daemon side of the pb.HostStoreClient interface.
type fakeClient struct {
	pb.HostStoreClient

	mu         sync.Mutex
	handshakes int
	authKey    string

	items map[string][]byte

	getErr  error
	setErr  error
	streams []*fakeWatchStream
}

func newFakeClient(authKey string) *fakeClient {
	return &fakeClient{authKey: authKey, items: map[string][]byte{}}
}

func (f *fakeClient) Handshake(ctx context.Context, req *pb.HandshakeRequest, opts ...grpc.CallOption) (*pb.HandshakeResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.AuthKey != f.authKey {
		return nil, status.Error(codes.Unauthenticated, "invalid auth key")
	}
	f.handshakes++
	return &pb.HandshakeResponse{SessionToken: "token"}, nil
}

func (f *fakeClient) Ping(ctx context.Context, req *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (f *fakeClient) Get(ctx context.Context, req *pb.GetRequest, opts ...grpc.CallOption) (*pb.GetResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := map[string][]byte{}
	for _, k := range req.Keys {
		if v, ok := f.items[k]; ok {
			out[k] = v
		}
	}
	return &pb.GetResponse{Items: out}, nil
}

func (f *fakeClient) Set(ctx context.Context, req *pb.SetRequest, opts ...grpc.CallOption) (*pb.SetResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return nil, f.setErr
	}
	for k, v := range req.Items {
		f.items[k] = v
	}
	return &pb.SetResponse{}, nil
}

func (f *fakeClient) Watch(ctx context.Context, req *pb.WatchRequest, opts ...grpc.CallOption) (pb.HostStore_WatchClient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.streams) == 0 {
		return nil, status.Error(codes.Unavailable, "no stream scripted")
	}
	st := f.streams[0]
	f.streams = f.streams[1:]
	st.ctx = ctx
	return st, nil
}

// fakeWatchStream replays scripted responses, then returns err.
type fakeWatchStream struct {
	ctx       context.Context
	responses chan *pb.WatchResponse
	err       error
}

func newFakeWatchStream(err error, responses ...*pb.WatchResponse) *fakeWatchStream {
	ch := make(chan *pb.WatchResponse, len(responses))
	for _, r := range responses {
		ch <- r
	}
	close(ch)
	return &fakeWatchStream{responses: ch, err: err}
}

func (s *fakeWatchStream) Recv() (*pb.WatchResponse, error) {
	if r, ok := <-s.responses; ok {
		return r, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	<-s.ctx.Done()
	return nil, s.ctx.Err()
}

func (s *fakeWatchStream) Header() (metadata.MD, error) { return nil, nil }
func (s *fakeWatchStream) Trailer() metadata.MD         { return nil }
func (s *fakeWatchStream) CloseSend() error             { return nil }
func (s *fakeWatchStream) Context() context.Context     { return s.ctx }
func (s *fakeWatchStream) SendMsg(m any) error          { return nil }
func (s *fakeWatchStream) RecvMsg(m any) error          { return nil }

func newTestStore(client pb.HostStoreClient) *Store {
	return &Store{
		clientName: "test",
		authKey:    "secret",
		logger:     nopLogger{},
		client:     client,
		subs:       make(map[string]chan []hostkv.Change),
	}
}

func TestGetSet_RoundTrip(t *testing.T) {
	t.Parallel()

	fake := newFakeClient("secret")
	s := newTestStore(fake)
	ctx := context.Background()

	err := s.Set(ctx, hostkv.AreaLocal, map[string]json.RawMessage{"a": json.RawMessage(`1`)})
	require.NoError(t, err)

	items, err := s.Get(ctx, hostkv.AreaLocal, []string{"a", "missing"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.JSONEq(t, `1`, string(items["a"]))
}

func TestSessionToken_HandshakesOnlyOnce(t *testing.T) {
	t.Parallel()

	fake := newFakeClient("secret")
	s := newTestStore(fake)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.sessionToken(ctx, false)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, fake.handshakes)
}

func TestSessionToken_WrongAuthKey(t *testing.T) {
	t.Parallel()

	fake := newFakeClient("other")
	s := newTestStore(fake)

	_, err := s.sessionToken(context.Background(), false)
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestInterceptor_RefreshesExpiredToken(t *testing.T) {
	t.Parallel()

	fake := newFakeClient("secret")
	s := newTestStore(fake)
	ctx := context.Background()

	calls := 0
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		calls++
		md, _ := metadata.FromOutgoingContext(ctx)
		require.NotEmpty(t, md.Get(common.SessionTokenHeaderName))
		if calls == 1 {
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil
	}

	err := s.sessionTokenInterceptor(ctx, "/larkstore.hoststore.v1.HostStore/Get", nil, nil, nil, invoker)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, fake.handshakes, "expired token should force a second handshake")
}

func TestInterceptor_SkipsOpenMethods(t *testing.T) {
	t.Parallel()

	fake := newFakeClient("secret")
	s := newTestStore(fake)

	invoked := false
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		invoked = true
		return nil
	}

	err := s.sessionTokenInterceptor(context.Background(), "/larkstore.hoststore.v1.HostStore/Ping", nil, nil, nil, invoker)
	require.NoError(t, err)
	assert.True(t, invoked)
	assert.Zero(t, fake.handshakes)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code codes.Code
		want error
	}{
		{"unavailable", codes.Unavailable, common.ErrHostUnavailable},
		{"deadline", codes.DeadlineExceeded, common.ErrHostUnavailable},
		{"quota", codes.ResourceExhausted, common.ErrQuotaExceeded},
		{"not_found", codes.NotFound, common.ErrNotFound},
		{"unauthenticated", codes.Unauthenticated, common.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError(status.Error(tt.code, "x"))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.NoError(t, mapError(nil))
}

func TestSubscribe_DeliversWatchBatches(t *testing.T) {
	t.Parallel()

	fake := newFakeClient("secret")
	fake.streams = []*fakeWatchStream{
		newFakeWatchStream(nil, &pb.WatchResponse{Changes: []*pb.Change{
			{Area: "local", Key: "k", NewValue: []byte(`"v"`)},
		}}),
	}
	s := newTestStore(fake)
	t.Cleanup(func() { _ = s.Close() })

	ch, cancel, err := s.Subscribe(context.Background())
	require.NoError(t, err)
	defer cancel()

	select {
	case batch := <-ch:
		require.Len(t, batch, 1)
		assert.Equal(t, hostkv.AreaLocal, batch[0].Area)
		assert.Equal(t, "k", batch[0].Key)
		assert.JSONEq(t, `"v"`, string(batch[0].NewValue))
	case <-time.After(2 * time.Second):
		t.Fatal("no change batch delivered")
	}
}

func TestWatch_ResubscribesAfterStreamError(t *testing.T) {
	t.Parallel()

	fake := newFakeClient("secret")
	fake.streams = []*fakeWatchStream{
		newFakeWatchStream(status.Error(codes.Unavailable, "gone"),
			&pb.WatchResponse{Changes: []*pb.Change{{Area: "local", Key: "first"}}}),
		newFakeWatchStream(nil,
			&pb.WatchResponse{Changes: []*pb.Change{{Area: "local", Key: "second"}}}),
	}
	s := newTestStore(fake)
	t.Cleanup(func() { _ = s.Close() })

	ch, cancel, err := s.Subscribe(context.Background())
	require.NoError(t, err)
	defer cancel()

	var keys []string
	for len(keys) < 2 {
		select {
		case batch := <-ch:
			for _, c := range batch {
				keys = append(keys, c.Key)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("only received %v before timeout", keys)
		}
	}
	assert.Equal(t, []string{"first", "second"}, keys)
}

func TestSubscribe_AfterClose(t *testing.T) {
	t.Parallel()

	s := newTestStore(newFakeClient("secret"))
	require.NoError(t, s.Close())

	_, _, err := s.Subscribe(context.Background())
	assert.ErrorIs(t, err, common.ErrHostUnavailable)
}
