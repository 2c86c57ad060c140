package grpc

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/server/auth"
)

const protectedMethod = "/larkstore.hoststore.v1.HostStore/Set"

func TestInterceptor_OpenMethod_AllowsWithoutToken(t *testing.T) {
	s, _, _ := newTestServer(t, "secret")

	info := &grpc.UnaryServerInfo{FullMethod: "/larkstore.hoststore.v1.HostStore/Ping"}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.sessionTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_Protected_MissingToken(t *testing.T) {
	s, _, _ := newTestServer(t, "secret")

	info := &grpc.UnaryServerInfo{FullMethod: protectedMethod}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.sessionTokenInterceptor(context.Background(), nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Protected_InvalidToken(t *testing.T) {
	s, _, _ := newTestServer(t, "secret")

	md := metadata.New(map[string]string{
		common.SessionTokenHeaderName: "not-a-valid-jwt",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: protectedMethod}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.sessionTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_Protected_ValidToken_SetsClientID(t *testing.T) {
	secret := "super-secret"
	s, _, _ := newTestServer(t, secret)

	clientID := "client-123"
	token, err := auth.GenerateToken(clientID, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	md := metadata.New(map[string]string{
		common.SessionTokenHeaderName: token,
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: protectedMethod}

	var gotFromCtx any
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotFromCtx = ctx.Value(ClientIDKey)
		return "ok", nil
	}

	resp, err := s.sessionTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if gotFromCtx != clientID {
		t.Fatalf("client ID not propagated in context: got %v want %v", gotFromCtx, clientID)
	}
}

type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeServerStream) Context() context.Context { return f.ctx }

func TestStreamInterceptor_MissingToken(t *testing.T) {
	s, _, _ := newTestServer(t, "secret")

	info := &grpc.StreamServerInfo{FullMethod: "/larkstore.hoststore.v1.HostStore/Watch"}
	ss := &fakeServerStream{ctx: context.Background()}

	h := func(srv interface{}, stream grpc.ServerStream) error {
		t.Fatal("handler should not be called when token missing")
		return nil
	}

	err := s.sessionTokenStreamInterceptor(nil, ss, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestStreamInterceptor_ValidToken_WrapsContext(t *testing.T) {
	secret := "secret"
	s, _, _ := newTestServer(t, secret)

	token, err := auth.GenerateToken("client-9", []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	md := metadata.New(map[string]string{common.SessionTokenHeaderName: token})
	ss := &fakeServerStream{ctx: metadata.NewIncomingContext(context.Background(), md)}
	info := &grpc.StreamServerInfo{FullMethod: "/larkstore.hoststore.v1.HostStore/Watch"}

	var gotFromCtx any
	h := func(srv interface{}, stream grpc.ServerStream) error {
		gotFromCtx = stream.Context().Value(ClientIDKey)
		return nil
	}

	if err := s.sessionTokenStreamInterceptor(nil, ss, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFromCtx != "client-9" {
		t.Fatalf("client ID not propagated: got %v", gotFromCtx)
	}
}
