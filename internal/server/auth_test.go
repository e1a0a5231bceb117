package server

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func callWithKey(t *testing.T, configured, sent string, method string) error {
	t.Helper()
	interceptor := APIKeyInterceptor(configured)
	ctx := context.Background()
	if sent != "" {
		ctx = metadata.NewIncomingContext(ctx, metadata.Pairs(apiKeyHeader, sent))
	}
	handler := func(context.Context, any) (any, error) { return "ok", nil }
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler)
	return err
}

func TestAPIKeyInterceptor(t *testing.T) {
	const method = "/reports.v1.VerifierService/ProcessReport"

	if err := callWithKey(t, "secret", "secret", method); err != nil {
		t.Errorf("matching key rejected: %v", err)
	}
	if err := callWithKey(t, "secret", "wrong", method); status.Code(err) != codes.Unauthenticated {
		t.Errorf("wrong key: expected Unauthenticated, got %v", err)
	}
	if err := callWithKey(t, "secret", "", method); status.Code(err) != codes.Unauthenticated {
		t.Errorf("missing key: expected Unauthenticated, got %v", err)
	}
	if err := callWithKey(t, "", "", method); err != nil {
		t.Errorf("disabled auth must pass through: %v", err)
	}
	if err := callWithKey(t, "secret", "", "/grpc.health.v1.Health/Check"); err != nil {
		t.Errorf("health probe must bypass auth: %v", err)
	}
}
