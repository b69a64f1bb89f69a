package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArtysFactory/proofy/internal/anchor"
	"github.com/ArtysFactory/proofy/internal/auth"
	"github.com/ArtysFactory/proofy/internal/metrics"
	"github.com/ArtysFactory/proofy/internal/middleware"
	"github.com/ArtysFactory/proofy/internal/storage/sqlite"
	"github.com/ArtysFactory/proofy/pkg/api"
	"github.com/ArtysFactory/proofy/pkg/api/apiconnect"
)

const testSecret = "test-secret-test-secret-test-secret"

// testEnv is a running server with every service mounted the way the real
// router mounts them.
type testEnv struct {
	store   *sqlite.SQLiteStore
	metrics *metrics.Metrics

	auth   apiconnect.AuthServiceClient
	rights apiconnect.RightsServiceClient
	works  apiconnect.WorkServiceClient
	proofs apiconnect.ProofServiceClient
}

func setupTestServer(t *testing.T, anchorer anchor.Anchorer) *testEnv {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "proofy-service-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	m := metrics.New()

	optional := connect.WithInterceptors(m.Interceptor(), middleware.OptionalAuth(jwtManager))
	required := connect.WithInterceptors(m.Interceptor(), middleware.RequireAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), optional))
	mux.Handle(apiconnect.NewRightsServiceHandler(NewRightsService(logger), optional))
	mux.Handle(apiconnect.NewWorkServiceHandler(NewWorkService(store, anchorer, m, logger), required))
	mux.Handle(apiconnect.NewProofServiceHandler(NewProofService(store, logger), optional))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{
		store:   store,
		metrics: m,
		auth:    apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		rights:  apiconnect.NewRightsServiceClient(http.DefaultClient, server.URL),
		works:   apiconnect.NewWorkServiceClient(http.DefaultClient, server.URL),
		proofs:  apiconnect.NewProofServiceClient(http.DefaultClient, server.URL),
	}
}

// register creates an account and returns its bearer token.
func (e *testEnv) register(t *testing.T, email, name string) string {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       email,
		DisplayName: name,
		Password:    "password123",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return resp.Msg.Token
}

// authed wraps msg in a request carrying the bearer token.
func authed[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("code = %v, want %v (error: %v)", got, want, err)
	}
}
