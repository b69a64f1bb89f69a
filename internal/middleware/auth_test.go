package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/ArtysFactory/proofy/internal/auth"
	"github.com/ArtysFactory/proofy/internal/models"
)

type empty struct{}

func newJWT(t *testing.T) (*auth.JWTManager, string) {
	t.Helper()
	m := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	token, err := m.Generate(&models.User{ID: "user-1", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return m, token
}

// capture records the identity seen by the wrapped handler.
func capture(seen *string) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		*seen = GetUserID(ctx)
		return connect.NewResponse(&empty{}), nil
	}
}

func TestRequireAuth(t *testing.T) {
	m, token := newJWT(t)

	tests := []struct {
		name     string
		header   string
		wantCode connect.Code
		wantUser string
	}{
		{name: "valid token", header: "Bearer " + token, wantUser: "user-1"},
		{name: "missing header", header: "", wantCode: connect.CodeUnauthenticated},
		{name: "wrong scheme", header: "Basic " + token, wantCode: connect.CodeUnauthenticated},
		{name: "bad token", header: "Bearer nope", wantCode: connect.CodeUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			req := connect.NewRequest(&empty{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := RequireAuth(m)(capture(&seen))(context.Background(), req)
			if tt.wantCode != 0 {
				if connect.CodeOf(err) != tt.wantCode {
					t.Fatalf("code = %v, want %v", connect.CodeOf(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen != tt.wantUser {
				t.Errorf("user = %q, want %q", seen, tt.wantUser)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	m, token := newJWT(t)

	for header, want := range map[string]string{
		"":                 "",
		"Bearer " + token:  "user-1",
		"Bearer malformed": "",
	} {
		var seen string
		req := connect.NewRequest(&empty{})
		req.Header().Set("Authorization", header)
		if _, err := OptionalAuth(m)(capture(&seen))(context.Background(), req); err != nil {
			t.Fatalf("header %q: unexpected error: %v", header, err)
		}
		if seen != want {
			t.Errorf("header %q: user = %q, want %q", header, seen, want)
		}
	}
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	failing := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrWeakPassword)
	}
	ctx := WithUser(context.Background(), "user-1", "ada@example.com")
	_, err := LoggingInterceptor(logger)(failing)(ctx, connect.NewRequest(&empty{}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("code = %v, want invalid_argument", connect.CodeOf(err))
	}

	out := buf.String()
	for _, want := range []string{"level=WARN", "code=invalid_argument", "user_id=user-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}
