package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/ArtysFactory/proofy/pkg/api"
)

// ProofServiceName is the fully-qualified name of the ProofService.
const ProofServiceName = "proofy.v1.ProofService"

// Procedure paths of the ProofService.
const (
	ProofServiceGetProofProcedure   = "/" + ProofServiceName + "/GetProof"
	ProofServiceVerifyHashProcedure = "/" + ProofServiceName + "/VerifyHash"
)

// ProofServiceHandler serves public proof lookups.
type ProofServiceHandler interface {
	GetProof(context.Context, *connect.Request[api.GetProofRequest]) (*connect.Response[api.GetProofResponse], error)
	VerifyHash(context.Context, *connect.Request[api.VerifyHashRequest]) (*connect.Response[api.VerifyHashResponse], error)
}

// NewProofServiceHandler builds an HTTP handler for the ProofService. It returns the
// path prefix to mount it on.
func NewProofServiceHandler(svc ProofServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getProofHandler := connect.NewUnaryHandler(ProofServiceGetProofProcedure, svc.GetProof, opts...)
	verifyHashHandler := connect.NewUnaryHandler(ProofServiceVerifyHashProcedure, svc.VerifyHash, opts...)
	return "/" + ProofServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ProofServiceGetProofProcedure:
			getProofHandler.ServeHTTP(w, r)
		case ProofServiceVerifyHashProcedure:
			verifyHashHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ProofServiceClient is a client for the ProofService.
type ProofServiceClient interface {
	GetProof(context.Context, *connect.Request[api.GetProofRequest]) (*connect.Response[api.GetProofResponse], error)
	VerifyHash(context.Context, *connect.Request[api.VerifyHashRequest]) (*connect.Response[api.VerifyHashResponse], error)
}

// NewProofServiceClient calls the ProofService at baseURL, e.g. http://localhost:8080.
func NewProofServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProofServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &proofServiceClient{
		getProof:   connect.NewClient[api.GetProofRequest, api.GetProofResponse](httpClient, baseURL+ProofServiceGetProofProcedure, opts...),
		verifyHash: connect.NewClient[api.VerifyHashRequest, api.VerifyHashResponse](httpClient, baseURL+ProofServiceVerifyHashProcedure, opts...),
	}
}

type proofServiceClient struct {
	getProof   *connect.Client[api.GetProofRequest, api.GetProofResponse]
	verifyHash *connect.Client[api.VerifyHashRequest, api.VerifyHashResponse]
}

func (c *proofServiceClient) GetProof(ctx context.Context, req *connect.Request[api.GetProofRequest]) (*connect.Response[api.GetProofResponse], error) {
	return c.getProof.CallUnary(ctx, req)
}

func (c *proofServiceClient) VerifyHash(ctx context.Context, req *connect.Request[api.VerifyHashRequest]) (*connect.Response[api.VerifyHashResponse], error) {
	return c.verifyHash.CallUnary(ctx, req)
}
