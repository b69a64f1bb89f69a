package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/ArtysFactory/proofy/pkg/api"
)

// RightsServiceName is the fully-qualified name of the RightsService.
const RightsServiceName = "proofy.v1.RightsService"

// Procedure paths of the RightsService.
const (
	RightsServiceEditAllocationProcedure = "/" + RightsServiceName + "/EditAllocation"
)

// RightsServiceHandler edits rights splits without persisting them.
type RightsServiceHandler interface {
	EditAllocation(context.Context, *connect.Request[api.EditAllocationRequest]) (*connect.Response[api.EditAllocationResponse], error)
}

// NewRightsServiceHandler builds an HTTP handler for the RightsService. It returns the
// path prefix to mount it on.
func NewRightsServiceHandler(svc RightsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	editAllocationHandler := connect.NewUnaryHandler(RightsServiceEditAllocationProcedure, svc.EditAllocation, opts...)
	return "/" + RightsServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RightsServiceEditAllocationProcedure:
			editAllocationHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// RightsServiceClient is a client for the RightsService.
type RightsServiceClient interface {
	EditAllocation(context.Context, *connect.Request[api.EditAllocationRequest]) (*connect.Response[api.EditAllocationResponse], error)
}

// NewRightsServiceClient calls the RightsService at baseURL, e.g. http://localhost:8080.
func NewRightsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RightsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &rightsServiceClient{
		editAllocation: connect.NewClient[api.EditAllocationRequest, api.EditAllocationResponse](httpClient, baseURL+RightsServiceEditAllocationProcedure, opts...),
	}
}

type rightsServiceClient struct {
	editAllocation *connect.Client[api.EditAllocationRequest, api.EditAllocationResponse]
}

func (c *rightsServiceClient) EditAllocation(ctx context.Context, req *connect.Request[api.EditAllocationRequest]) (*connect.Response[api.EditAllocationResponse], error) {
	return c.editAllocation.CallUnary(ctx, req)
}
