package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/ArtysFactory/proofy/pkg/api"
)

// WorkServiceName is the fully-qualified name of the WorkService.
const WorkServiceName = "proofy.v1.WorkService"

// Procedure paths of the WorkService.
const (
	WorkServiceSubmitWorkProcedure = "/" + WorkServiceName + "/SubmitWork"
	WorkServiceGetWorkProcedure    = "/" + WorkServiceName + "/GetWork"
	WorkServiceListWorksProcedure  = "/" + WorkServiceName + "/ListWorks"
)

// WorkServiceHandler registers works and lists the caller's own works.
type WorkServiceHandler interface {
	SubmitWork(context.Context, *connect.Request[api.SubmitWorkRequest]) (*connect.Response[api.SubmitWorkResponse], error)
	GetWork(context.Context, *connect.Request[api.GetWorkRequest]) (*connect.Response[api.GetWorkResponse], error)
	ListWorks(context.Context, *connect.Request[api.ListWorksRequest]) (*connect.Response[api.ListWorksResponse], error)
}

// NewWorkServiceHandler builds an HTTP handler for the WorkService. It returns the
// path prefix to mount it on.
func NewWorkServiceHandler(svc WorkServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	submitWorkHandler := connect.NewUnaryHandler(WorkServiceSubmitWorkProcedure, svc.SubmitWork, opts...)
	getWorkHandler := connect.NewUnaryHandler(WorkServiceGetWorkProcedure, svc.GetWork, opts...)
	listWorksHandler := connect.NewUnaryHandler(WorkServiceListWorksProcedure, svc.ListWorks, opts...)
	return "/" + WorkServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case WorkServiceSubmitWorkProcedure:
			submitWorkHandler.ServeHTTP(w, r)
		case WorkServiceGetWorkProcedure:
			getWorkHandler.ServeHTTP(w, r)
		case WorkServiceListWorksProcedure:
			listWorksHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// WorkServiceClient is a client for the WorkService.
type WorkServiceClient interface {
	SubmitWork(context.Context, *connect.Request[api.SubmitWorkRequest]) (*connect.Response[api.SubmitWorkResponse], error)
	GetWork(context.Context, *connect.Request[api.GetWorkRequest]) (*connect.Response[api.GetWorkResponse], error)
	ListWorks(context.Context, *connect.Request[api.ListWorksRequest]) (*connect.Response[api.ListWorksResponse], error)
}

// NewWorkServiceClient calls the WorkService at baseURL, e.g. http://localhost:8080.
func NewWorkServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) WorkServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &workServiceClient{
		submitWork: connect.NewClient[api.SubmitWorkRequest, api.SubmitWorkResponse](httpClient, baseURL+WorkServiceSubmitWorkProcedure, opts...),
		getWork:    connect.NewClient[api.GetWorkRequest, api.GetWorkResponse](httpClient, baseURL+WorkServiceGetWorkProcedure, opts...),
		listWorks:  connect.NewClient[api.ListWorksRequest, api.ListWorksResponse](httpClient, baseURL+WorkServiceListWorksProcedure, opts...),
	}
}

type workServiceClient struct {
	submitWork *connect.Client[api.SubmitWorkRequest, api.SubmitWorkResponse]
	getWork    *connect.Client[api.GetWorkRequest, api.GetWorkResponse]
	listWorks  *connect.Client[api.ListWorksRequest, api.ListWorksResponse]
}

func (c *workServiceClient) SubmitWork(ctx context.Context, req *connect.Request[api.SubmitWorkRequest]) (*connect.Response[api.SubmitWorkResponse], error) {
	return c.submitWork.CallUnary(ctx, req)
}

func (c *workServiceClient) GetWork(ctx context.Context, req *connect.Request[api.GetWorkRequest]) (*connect.Response[api.GetWorkResponse], error) {
	return c.getWork.CallUnary(ctx, req)
}

func (c *workServiceClient) ListWorks(ctx context.Context, req *connect.Request[api.ListWorksRequest]) (*connect.Response[api.ListWorksResponse], error) {
	return c.listWorks.CallUnary(ctx, req)
}
