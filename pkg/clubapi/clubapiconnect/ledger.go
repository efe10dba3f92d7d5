package clubapiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/pkg/clubapi"
)

// LedgerServiceName is the fully-qualified name of the LedgerService.
const LedgerServiceName = "clubhouse.v1.LedgerService"

// Procedure paths of the LedgerService.
const (
	LedgerServiceRecordTransactionProcedure = "/clubhouse.v1.LedgerService/RecordTransaction"
	LedgerServiceGetLedgerProcedure         = "/clubhouse.v1.LedgerService/GetLedger"
	LedgerServiceGetBalanceProcedure        = "/clubhouse.v1.LedgerService/GetBalance"
)

// LedgerServiceClient is a client for the clubhouse.v1.LedgerService.
type LedgerServiceClient interface {
	RecordTransaction(context.Context, *connect.Request[clubapi.RecordTransactionRequest]) (*connect.Response[clubapi.RecordTransactionResponse], error)
	GetLedger(context.Context, *connect.Request[clubapi.GetLedgerRequest]) (*connect.Response[clubapi.GetLedgerResponse], error)
	GetBalance(context.Context, *connect.Request[clubapi.GetBalanceRequest]) (*connect.Response[clubapi.GetBalanceResponse], error)
}

// NewLedgerServiceClient constructs a client for the clubhouse.v1.LedgerService.
// baseURL is the server's URL without a trailing procedure path.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ledgerServiceClient{
		recordTransaction: connect.NewClient[clubapi.RecordTransactionRequest, clubapi.RecordTransactionResponse](httpClient, baseURL+LedgerServiceRecordTransactionProcedure, opts...),
		getLedger:         connect.NewClient[clubapi.GetLedgerRequest, clubapi.GetLedgerResponse](httpClient, baseURL+LedgerServiceGetLedgerProcedure, opts...),
		getBalance:        connect.NewClient[clubapi.GetBalanceRequest, clubapi.GetBalanceResponse](httpClient, baseURL+LedgerServiceGetBalanceProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	recordTransaction *connect.Client[clubapi.RecordTransactionRequest, clubapi.RecordTransactionResponse]
	getLedger         *connect.Client[clubapi.GetLedgerRequest, clubapi.GetLedgerResponse]
	getBalance        *connect.Client[clubapi.GetBalanceRequest, clubapi.GetBalanceResponse]
}

func (c *ledgerServiceClient) RecordTransaction(ctx context.Context, req *connect.Request[clubapi.RecordTransactionRequest]) (*connect.Response[clubapi.RecordTransactionResponse], error) {
	return c.recordTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetLedger(ctx context.Context, req *connect.Request[clubapi.GetLedgerRequest]) (*connect.Response[clubapi.GetLedgerResponse], error) {
	return c.getLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBalance(ctx context.Context, req *connect.Request[clubapi.GetBalanceRequest]) (*connect.Response[clubapi.GetBalanceResponse], error) {
	return c.getBalance.CallUnary(ctx, req)
}

// LedgerServiceHandler is implemented by servers of the clubhouse.v1.LedgerService.
type LedgerServiceHandler interface {
	RecordTransaction(context.Context, *connect.Request[clubapi.RecordTransactionRequest]) (*connect.Response[clubapi.RecordTransactionResponse], error)
	GetLedger(context.Context, *connect.Request[clubapi.GetLedgerRequest]) (*connect.Response[clubapi.GetLedgerResponse], error)
	GetBalance(context.Context, *connect.Request[clubapi.GetBalanceRequest]) (*connect.Response[clubapi.GetBalanceResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]*connect.Handler{
		LedgerServiceRecordTransactionProcedure: connect.NewUnaryHandler(LedgerServiceRecordTransactionProcedure, svc.RecordTransaction, opts...),
		LedgerServiceGetLedgerProcedure:         connect.NewUnaryHandler(LedgerServiceGetLedgerProcedure, svc.GetLedger, opts...),
		LedgerServiceGetBalanceProcedure:        connect.NewUnaryHandler(LedgerServiceGetBalanceProcedure, svc.GetBalance, opts...),
	}
	return "/" + LedgerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) RecordTransaction(context.Context, *connect.Request[clubapi.RecordTransactionRequest]) (*connect.Response[clubapi.RecordTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(LedgerServiceRecordTransactionProcedure))
}

func (UnimplementedLedgerServiceHandler) GetLedger(context.Context, *connect.Request[clubapi.GetLedgerRequest]) (*connect.Response[clubapi.GetLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(LedgerServiceGetLedgerProcedure))
}

func (UnimplementedLedgerServiceHandler) GetBalance(context.Context, *connect.Request[clubapi.GetBalanceRequest]) (*connect.Response[clubapi.GetBalanceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(LedgerServiceGetBalanceProcedure))
}
