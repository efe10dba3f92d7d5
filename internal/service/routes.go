package service

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/pkg/clubapi/clubapiconnect"
)

// PublicProcedures may be called without a token.
var PublicProcedures = []string{
	clubapiconnect.GroupServiceListGroupsProcedure,
	clubapiconnect.GroupServiceGetGroupProcedure,
	clubapiconnect.AuthServiceRegisterProcedure,
	clubapiconnect.AuthServiceLoginProcedure,
}

// Mount registers every clubhouse.v1 service on mux.
func Mount(mux *http.ServeMux, engine *club.Engine, authSvc *AuthService, opts ...connect.HandlerOption) {
	mux.Handle(clubapiconnect.NewGroupServiceHandler(NewGroupService(engine), opts...))
	mux.Handle(clubapiconnect.NewScheduleServiceHandler(NewScheduleService(engine), opts...))
	mux.Handle(clubapiconnect.NewLedgerServiceHandler(NewLedgerService(engine), opts...))
	mux.Handle(clubapiconnect.NewAuthServiceHandler(authSvc, opts...))
}
