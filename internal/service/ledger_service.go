package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/pkg/clubapi"
	"github.com/mmynk/clubhouse/pkg/clubapi/clubapiconnect"
)

// LedgerService implements the Connect LedgerService.
type LedgerService struct {
	engine *club.Engine
}

var _ clubapiconnect.LedgerServiceHandler = (*LedgerService)(nil)

// NewLedgerService creates a new LedgerService backed by the engine.
func NewLedgerService(engine *club.Engine) *LedgerService {
	return &LedgerService{engine: engine}
}

// RecordTransaction appends an entry to a group's ledger.
func (s *LedgerService) RecordTransaction(ctx context.Context, req *connect.Request[clubapi.RecordTransactionRequest]) (*connect.Response[clubapi.RecordTransactionResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RecordTransaction request received", "group_id", req.Msg.GroupID, "amount", req.Msg.Amount)

	entry, err := s.engine.RecordTransaction(ctx, p, req.Msg.GroupID, club.TransactionForm{
		Amount:      req.Msg.Amount,
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, fail("RecordTransaction", err, "group_id", req.Msg.GroupID)
	}

	return connect.NewResponse(&clubapi.RecordTransactionResponse{
		Entry: toLedgerLine(models.LedgerLine{LedgerEntry: *entry, ActorName: p.Nickname}),
	}), nil
}

// GetLedger returns a group's entries newest first with running balances.
func (s *LedgerService) GetLedger(ctx context.Context, req *connect.Request[clubapi.GetLedgerRequest]) (*connect.Response[clubapi.GetLedgerResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	view, err := s.engine.GetLedger(ctx, p, req.Msg.GroupID)
	if err != nil {
		return nil, fail("GetLedger", err, "group_id", req.Msg.GroupID)
	}

	lines := make([]*clubapi.LedgerLine, len(view.Lines))
	for i, l := range view.Lines {
		lines[i] = toLedgerLine(l)
	}
	return connect.NewResponse(&clubapi.GetLedgerResponse{
		Lines:    lines,
		Balance:  view.Balance,
		Income:   view.Income,
		Expenses: view.Expenses,
	}), nil
}

// GetBalance returns the sum of a group's ledger.
func (s *LedgerService) GetBalance(ctx context.Context, req *connect.Request[clubapi.GetBalanceRequest]) (*connect.Response[clubapi.GetBalanceResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := s.engine.GetBalance(ctx, p, req.Msg.GroupID)
	if err != nil {
		return nil, fail("GetBalance", err, "group_id", req.Msg.GroupID)
	}
	return connect.NewResponse(&clubapi.GetBalanceResponse{Balance: balance}), nil
}
