package clubapi

// RecordTransactionRequest carries the amount as entered: a signed integer,
// income positive and expense negative.
type RecordTransactionRequest struct {
	GroupID     string `json:"groupId"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// RecordTransactionResponse leaves Entry.Balance zero; GetLedger has the
// running balances.
type RecordTransactionResponse struct {
	Entry *LedgerLine `json:"entry"`
}

type GetLedgerRequest struct {
	GroupID string `json:"groupId"`
}

type GetLedgerResponse struct {
	Lines    []*LedgerLine `json:"lines"`
	Balance  int64         `json:"balance"`
	Income   int64         `json:"income"`
	Expenses int64         `json:"expenses"`
}

type GetBalanceRequest struct {
	GroupID string `json:"groupId"`
}

type GetBalanceResponse struct {
	Balance int64 `json:"balance"`
}
