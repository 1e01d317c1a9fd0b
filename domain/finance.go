package domain

import (
	"errors"
	"time"
)

const (
	FinanceTransactionTypeIncome  = "income"
	FinanceTransactionTypeExpense = "expense"
)

var ErrInvalidTransactionType = errors.New("transaction type must be either income or expense")

// FinanceTransaction is a single cash movement with its supporting proof file.
// Amount is stored in the smallest currency unit.
type FinanceTransaction struct {
	ID          string `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type" validate:"required"`
	Amount      int64  `json:"amount" yaml:"amount" validate:"required,gt=0"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ProofURL    string `json:"proof_url,omitempty" yaml:"proof_url,omitempty"`
	OwnerID     string `json:"owner_id" yaml:"owner_id" validate:"required"`
	Status      Status `json:"status" yaml:"status"`

	TransactionDate time.Time `json:"transaction_date" yaml:"transaction_date" validate:"required"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func (t *FinanceTransaction) ValidateType() error {
	if t.Type != FinanceTransactionTypeIncome && t.Type != FinanceTransactionTypeExpense {
		return ErrInvalidTransactionType
	}
	return nil
}

type ListFinanceTransactionsFilter struct {
	Type     string   `mapstructure:"type" validate:"omitempty"`
	Category string   `mapstructure:"category" validate:"omitempty"`
	OwnerID  string   `mapstructure:"owner_id" validate:"omitempty"`
	Statuses []string `mapstructure:"statuses" validate:"omitempty,min=1"`
	OrderBy  []string `mapstructure:"order_by" validate:"omitempty,min=1"`
	Size     int      `mapstructure:"size" validate:"omitempty"`
	Offset   int      `mapstructure:"offset" validate:"omitempty"`
}
