package domain

import "time"

const (
	LetterDirectionIncoming = "incoming"
	LetterDirectionOutgoing = "outgoing"

	// Letter visibility sits outside the approval lifecycle. A letter can
	// only be published once it has been approved.
	LetterVisibilityPublished = "published"
	LetterVisibilityPrivate   = "private"
)

// Letter is an official correspondence record.
type Letter struct {
	ID         string `json:"id" yaml:"id"`
	Number     string `json:"number" yaml:"number" validate:"required"`
	Subject    string `json:"subject" yaml:"subject" validate:"required"`
	Direction  string `json:"direction" yaml:"direction" validate:"required,oneof=incoming outgoing"`
	Sender     string `json:"sender,omitempty" yaml:"sender,omitempty"`
	Recipient  string `json:"recipient,omitempty" yaml:"recipient,omitempty"`
	FileURL    string `json:"file_url,omitempty" yaml:"file_url,omitempty"`
	Visibility string `json:"visibility" yaml:"visibility"`
	OwnerID    string `json:"owner_id" yaml:"owner_id" validate:"required"`
	Status     Status `json:"status" yaml:"status"`

	LetterDate time.Time `json:"letter_date" yaml:"letter_date" validate:"required"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func (l *Letter) IsPublished() bool {
	return l.Visibility == LetterVisibilityPublished
}

type ListLettersFilter struct {
	Q          string   `mapstructure:"q" validate:"omitempty"`
	Direction  string   `mapstructure:"direction" validate:"omitempty,oneof=incoming outgoing"`
	Visibility string   `mapstructure:"visibility" validate:"omitempty,oneof=published private"`
	OwnerID    string   `mapstructure:"owner_id" validate:"omitempty"`
	Statuses   []string `mapstructure:"statuses" validate:"omitempty,min=1"`
	OrderBy    []string `mapstructure:"order_by" validate:"omitempty,min=1"`
	Size       int      `mapstructure:"size" validate:"omitempty"`
	Offset     int      `mapstructure:"offset" validate:"omitempty"`
}
