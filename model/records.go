package model

import "time"

// Database rows. Column names follow the CSV headers they are seeded from.

type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"index"`
	Category    string `gorm:"index"`
	Subcategory string
	Description string
	Price       float64
	CreatedAt   time.Time
}

type Order struct {
	ID                 uint   `gorm:"primaryKey"`
	OrderID            string `gorm:"uniqueIndex"`
	CustomerID         string `gorm:"index"`
	ProductName        string
	ProductDescription string
	OrderDate          *time.Time
	Quantity           int
	OrderAmount        float64
	OrderStatus        string
	ReturnStatus       string
	ReturnStartDate    *time.Time
	ReturnReceivedDate *time.Time
	ReturnCompletedDate *time.Time
	ReturnReason       string
	Notes              string
	CreatedAt          time.Time
}

type FAQ struct {
	ID       uint   `gorm:"primaryKey"`
	Question string `gorm:"index"`
	Answer   string
	Category string `gorm:"index"`
	// Comma-separated tags.
	Tags      string
	CreatedAt time.Time
}

// ConversationTurn is one processed message. Append-only; the agent never
// updates or deletes rows.
type ConversationTurn struct {
	ID         uint   `gorm:"primaryKey"`
	SessionID  string `gorm:"index" json:"session_id"`
	CustomerID string `gorm:"index" json:"customer_id,omitempty"`
	Message    string `json:"message"`
	Response   string `json:"response"`
	Intent     string `json:"intent"`
	Confidence float64 `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

func (ConversationTurn) TableName() string { return "conversations" }
