package model

import "fmt"

// Intent is the discrete category describing what the customer wants.
type Intent string

const (
	IntentOrderStatus   Intent = "order_status"
	IntentProductInfo   Intent = "product_info"
	IntentReturnRequest Intent = "return_request"
	IntentFAQ           Intent = "faq"
	IntentStoreHours    Intent = "store_hours"
	IntentContact       Intent = "contact"
	IntentGreeting      Intent = "greeting"
	IntentGoodbye       Intent = "goodbye"
	IntentUnknown       Intent = "unknown"
)

// AllIntents lists every intent in classification order. The pattern
// matcher iterates this slice, so a confidence tie keeps the earlier entry.
var AllIntents = []Intent{
	IntentOrderStatus,
	IntentProductInfo,
	IntentReturnRequest,
	IntentFAQ,
	IntentStoreHours,
	IntentContact,
	IntentGreeting,
	IntentGoodbye,
	IntentUnknown,
}

// ParseIntent maps an intent name to its Intent value.
func ParseIntent(name string) (Intent, error) {
	for _, it := range AllIntents {
		if string(it) == name {
			return it, nil
		}
	}
	return IntentUnknown, fmt.Errorf("unknown intent: %q", name)
}

type OrderStatusType string

const (
	OrderPending         OrderStatusType = "Pending"
	OrderProcessing      OrderStatusType = "Processing"
	OrderShipped         OrderStatusType = "Shipped"
	OrderInTransit       OrderStatusType = "In Transit"
	OrderDelivered       OrderStatusType = "Delivered"
	OrderCancelled       OrderStatusType = "Cancelled"
	OrderReturned        OrderStatusType = "Returned"
	OrderReturnRequested OrderStatusType = "Return Requested"
)

type ReturnStatusType string

const (
	ReturnRequested       ReturnStatusType = "Requested"
	ReturnPendingApproval ReturnStatusType = "Pending Approval"
	ReturnApproved        ReturnStatusType = "Approved"
	ReturnRejected        ReturnStatusType = "Rejected"
)

type ChatRequest struct {
	Message    string `json:"message" binding:"required"`
	CustomerID string `json:"customer_id"`
	SessionID  string `json:"session_id"`
}

type ChatResponse struct {
	Response         string   `json:"response"`
	Intent           Intent   `json:"intent"`
	Confidence       float64  `json:"confidence"`
	SuggestedActions []string `json:"suggested_actions"`
	SessionID        string   `json:"session_id,omitempty"`
}

// HandlerReply is what a single intent handler produces.
type HandlerReply struct {
	Message          string
	SuggestedActions []string
}

// AgentResult is the orchestrator's complete answer for one message.
// Confidence is always within [0,1].
type AgentResult struct {
	Message          string
	Intent           Intent
	Confidence       float64
	SuggestedActions []string
}

type ReturnRequestBody struct {
	OrderID string `json:"order_id" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

// ReturnOutcome is the decision for one return request. ReturnID is empty
// when the request was rejected.
type ReturnOutcome struct {
	ReturnID        string           `json:"return_id"`
	Status          ReturnStatusType `json:"status"`
	Message         string           `json:"message"`
	EstimatedRefund *float64         `json:"estimated_refund,omitempty"`
}

// OrderView is the API projection of an order row.
type OrderView struct {
	OrderID      string  `json:"order_id"`
	CustomerID   string  `json:"customer_id"`
	ProductName  string  `json:"product_name"`
	OrderDate    string  `json:"order_date"`
	Quantity     int     `json:"quantity"`
	OrderAmount  float64 `json:"order_amount"`
	Status       string  `json:"status"`
	ReturnStatus string  `json:"return_status,omitempty"`
	ReturnReason string  `json:"return_reason,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

type ProductView struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Availability bool    `json:"availability"`
}

// Analytics aggregates the conversation log.
type Analytics struct {
	TotalRequests      int64            `json:"total_requests"`
	AverageConfidence  float64          `json:"average_confidence"`
	IntentDistribution map[string]int64 `json:"intent_distribution"`
}
