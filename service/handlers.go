package service

import (
	"context"
	"fmt"
	"strings"

	"customer-service-agent/model"
)

// handlerFunc produces the reply for one intent. Handlers are total over
// their inputs: lookup misses and absent identifiers become specific
// replies, never errors. An error means a collaborator failed and the
// orchestrator should degrade.
type handlerFunc func(ctx context.Context, message, customerID string) (model.HandlerReply, error)

func (a *Agent) buildHandlers() map[model.Intent]handlerFunc {
	return map[model.Intent]handlerFunc{
		model.IntentOrderStatus:   a.handleOrderStatus,
		model.IntentProductInfo:   a.handleProductInfo,
		model.IntentReturnRequest: a.handleReturnRequest,
		model.IntentFAQ:           a.handleFAQ,
		model.IntentStoreHours:    a.handleStoreHours,
		model.IntentContact:       a.handleContact,
		model.IntentGreeting:      a.handleGreeting,
		model.IntentGoodbye:       a.handleGoodbye,
		model.IntentUnknown:       a.handleUnknown,
	}
}

func (a *Agent) handleOrderStatus(ctx context.Context, message, customerID string) (model.HandlerReply, error) {
	if orderID, ok := ExtractOrderID(message); ok {
		order, err := a.store.GetOrderByID(ctx, orderID)
		if err != nil {
			return model.HandlerReply{}, err
		}
		if order == nil {
			return model.HandlerReply{
				Message:          fmt.Sprintf("I couldn't find order %s. Please check the order ID and try again.", orderID),
				SuggestedActions: []string{"Check Order ID", "Contact Support"},
			}, nil
		}

		statusText := fmt.Sprintf("Your order %s is currently %s.", orderID, order.OrderStatus)
		if order.ReturnStatus != "" {
			statusText += fmt.Sprintf(" Return status: %s.", order.ReturnStatus)
		}
		return model.HandlerReply{
			Message:          statusText,
			SuggestedActions: []string{"Track Another Order", "View Order Details", "Contact Support"},
		}, nil
	}

	if customerID != "" {
		orders, err := a.store.GetOrdersByCustomer(ctx, customerID)
		if err != nil {
			return model.HandlerReply{}, err
		}
		if len(orders) == 0 {
			return model.HandlerReply{
				Message:          "I couldn't find any orders for your account. Please provide an order ID or contact support.",
				SuggestedActions: []string{"Provide Order ID", "Contact Support"},
			}, nil
		}

		// First three rows in store order; no recency sort is applied.
		recent := orders
		if len(recent) > 3 {
			recent = recent[:3]
		}
		lines := make([]string, 0, len(recent))
		for _, o := range recent {
			lines = append(lines, fmt.Sprintf("• %s - %s (%s)", o.OrderID, o.ProductName, o.OrderStatus))
		}
		return model.HandlerReply{
			Message: fmt.Sprintf("Here are your recent orders:\n%s\n\nPlease provide an order ID for detailed status.",
				strings.Join(lines, "\n")),
			SuggestedActions: []string{"Provide Order ID", "View All Orders"},
		}, nil
	}

	return model.HandlerReply{
		Message:          "To check your order status, please provide your order ID or customer ID.",
		SuggestedActions: []string{"Provide Order ID", "Provide Customer ID", "Contact Support"},
	}, nil
}

func (a *Agent) handleProductInfo(ctx context.Context, message, _ string) (model.HandlerReply, error) {
	name, ok := ExtractProductName(message, a.tables.ProductKeywords)
	if !ok {
		return model.HandlerReply{
			Message:          "I'd be happy to help you find product information. What product are you looking for?",
			SuggestedActions: []string{"Search Products", "Browse Categories", "View Featured Products"},
		}, nil
	}

	products, err := a.store.SearchProducts(ctx, name, 5)
	if err != nil {
		return model.HandlerReply{}, err
	}
	if len(products) == 0 {
		return model.HandlerReply{
			Message:          fmt.Sprintf("I couldn't find any products matching '%s'. Please try a different search term.", name),
			SuggestedActions: []string{"Try Different Search", "Browse Categories", "Contact Support"},
		}, nil
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("• %s - $%.2f (%s)", p.Name, p.Price, p.Category))
	}
	return model.HandlerReply{
		Message: fmt.Sprintf("Here are products matching '%s':\n%s", name, strings.Join(lines, "\n")),
		SuggestedActions: []string{"View Product Details", "Search Another Product", "Browse Categories"},
	}, nil
}

func (a *Agent) handleReturnRequest(ctx context.Context, message, _ string) (model.HandlerReply, error) {
	orderID, ok := ExtractOrderID(message)
	if !ok {
		return model.HandlerReply{
			Message:          "To process a return, please provide your order ID.",
			SuggestedActions: []string{"Provide Order ID", "View Return Policy", "Contact Support"},
		}, nil
	}

	order, err := a.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return model.HandlerReply{}, err
	}
	if order == nil {
		return model.HandlerReply{
			Message:          fmt.Sprintf("I couldn't find order %s. Please check the order ID and try again.", orderID),
			SuggestedActions: []string{"Check Order ID", "Contact Support"},
		}, nil
	}

	if order.OrderStatus == string(model.OrderDelivered) {
		return model.HandlerReply{
			Message:          fmt.Sprintf("Your order %s is eligible for return. Please provide a reason for the return.", orderID),
			SuggestedActions: []string{"Provide Return Reason", "View Return Policy", "Contact Support"},
		}, nil
	}
	return model.HandlerReply{
		Message:          fmt.Sprintf("Your order %s is currently %s. Returns are only available for delivered orders.", orderID, order.OrderStatus),
		SuggestedActions: []string{"Check Order Status", "Contact Support"},
	}, nil
}

func (a *Agent) handleFAQ(_ context.Context, message, _ string) (model.HandlerReply, error) {
	lower := strings.ToLower(message)
	for _, entry := range a.tables.FAQ {
		if strings.Contains(lower, entry.Keyword) {
			return model.HandlerReply{
				Message:          entry.Answer,
				SuggestedActions: []string{"Ask Another Question", "Contact Support", "View Full FAQ"},
			}, nil
		}
	}
	return model.HandlerReply{
		Message:          "I'd be happy to help! What would you like to know? You can ask about our return policy, shipping, payment methods, or warranty information.",
		SuggestedActions: []string{"Return Policy", "Shipping Info", "Payment Methods", "Warranty Info", "Contact Support"},
	}, nil
}

func (a *Agent) handleStoreHours(context.Context, string, string) (model.HandlerReply, error) {
	return model.HandlerReply{
		Message:          "Our store hours are:\n• Monday to Friday: 9 AM - 6 PM\n• Saturday: 10 AM - 4 PM\n• Sunday: Closed\n\nWe're here to help during business hours!",
		SuggestedActions: []string{"Contact Us", "View Products", "Check Order Status"},
	}, nil
}

func (a *Agent) handleContact(context.Context, string, string) (model.HandlerReply, error) {
	return model.HandlerReply{
		Message:          "You can contact us through:\n• Email: support@nvidia.com\n• Phone: 1-800-NVIDIA-1\n• Live Chat: Available during business hours\n• Address: 2788 San Tomas Expressway, Santa Clara, CA 95051",
		SuggestedActions: []string{"Email Support", "Call Us", "Live Chat", "Visit Store"},
	}, nil
}

func (a *Agent) handleGreeting(context.Context, string, string) (model.HandlerReply, error) {
	return model.HandlerReply{
		Message:          "Hello! I'm your NVIDIA customer service assistant. How can I help you today?",
		SuggestedActions: []string{"Check Order Status", "Product Information", "Return Request", "General Help"},
	}, nil
}

func (a *Agent) handleGoodbye(context.Context, string, string) (model.HandlerReply, error) {
	return model.HandlerReply{
		Message:          "Thank you for contacting NVIDIA customer service! Have a great day!",
		SuggestedActions: []string{"Rate Service", "Contact Again", "Visit Website"},
	}, nil
}

func (a *Agent) handleUnknown(context.Context, string, string) (model.HandlerReply, error) {
	return model.HandlerReply{
		Message:          "I'm not sure I understand your request. Could you please rephrase your question or choose from the options below?",
		SuggestedActions: []string{"Check Order Status", "Product Information", "Return Request", "Contact Support", "General Help"},
	}, nil
}
