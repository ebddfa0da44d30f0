package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"customer-service-agent/dao"
	"customer-service-agent/model"
	"customer-service-agent/service"
)

// ChatHandler is the main conversational endpoint. A request without a
// session id gets one minted so follow-up messages can share history.
func ChatHandler(agent *service.Agent) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}

		sessionID := req.SessionID
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		result := agent.ProcessMessage(c.Request.Context(), req.Message, req.CustomerID, sessionID)

		c.JSON(http.StatusOK, model.ChatResponse{
			Response:         result.Message,
			Intent:           result.Intent,
			Confidence:       result.Confidence,
			SuggestedActions: result.SuggestedActions,
			SessionID:        sessionID,
		})
	}
}

func OrderStatusHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")

		view, err := orders.GetOrderStatus(c.Request.Context(), orderID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if view == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

func ProductSearchHandler(products *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		category := c.Query("category")
		limit := 10
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		views, err := products.Search(c.Request.Context(), query, category, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": views,
			"total":    len(views),
			"query":    query,
			"category": category,
		})
	}
}

func ReturnRequestHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.ReturnRequestBody
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}

		outcome := orders.ProcessReturn(c.Request.Context(), req.OrderID, req.Reason)
		c.JSON(http.StatusOK, outcome)
	}
}

func FAQListHandler(store *dao.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		faqs, err := store.ListFAQs(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"faqs": faqs, "total": len(faqs)})
	}
}

func AnalyticsHandler(store *dao.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		analytics, err := store.Analytics(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, analytics)
	}
}

// HistoryHandler serves the recent turns cached for a session.
func HistoryHandler(cache *dao.SessionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")

		turns, err := cache.Recent(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "turns": turns, "total": len(turns)})
	}
}
