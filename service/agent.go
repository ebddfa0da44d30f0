package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"customer-service-agent/config"
	"customer-service-agent/model"
)

// Agent is the conversation orchestrator. It classifies a message,
// dispatches to the handler registered for the intent, and records the
// turn when a session id is present. ProcessMessage is total: it always
// returns a well-formed result and never panics through to the caller.
type Agent struct {
	classifier *Classifier
	store      DataStore
	convLog    ConversationLog
	cache      TurnCache
	tables     *config.IntentTables
	handlers   map[model.Intent]handlerFunc
	log        *zap.SugaredLogger
}

// NewAgent wires the agent. convLog and cache may be nil; turns are then
// simply not recorded.
func NewAgent(classifier *Classifier, store DataStore, convLog ConversationLog, cache TurnCache, tables *config.IntentTables, logg *zap.SugaredLogger) *Agent {
	a := &Agent{
		classifier: classifier,
		store:      store,
		convLog:    convLog,
		cache:      cache,
		tables:     tables,
		log:        logg.With("component", "agent"),
	}
	a.handlers = a.buildHandlers()
	return a
}

func degradedResult() *model.AgentResult {
	return &model.AgentResult{
		Message:          "I apologize, but I'm experiencing technical difficulties. Please try again later or contact our support team.",
		Intent:           model.IntentUnknown,
		Confidence:       0.0,
		SuggestedActions: []string{"Contact Support", "Try Again"},
	}
}

// ProcessMessage runs the full pipeline for one customer message.
func (a *Agent) ProcessMessage(ctx context.Context, message, customerID, sessionID string) (result *model.AgentResult) {
	// Single top-level fail-safe: whatever goes wrong below, the caller
	// gets the canned degraded reply, indistinguishable from a normal
	// "I don't understand".
	defer func() {
		if r := recover(); r != nil {
			a.log.Errorw("panic while processing message", "panic", r)
			result = degradedResult()
		}
	}()

	intent, confidence := a.classifier.Classify(ctx, message)

	handler, ok := a.handlers[intent]
	if !ok {
		handler = a.handleUnknown
	}

	reply, err := handler(ctx, message, customerID)
	if err != nil {
		a.log.Errorw("handler failed", "intent", intent, "error", err)
		return degradedResult()
	}

	if sessionID != "" {
		a.recordTurn(ctx, sessionID, customerID, message, reply.Message, intent, confidence)
	}

	return &model.AgentResult{
		Message:          reply.Message,
		Intent:           intent,
		Confidence:       confidence,
		SuggestedActions: reply.SuggestedActions,
	}
}

// recordTurn appends the exchange to the conversation log and the session
// cache. Both writes are best-effort; a failure is logged and swallowed so
// it can never affect the reply.
func (a *Agent) recordTurn(ctx context.Context, sessionID, customerID, message, response string, intent model.Intent, confidence float64) {
	turn := &model.ConversationTurn{
		SessionID:  sessionID,
		CustomerID: customerID,
		Message:    message,
		Response:   response,
		Intent:     string(intent),
		Confidence: confidence,
		Timestamp:  time.Now().UTC(),
	}

	if a.convLog != nil {
		if err := a.convLog.AppendConversation(ctx, turn); err != nil {
			a.log.Errorw("conversation log append failed", "session_id", sessionID, "error", err)
		}
	}
	if a.cache != nil {
		if err := a.cache.Append(ctx, turn); err != nil {
			a.log.Errorw("session cache append failed", "session_id", sessionID, "error", err)
		}
	}
}
