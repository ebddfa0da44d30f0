package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"customer-service-agent/config"
	"customer-service-agent/model"
)

// Classifier decides which intent a message carries. The cheap pattern
// pass runs first; the external model is consulted only when the pattern
// score falls below minConfidence.
type Classifier struct {
	tables        *config.IntentTables
	llm           Completer
	minConfidence float64
	log           *zap.SugaredLogger
}

func NewClassifier(tables *config.IntentTables, llm Completer, minConfidence float64, logg *zap.SugaredLogger) *Classifier {
	return &Classifier{
		tables:        tables,
		llm:           llm,
		minConfidence: minConfidence,
		log:           logg.With("component", "classifier"),
	}
}

// Classify runs the pattern pass, falls back to the model when below the
// confidence threshold, and clamps the result into [0,1]. It never fails:
// every failure path degrades to (unknown, 0.0).
func (c *Classifier) Classify(ctx context.Context, message string) (model.Intent, float64) {
	intent, confidence := c.ClassifyByPattern(message)

	if confidence < c.minConfidence {
		intent, confidence = c.classifyWithModel(ctx, message)
	}

	return intent, clamp01(confidence)
}

// ClassifyByPattern scores the message against every registered phrase.
// A phrase contained in the lower-cased message scores
// len(phrase)/len(message); the single best score wins, and ties keep the
// first (intent, phrase) pair seen in table order. No match is
// (unknown, 0.0).
func (c *Classifier) ClassifyByPattern(message string) (model.Intent, float64) {
	lower := strings.ToLower(message)
	if len(lower) == 0 {
		return model.IntentUnknown, 0.0
	}

	bestIntent := model.IntentUnknown
	bestConfidence := 0.0
	for _, entry := range c.tables.Patterns {
		for _, phrase := range entry.Phrases {
			if !strings.Contains(lower, phrase) {
				continue
			}
			confidence := float64(len(phrase)) / float64(len(lower))
			if confidence > bestConfidence {
				bestConfidence = confidence
				bestIntent = entry.Intent
			}
		}
	}
	return bestIntent, bestConfidence
}

// classifyWithModel asks the completion service to name the intent. Any
// failure here, including a missing credential, maps to (unknown, 0.0) and
// is never surfaced to the caller.
func (c *Classifier) classifyWithModel(ctx context.Context, message string) (model.Intent, float64) {
	if c.llm == nil || !c.llm.Configured() {
		return model.IntentUnknown, 0.0
	}

	raw, err := c.llm.Complete(ctx, classificationPrompt(message))
	if err != nil {
		c.log.Errorw("model classification failed", "error", err)
		return model.IntentUnknown, 0.0
	}

	intent, confidence, err := parseClassification(raw)
	if err != nil {
		c.log.Errorw("model classification unparseable", "raw", raw, "error", err)
		return model.IntentUnknown, 0.0
	}
	return intent, confidence
}

func classificationPrompt(message string) string {
	return fmt.Sprintf(`Classify the following customer message into one of these intents:
- order_status: Questions about order tracking, delivery status
- product_info: Questions about products, specifications, prices
- return_request: Requests for returns, refunds, exchanges
- faq: General questions, help requests
- store_hours: Questions about store hours, business times
- contact: Requests for contact information
- greeting: Greetings, hello, hi
- goodbye: Farewells, thank you, bye
- unknown: Cannot be classified

Message: %q

Respond with only the intent name and confidence score (0.0-1.0) separated by a comma.`, message)
}

// parseClassification splits "intent_name,confidence" on the first comma.
func parseClassification(raw string) (model.Intent, float64, error) {
	name, confPart, found := strings.Cut(strings.TrimSpace(raw), ",")
	if !found {
		return model.IntentUnknown, 0, fmt.Errorf("no comma in %q", raw)
	}

	intent, err := model.ParseIntent(strings.TrimSpace(name))
	if err != nil {
		return model.IntentUnknown, 0, err
	}

	confidence, err := strconv.ParseFloat(strings.TrimSpace(confPart), 64)
	if err != nil {
		return model.IntentUnknown, 0, fmt.Errorf("bad confidence in %q: %w", raw, err)
	}
	return intent, clamp01(confidence), nil
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
