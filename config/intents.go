package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"customer-service-agent/model"
)

// PatternEntry binds one intent to its keyword phrases.
type PatternEntry struct {
	Intent  model.Intent `yaml:"intent"`
	Phrases []string     `yaml:"phrases"`
}

// FAQEntry is one keyword -> canned answer pair. The FAQ handler scans
// entries in order and the first keyword contained in the message wins.
type FAQEntry struct {
	Keyword string `yaml:"keyword"`
	Answer  string `yaml:"answer"`
}

// IntentTables is the static classification data loaded once at startup
// and shared read-only across requests. Slices, not maps: iteration order
// is the documented tie-break everywhere these tables are scanned.
type IntentTables struct {
	Patterns        []PatternEntry `yaml:"patterns"`
	ProductKeywords []string       `yaml:"product_keywords"`
	FAQ             []FAQEntry     `yaml:"faq"`
}

// DefaultTables returns the built-in classification tables.
func DefaultTables() *IntentTables {
	return &IntentTables{
		Patterns: []PatternEntry{
			{Intent: model.IntentOrderStatus, Phrases: []string{
				"order status", "track order", "where is my order",
				"order tracking", "delivery status", "shipping status",
			}},
			{Intent: model.IntentProductInfo, Phrases: []string{
				"product information", "tell me about", "what is",
				"product details", "specifications", "price",
			}},
			{Intent: model.IntentReturnRequest, Phrases: []string{
				"return", "refund", "exchange", "send back",
				"return policy", "return item",
			}},
			{Intent: model.IntentFAQ, Phrases: []string{
				"help", "question", "how to", "what if",
				"can you help", "support",
			}},
			{Intent: model.IntentStoreHours, Phrases: []string{
				"store hours", "opening hours", "when are you open",
				"business hours", "store time",
			}},
			{Intent: model.IntentContact, Phrases: []string{
				"contact", "phone number", "email", "address",
				"customer service", "support",
			}},
			{Intent: model.IntentGreeting, Phrases: []string{
				"hello", "hi", "hey", "good morning", "good afternoon",
				"good evening", "greetings",
			}},
			{Intent: model.IntentGoodbye, Phrases: []string{
				"bye", "goodbye", "see you", "thanks", "thank you",
				"farewell", "have a good day",
			}},
		},
		ProductKeywords: []string{
			"rtx", "geforce", "shield", "jetson", "graphics card", "gpu",
		},
		FAQ: []FAQEntry{
			{Keyword: "return policy", Answer: "We accept returns within 30 days of purchase. Items must be in original condition with tags attached."},
			{Keyword: "shipping", Answer: "We offer free shipping on orders over $50. Standard delivery takes 3-5 business days."},
			{Keyword: "payment", Answer: "We accept all major credit cards, PayPal, and bank transfers."},
			{Keyword: "warranty", Answer: "All products come with a 1-year manufacturer warranty."},
			{Keyword: "contact", Answer: "You can reach us at support@nvidia.com or call 1-800-NVIDIA-1."},
		},
	}
}

// LoadTables reads the classification tables from a yaml file. A missing
// file yields the built-in defaults. Intent names are validated so a typo
// in the file fails at startup, not at classification time.
func LoadTables(path string) (*IntentTables, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultTables(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read intent tables %s: %w", path, err)
	}

	var t IntentTables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse intent tables %s: %w", path, err)
	}
	for _, p := range t.Patterns {
		if _, err := model.ParseIntent(string(p.Intent)); err != nil {
			return nil, fmt.Errorf("intent tables %s: %w", path, err)
		}
	}
	if len(t.Patterns) == 0 {
		return nil, fmt.Errorf("intent tables %s: no patterns", path)
	}
	d := DefaultTables()
	if len(t.ProductKeywords) == 0 {
		t.ProductKeywords = d.ProductKeywords
	}
	if len(t.FAQ) == 0 {
		t.FAQ = d.FAQ
	}
	return &t, nil
}
