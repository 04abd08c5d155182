// Package catalog holds the static, ordered list of message intents a visitor can send.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"askfun/internal/config"
)

var (
	ErrEmptyKey     = errors.New("send option key is required")
	ErrDuplicateKey = errors.New("duplicate send option key")
	ErrUnknownIcon  = errors.New("unknown send option icon")
)

// MessageOption describes one sendable message intent.
type MessageOption struct {
	Key    string `json:"key"` // lowercase, unique within a catalog
	Label  string `json:"label"`
	Sample string `json:"sample"`
	Icon   string `json:"icon"`
}

// Catalog is an immutable, ordered set of message options.
type Catalog struct {
	options []MessageOption
	index   map[string]int
}

// defaultOptions is used when config.yaml does not define send_options.
var defaultOptions = []MessageOption{
	{Key: "general", Label: "General", Sample: "Say hi, ask a question, or share a thought.", Icon: "chat"},
	{Key: "complaint", Label: "Complaint", Sample: "Tell us what went wrong.", Icon: "warning"},
	{Key: "suggestion", Label: "Suggestion", Sample: "Share an idea to make things better.", Icon: "lightbulb"},
	{Key: "appreciation", Label: "Appreciation", Sample: "Thank someone who made your day.", Icon: "heart"},
}

// New builds a catalog, lowercasing keys and rejecting empty or duplicate ones.
// An empty icon renders the envelope; any other name must be a known icon.
func New(options []MessageOption) (*Catalog, error) {
	c := &Catalog{
		options: make([]MessageOption, 0, len(options)),
		index:   make(map[string]int, len(options)),
	}
	for _, opt := range options {
		opt.Key = strings.ToLower(strings.TrimSpace(opt.Key))
		if opt.Key == "" {
			return nil, ErrEmptyKey
		}
		if _, exists := c.index[opt.Key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, opt.Key)
		}
		if opt.Icon != "" && !HasIcon(opt.Icon) {
			return nil, fmt.Errorf("%w: %q for %q", ErrUnknownIcon, opt.Icon, opt.Key)
		}
		if opt.Label == "" {
			opt.Label = opt.Key
		}
		c.index[opt.Key] = len(c.options)
		c.options = append(c.options, opt)
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultOptions)
	if err != nil {
		panic(err)
	}
	return c
}

// FromConfig builds the catalog from YAML send_options, falling back to Default.
func FromConfig(yc *config.YAMLConfig) (*Catalog, error) {
	entries := yc.GetSendOptions()
	if len(entries) == 0 {
		return Default(), nil
	}

	options := make([]MessageOption, 0, len(entries))
	for _, e := range entries {
		options = append(options, MessageOption{
			Key:    e.Key,
			Label:  e.Label,
			Sample: e.Sample,
			Icon:   e.Icon,
		})
	}
	return New(options)
}

// Options returns the options in catalog order.
func (c *Catalog) Options() []MessageOption {
	out := make([]MessageOption, len(c.options))
	copy(out, c.options)
	return out
}

// Len returns the number of options.
func (c *Catalog) Len() int {
	return len(c.options)
}

// Lookup finds an option by key, ignoring case. Surrounding whitespace is not trimmed.
func (c *Catalog) Lookup(key string) (MessageOption, bool) {
	i, ok := c.index[strings.ToLower(key)]
	if !ok {
		return MessageOption{}, false
	}
	return c.options[i], true
}
