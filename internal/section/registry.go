package section

import (
	"fmt"
	"time"
)

// Override replaces selected fields of a section's built-in config.
// Nil fields keep the default.
type Override struct {
	TotalQuestions *int           `mapstructure:"total_questions"`
	FeedbackDelay  *time.Duration `mapstructure:"feedback_delay"`
	Timer          *time.Duration `mapstructure:"timer"`
	TickWarning    *int           `mapstructure:"tick_warning"`
}

// Registry resolves section configs with user overrides applied.
type Registry struct {
	overrides map[Kind]Override
}

// NewRegistry builds a registry from overrides keyed by section ID.
func NewRegistry(overrides map[string]Override) (*Registry, error) {
	reg := &Registry{overrides: make(map[Kind]Override, len(overrides))}
	for id, o := range overrides {
		k, err := Parse(id)
		if err != nil {
			return nil, fmt.Errorf("section override: %w", err)
		}
		reg.overrides[k] = o
	}
	for _, k := range All() {
		if _, err := reg.Config(k); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Config returns the effective config for k.
func (r *Registry) Config(k Kind) (Config, error) {
	c := Default(k)
	if r != nil {
		if o, ok := r.overrides[k]; ok {
			if o.TotalQuestions != nil {
				c.TotalQuestions = *o.TotalQuestions
			}
			if o.FeedbackDelay != nil {
				c.FeedbackDelay = *o.FeedbackDelay
			}
			if o.Timer != nil {
				c.TimerDuration = *o.Timer
			}
			if o.TickWarning != nil {
				c.TickWarning = *o.TickWarning
			}
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
