package middleware

import (
	"context"
	"regexp"
	"time"

	"github.com/roost-chat/roost/pkg/ports"
)

type maskingMiddleware struct {
	next     ports.ComponentStore
	patterns []*regexp.Regexp
}

// NewMasking creates a middleware that blanks pre-filled values of
// fields whose custom ID matches one of the patterns, so sensitive
// defaults (emails, tokens) never reach the backend. Masking is one
// way: loaded records keep the mask.
func NewMasking(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.ComponentStore) ports.ComponentStore {
		return &maskingMiddleware{next: next, patterns: patterns}
	}
}

func (m *maskingMiddleware) Save(ctx context.Context, customID string, record ports.PendingModal, ttl time.Duration) error {
	masked, err := mapFields(record, func(fieldID, value string) (string, error) {
		for _, p := range m.patterns {
			if p.MatchString(fieldID) {
				return "***", nil
			}
		}
		return value, nil
	})
	if err != nil {
		return err
	}
	return m.next.Save(ctx, customID, masked, ttl)
}

func (m *maskingMiddleware) Load(ctx context.Context, customID string) (ports.PendingModal, error) {
	return m.next.Load(ctx, customID)
}

func (m *maskingMiddleware) Delete(ctx context.Context, customID string) error {
	return m.next.Delete(ctx, customID)
}

func (m *maskingMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
