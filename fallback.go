package num2text

import "sync"

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver holds explicit fallback chains per locale.
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

var _ FallbackResolver = (*StaticFallbackResolver)(nil)

// NewStaticFallbackResolver returns an empty resolver.
func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the fallback chain of locale.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	locale = canonicalLocale(locale)
	if locale == "" {
		return
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		fallback = canonicalLocale(fallback)
		if fallback == "" || fallback == locale {
			continue
		}
		chain = append(chain, fallback)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[locale] = chain
}

// Resolve returns a copy of the chain for locale, or nil.
func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain, ok := s.chains[canonicalLocale(locale)]
	if !ok {
		return nil
	}
	return append([]string(nil), chain...)
}
