package num2text

import (
	"fmt"
	"sort"
)

// Store exposes read only access to lexicons.
type Store interface {
	// Lexicon returns the lexicon registered for locale, without parents.
	Lexicon(locale string) (*Lexicon, bool)
	// Resolve returns the lexicon for locale merged over its parents.
	Resolve(locale string) (*Lexicon, error)
	// Locales returns the locales known to the store.
	Locales() []string
}

// StaticStore is an in memory store, read only after construction.
type StaticStore struct {
	lexicons Lexicons
	locales  []string
}

var _ Store = &StaticStore{}

// NewStaticStore builds an immutable snapshot from data.
func NewStaticStore(data Lexicons) *StaticStore {
	lexicons := make(Lexicons, len(data))
	locales := make([]string, 0, len(data))

	for locale, lex := range data {
		if lex == nil {
			continue
		}
		clone := lex.Clone()
		if clone.Code == "" {
			clone.Code = locale
		}
		lexicons[clone.Code] = clone
		locales = append(locales, clone.Code)
	}

	sort.Strings(locales)

	return &StaticStore{
		lexicons: lexicons,
		locales:  locales,
	}
}

// NewStaticStoreFromLoader hydrates a StaticStore using loader.
func NewStaticStoreFromLoader(loader Loader) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil), nil
	}

	lexicons, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewStaticStore(lexicons), nil
}

// Lexicon returns a copy of the lexicon registered for locale.
func (s *StaticStore) Lexicon(locale string) (*Lexicon, bool) {
	if s == nil {
		return nil, false
	}
	lex, ok := s.lexicons[cleanLocale(locale)]
	if !ok {
		return nil, false
	}
	return lex.Clone(), true
}

// Resolve merges the parent chain declared through Parent, root first.
func (s *StaticStore) Resolve(locale string) (*Lexicon, error) {
	locale = cleanLocale(locale)

	var chain []*Lexicon
	seen := make(map[string]struct{}, 4)
	for code := locale; code != ""; {
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("num2text: lexicon parent cycle at %q", code)
		}
		seen[code] = struct{}{}

		lex, ok := s.lexicons[code]
		if !ok {
			if code == locale {
				return nil, fmt.Errorf("%w: no lexicon for %q", ErrUnknownLocale, locale)
			}
			return nil, fmt.Errorf("%w: %q declares missing parent %q", ErrUnknownLocale, locale, code)
		}
		chain = append(chain, lex)
		code = lex.Parent
	}

	out := &Lexicon{Code: locale}
	for i := len(chain) - 1; i >= 0; i-- {
		out.merge(chain[i])
	}
	out.Code = locale
	out.Parent = ""
	if len(chain) > 1 {
		out.Parent = chain[1].Code
	}
	return out, nil
}

// Locales returns all locale codes.
func (s *StaticStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}
