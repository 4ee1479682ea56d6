// Package intent classifies free-text utterances into typed commands.
//
// Classification is an ordered cascade of (regex, extractor) rules: the
// first rule whose regex matches the normalized utterance wins and no
// later rule is consulted. Order is load-bearing — specific grammars
// (expense logging, theme switching, peripheral actions, numeric
// price/stock assignment) sit above the broad "add X" catch-alls that
// would otherwise swallow them.
package intent

import (
	"strings"

	"tilltalk/internal/core/command"
	"tilltalk/internal/core/normalize"
)

// Resolver maps a learned alias to its canonical term.
// Resolve returns the lowercased input unchanged on a miss.
type Resolver interface {
	Resolve(word string) string
}

// Engine turns utterances into commands. Safe for concurrent use.
type Engine struct {
	norm     *normalize.Normalizer
	aliases  Resolver
	patterns []pattern
}

// New builds an Engine. aliases may be nil, in which case only the
// built-in synonym table applies.
func New(aliases Resolver) *Engine {
	e := &Engine{
		norm:    normalize.New(),
		aliases: aliases,
	}
	e.patterns = buildPatterns(e)
	return e
}

// Parse classifies text. It returns nil when no rule matches; nil is a
// valid "no intent" outcome, not an error.
func (e *Engine) Parse(text string) command.Command {
	clean := e.norm.Normalize(text)
	if clean == "" {
		return nil
	}
	for _, p := range e.patterns {
		if m := p.re.FindStringSubmatch(clean); m != nil {
			return p.extract(m, clean)
		}
	}
	return nil
}

// resolveRef rewrites a product or customer reference through the
// learned vocabulary, then the built-in synonym table. Single hop, no
// chaining; unmapped terms pass through lowercased.
func (e *Engine) resolveRef(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if e.aliases != nil {
		if r := e.aliases.Resolve(s); r != s {
			return r
		}
	}
	if t, ok := builtinSynonyms[s]; ok {
		return t
	}
	return s
}

// builtinSynonyms maps common Manglish terms to catalog vocabulary.
// Learned aliases take precedence over this table.
var builtinSynonyms = map[string]string{
	"paal":      "milk",
	"panjasara": "sugar",
	"ari":       "rice",
	"vellam":    "water",
	"kadi":      "snacks",
	"mittayi":   "candy",
	"chaya":     "tea",
	"kappi":     "coffee",
}
