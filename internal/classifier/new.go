package classifier

import (
	"meckano-helper/config"
	pkgLog "meckano-helper/pkg/log"
)

// Classifier decides whether a calendar row is a working day or must be
// skipped, and why.
type Classifier struct {
	rules config.SkipRulesConfig
	l     pkgLog.Logger

	weekend map[string]struct{}
}

// New creates a Classifier from the configured skip rules.
func New(rules config.SkipRulesConfig, l pkgLog.Logger) *Classifier {
	weekend := make(map[string]struct{}, len(rules.WeekendLetters))
	for _, letter := range rules.WeekendLetters {
		weekend[letter] = struct{}{}
	}
	return &Classifier{
		rules:   rules,
		l:       l,
		weekend: weekend,
	}
}
