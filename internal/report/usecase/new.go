package usecase

import (
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"meckano-helper/config"
	"meckano-helper/internal/classifier"
	"meckano-helper/internal/model"
	"meckano-helper/internal/report/repository"
	pkgLog "meckano-helper/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.PageRepository
	rules *classifier.Classifier
	clock clockwork.Clock
	page  config.PageConfig

	// writeLimiter paces field writes so the host's event handlers are not
	// overwhelmed. WriteDelay <= 0 disables pacing.
	writeLimiter *rate.Limiter

	// runs retains recent fill reports for later lookup by the caller.
	runs *expirable.LRU[string, model.RunReport]

	// inFlight is the single-flight guard: the host dialog is a singleton,
	// so overlapping fill requests are rejected rather than queued.
	inFlight atomic.Bool
}

// New creates a new report UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.PageRepository,
	rules *classifier.Classifier,
	clock clockwork.Clock,
	page config.PageConfig,
) *implUseCase {
	return &implUseCase{
		l:            l,
		repo:         repo,
		rules:        rules,
		clock:        clock,
		page:         page,
		writeLimiter: rate.NewLimiter(rate.Every(page.WriteDelay), 1),
		runs:         expirable.NewLRU[string, model.RunReport](RunHistorySize, nil, RunHistoryTTL),
	}
}
