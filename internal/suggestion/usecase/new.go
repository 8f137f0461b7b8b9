package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-focus-suggestion/internal/suggestion/repository"
	"smart-focus-suggestion/pkg/llmprovider"
	pkgLog "smart-focus-suggestion/pkg/log"
)

// Config holds the tunable parameters of the suggestion engine.
type Config struct {
	Timezone        string
	Weights         Weights
	LookbackWindow  time.Duration // recency penalty exclusion window
	RetentionWindow time.Duration // history prune horizon
	VarietyDepth    int           // how many most-recent suggestions the variety rule avoids
	OracleTopN      int           // candidates serialized into the oracle prompt
	OracleTimeout   time.Duration // per-request oracle budget
	CacheTTL        time.Duration // oracle response cache window
	CacheSize       int           // oracle response cache capacity
}

func (c Config) withDefaults() Config {
	if c.Weights == (Weights{}) {
		c.Weights = DefaultWeights()
	}
	if c.LookbackWindow <= 0 {
		c.LookbackWindow = 2 * time.Hour
	}
	if c.RetentionWindow <= 0 {
		c.RetentionWindow = 24 * time.Hour
	}
	if c.VarietyDepth <= 0 {
		c.VarietyDepth = 3
	}
	if c.OracleTopN <= 0 {
		c.OracleTopN = 10
	}
	if c.OracleTimeout <= 0 {
		c.OracleTimeout = 5 * time.Second
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 30 * time.Minute
	}
	if c.CacheSize <= 0 {
		c.CacheSize = 512
	}
	return c
}

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	llm    *llmprovider.Manager // nil → deterministic pipeline only
	picker Picker
	cfg    Config

	oracleCache *expirable.LRU[string, oracleAnswer]
	loc         *time.Location
	now         func() time.Time
}

// New creates a new suggestion UseCase instance. llm may be nil when no oracle
// provider is configured; picker may be nil to get the default random picker.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	llm *llmprovider.Manager,
	picker Picker,
	cfg Config,
) *implUseCase {
	cfg = cfg.withDefaults()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	if picker == nil {
		picker = NewRandomPicker(time.Now().UnixNano())
	}

	return &implUseCase{
		l:           l,
		repo:        repo,
		llm:         llm,
		picker:      picker,
		cfg:         cfg,
		oracleCache: expirable.NewLRU[string, oracleAnswer](cfg.CacheSize, nil, cfg.CacheTTL),
		loc:         loc,
		now:         time.Now,
	}
}
