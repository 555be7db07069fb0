package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

// Input carries everything a renderer may look at.
type Input struct {
	Chart   domain.BirthChart
	Now     time.Time
	Premium bool
}

// Renderer turns a birth chart into the calculated sections of one
// tradition's report.
type Renderer interface {
	Render(ctx context.Context, in Input) []domain.ReportSection
}

// Registry manages the renderer for each tradition
type Registry interface {
	// Register adds the renderer for a tradition
	Register(tradition domain.Tradition, renderer Renderer) error
	// Get returns the renderer registered for a tradition
	Get(tradition domain.Tradition) (Renderer, error)
	// ListTraditions returns the registered traditions in sorted order
	ListTraditions() []domain.Tradition
}

type registry struct {
	mu        sync.RWMutex
	renderers map[domain.Tradition]Renderer
}

// NewRegistry creates an empty renderer registry
func NewRegistry() Registry {
	return &registry{
		renderers: make(map[domain.Tradition]Renderer),
	}
}

// NewDefaultRegistry registers the western, chinese, hellenistic and vedic
// renderers.
func NewDefaultRegistry(opts Options) Registry {
	r := NewRegistry()
	_ = r.Register(domain.TraditionWestern, NewWesternRenderer())
	_ = r.Register(domain.TraditionChinese, NewChineseRenderer(opts.Gender))
	_ = r.Register(domain.TraditionHellenistic, NewHellenisticRenderer())
	_ = r.Register(domain.TraditionVedic, NewVedicRenderer(opts.Seed))
	return r
}

func (r *registry) Register(tradition domain.Tradition, renderer Renderer) error {
	if tradition == "" {
		return fmt.Errorf("tradition cannot be empty")
	}
	if renderer == nil {
		return fmt.Errorf("renderer cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[tradition]; exists {
		return fmt.Errorf("tradition %q is already registered", tradition)
	}

	r.renderers[tradition] = renderer
	return nil
}

func (r *registry) Get(tradition domain.Tradition) (Renderer, error) {
	r.mu.RLock()
	renderer, exists := r.renderers[tradition]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("tradition %q is not registered", tradition)
	}
	return renderer, nil
}

func (r *registry) ListTraditions() []domain.Tradition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	traditions := make([]domain.Tradition, 0, len(r.renderers))
	for t := range r.renderers {
		traditions = append(traditions, t)
	}
	sort.Slice(traditions, func(i, j int) bool { return traditions[i] < traditions[j] })
	return traditions
}

// TraditionOf picks the tradition from a free-form report type. The first of
// "vedic", "chinese" and "hellenistic" found (case-insensitively) wins;
// everything else is western.
func TraditionOf(reportType string) domain.Tradition {
	rt := strings.ToLower(reportType)
	switch {
	case strings.Contains(rt, "vedic"):
		return domain.TraditionVedic
	case strings.Contains(rt, "chinese"):
		return domain.TraditionChinese
	case strings.Contains(rt, "hellenistic"):
		return domain.TraditionHellenistic
	default:
		return domain.TraditionWestern
	}
}
