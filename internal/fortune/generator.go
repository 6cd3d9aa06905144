package fortune

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a single remote reading.
const DefaultTimeout = 20 * time.Second

// Client performs one structured-generation request and returns the raw
// JSON text of the answer.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator produces fortunes. It never returns an error: every failure is
// folded into one of the two fixed fallbacks.
type Generator struct {
	client  Client
	logger  *log.Logger
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for warnings and failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTimeout bounds each remote call. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// NewGenerator creates a generator. A nil client selects the offline path.
func NewGenerator(client Client, opts ...Option) *Generator {
	g := &Generator{
		client:  client,
		logger:  log.New(io.Discard),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client == nil {
		g.logger.Warn("no API key configured, fortunes will use the offline reading")
	}
	return g
}

// Offline reports whether the generator skips the remote call.
func (g *Generator) Offline() bool {
	return g.client == nil
}

// Generate produces a fortune for the given stats. It makes at most one
// remote call and never retries.
func (g *Generator) Generate(ctx context.Context, stats PourStats) Result {
	if g.client == nil {
		return Result{Fortune: Offline(stats), Source: SourceOffline}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.client.Generate(ctx, BuildPrompt(stats))
	if err != nil {
		g.logger.Error("fortune request failed", "error", err, "elapsed", time.Since(start))
		return Result{Fortune: Degraded(), Source: SourceDegraded}
	}

	f, err := Parse(text)
	if err != nil {
		g.logger.Error("fortune response rejected", "error", err)
		return Result{Fortune: Degraded(), Source: SourceDegraded}
	}

	g.logger.Debug("fortune received", "rating", f.Rating, "title", f.Title, "elapsed", time.Since(start))
	return Result{Fortune: f, Source: SourceRemote}
}
