package viewer

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/docviewer/internal/catalog"
)

// ErrNotInCatalog is the failure reason when catalog restriction is on and
// the requested document is unknown.
var ErrNotInCatalog = errors.New("document is not in the catalog")

// Recorder receives every load attempt. Recording errors are logged and
// otherwise ignored.
type Recorder interface {
	RecordLoad(ctx context.Context, filename string, result LoadResult, elapsed time.Duration) error
}

// Controller runs viewer cycles: resolve the active document from the
// location, render the navigation, show the loading placeholder, load and
// render. Cycles are independent; a cycle started while another is loading
// does not cancel it, and whichever finishes last owns the content region.
type Controller struct {
	catalog  catalog.Catalog
	loader   Loader
	renderer *Renderer
	recorder Recorder
	restrict bool
	logger   *zap.Logger

	seq   atomic.Uint64
	state atomic.Int32
}

// ControllerOptions configures a Controller. Recorder is optional.
type ControllerOptions struct {
	Catalog  catalog.Catalog
	Loader   Loader
	Renderer *Renderer
	Recorder Recorder
	// RestrictToCatalog fails unknown documents without fetching them.
	RestrictToCatalog bool
	Logger            *zap.Logger
}

// NewController creates a Controller in the Idle state.
func NewController(opts ControllerOptions) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		catalog:  opts.Catalog,
		loader:   opts.Loader,
		renderer: opts.Renderer,
		recorder: opts.Recorder,
		restrict: opts.RestrictToCatalog,
		logger:   logger,
	}
}

// Catalog returns the controller's catalog.
func (c *Controller) Catalog() catalog.Catalog { return c.catalog }

// Renderer returns the controller's renderer.
func (c *Controller) Renderer() *Renderer { return c.renderer }

// State is the most recent transition of any cycle.
func (c *Controller) State() State { return State(c.state.Load()) }

// Run performs one cycle for locationSearch against v and returns its final
// state, Rendered or Errored.
func (c *Controller) Run(ctx context.Context, locationSearch string, v View) State {
	seq := c.seq.Add(1)

	c.transition(seq, Resolving, v)
	st := ResolveState(locationSearch, c.catalog)
	filename := st.ActiveFilename

	v.SetNav(RenderNav(c.catalog, filename))
	v.SetContent(LoadingPlaceholder)
	c.transition(seq, Loading, v)

	start := time.Now()
	result := c.load(ctx, filename)
	elapsed := time.Since(start)

	if c.recorder != nil {
		if err := c.recorder.RecordLoad(ctx, filename, result, elapsed); err != nil {
			c.logger.Warn("recording load attempt", zap.String("doc", filename), zap.Error(err))
		}
	}

	c.renderer.Render(result, filename, v)

	final := Rendered
	if !result.OK {
		final = Errored
		c.logger.Info("document load failed",
			zap.Uint64("cycle", seq),
			zap.String("doc", filename),
			zap.String("reason", result.Reason),
		)
	}
	c.transition(seq, final, v)
	return final
}

func (c *Controller) load(ctx context.Context, filename string) LoadResult {
	if c.restrict && !c.catalog.Contains(filename) {
		return Failure(ErrNotInCatalog.Error())
	}
	return c.loader.Load(ctx, filename)
}

func (c *Controller) transition(seq uint64, s State, v View) {
	c.state.Store(int32(s))
	c.logger.Debug("viewer transition", zap.Uint64("cycle", seq), zap.Stringer("state", s))
	if obs, ok := v.(StateObserver); ok {
		obs.SetState(seq, s)
	}
}
