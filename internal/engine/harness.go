package engine

// Harness assembles a deterministic Scheduler for tests via a builder-
// option API: infrastructure options (map size, rules) apply in one
// pass, entity options (tanks) in a second pass that can depend on the
// first.
type optionKind int

const (
	optKindInfra optionKind = iota
	optKindTank
)

// Option configures a Harness before it builds its Scheduler.
type Option struct {
	kind optionKind
	fn   func(*harnessBuilder)
}

type tankSpec struct {
	playerID, tankID int
	x, y             int
	dir              Direction
	ammo             int
	algo             TankAlgorithm
}

type harnessBuilder struct {
	width, height int
	maxSteps      int
	defaultAmmo   int
	rules         Rules
	cells         []cellSpec
	tanks         []tankSpec
}

type cellSpec struct {
	x, y int
	cell Cell
}

// WithMapSize sets the grid dimensions. Default 8x8.
func WithMapSize(width, height int) Option {
	return Option{kind: optKindInfra, fn: func(b *harnessBuilder) {
		b.width, b.height = width, height
	}}
}

// WithMaxSteps sets the tick bound enforced by end condition E4.
func WithMaxSteps(n int) Option {
	return Option{kind: optKindInfra, fn: func(b *harnessBuilder) {
		b.maxSteps = n
	}}
}

// WithDefaultAmmo sets the ammo given to tanks added by WithTank without
// an explicit ammo override (mirrors the map file's NumShells header).
func WithDefaultAmmo(n int) Option {
	return Option{kind: optKindInfra, fn: func(b *harnessBuilder) {
		b.defaultAmmo = n
	}}
}

// WithRules overrides the default Rules a harness-built Scheduler runs
// with — used by tests exercising a non-default zero-shell tie window
// or sub-step count.
func WithRules(r Rules) Option {
	return Option{kind: optKindInfra, fn: func(b *harnessBuilder) {
		b.rules = r
	}}
}

// WithCell places terrain at (x, y) before any tank is placed.
func WithCell(x, y int, c Cell) Option {
	return Option{kind: optKindInfra, fn: func(b *harnessBuilder) {
		b.cells = append(b.cells, cellSpec{x, y, c})
	}}
}

// WithTank adds one tank, driven by algo, at (x, y) facing dir. ammo,
// if non-negative, overrides the harness's default ammo for this tank
// only.
func WithTank(playerID, tankID, x, y int, dir Direction, ammo int, algo TankAlgorithm) Option {
	return Option{kind: optKindTank, fn: func(b *harnessBuilder) {
		if ammo < 0 {
			ammo = b.defaultAmmo
		}
		b.tanks = append(b.tanks, tankSpec{
			playerID: playerID, tankID: tankID,
			x: x, y: y, dir: dir, ammo: ammo, algo: algo,
		})
	}}
}

// NewHarness builds a Scheduler from options, applying infra options
// before tank options regardless of the order they were passed in, so
// WithMapSize/WithCell/WithDefaultAmmo are always settled before a
// WithTank option runs.
func NewHarness(opts ...Option) *Scheduler {
	b := &harnessBuilder{width: 8, height: 8, maxSteps: 100, defaultAmmo: 0, rules: DefaultRules()}

	for _, kind := range []optionKind{optKindInfra, optKindTank} {
		for _, o := range opts {
			if o.kind == kind {
				o.fn(b)
			}
		}
	}

	grid := NewGrid(b.width, b.height)
	for _, cs := range b.cells {
		grid.SetCell(cs.x, cs.y, cs.cell)
	}

	tanks := make([]*Tank, len(b.tanks))
	modules := make([]TankAlgorithm, len(b.tanks))
	for i, spec := range b.tanks {
		tanks[i] = NewTank(spec.playerID, spec.tankID, spec.x, spec.y, spec.dir, spec.ammo)
		modules[i] = spec.algo
	}

	return NewSchedulerWithRules(grid, tanks, modules, b.maxSteps, b.rules)
}
