package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Cached     bool
	Duration   time.Duration
	Candidates int
	Nodes      int // Boards produced by applying a turn
	Terminals  int // Boards that ended the game
	CacheHits  int
}

type MoveMetric struct {
	Step       int
	Colour     string
	Turn       string
	Position   uint64 // Board hash before the turn
	Challenged bool
	Replayed   bool
	SearchMetric
}

type GameMetric struct {
	Outcome    string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
	Challenges int
	Truncated  bool // Stopped at the turn limit
}

type Collector interface {
	Start(depth, goroutines int, cached bool)
	AddCandidates(n int)
	AddNode()
	AddTerminal()
	AddCacheHit()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	cached     bool
	startTime  time.Time
	candidates atomic.Int32
	nodes      atomic.Int64
	terminals  atomic.Int64
	cacheHits  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int, cached bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.cached = cached
	m.candidates.Store(0)
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.cacheHits.Store(0)
}

func (m *collector) AddCandidates(n int) {
	m.candidates.Add(int32(n))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Cached:     m.cached,
		Duration:   time.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		Nodes:      int(m.nodes.Load()),
		Terminals:  int(m.terminals.Load()),
		CacheHits:  int(m.cacheHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int, cached bool) {}
func (m *dummyCollector) AddCandidates(n int)                      {}
func (m *dummyCollector) AddNode()                                 {}
func (m *dummyCollector) AddTerminal()                             {}
func (m *dummyCollector) AddCacheHit()                             {}
func (m *dummyCollector) Complete() SearchMetric                   { return SearchMetric{} }
