package ledger

import (
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Processor replays transaction commands against an in-memory ledger.
// It is single-use and not safe for concurrent use.
type Processor struct {
	balances   map[string]int64
	deposits   map[string]int64
	slotWagers map[string]int64
	campaigns  map[string]*Campaign
	scenarios  []Scenario
	results    []string
	entries    []Entry
	win        bool

	line   int
	stats  Stats
	newID  func() string
	logger zerolog.Logger
}

type Option func(*Processor)

// WithIDGenerator sets the id source for journal entries.
func WithIDGenerator(fn func() string) Option {
	return func(p *Processor) {
		if fn != nil {
			p.newID = fn
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

func New(opts ...Option) *Processor {
	p := &Processor{
		balances:   map[string]int64{},
		deposits:   map[string]int64{},
		slotWagers: map[string]int64{},
		campaigns:  map[string]*Campaign{},
		win:        true,
		stats:      Stats{Commands: map[string]int{}},
		logger:     log.Logger,
	}
	p.newID = func() string { return strconv.Itoa(len(p.entries) + 1) }
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type command struct {
	keyword string
	handle  func(p *Processor, parts []string) error
}

// Dispatch is by prefix, in this order.
var commands = []command{
	{keyword: "register", handle: (*Processor).register},
	{keyword: "addscenario", handle: (*Processor).addScenario},
	{keyword: "deposit", handle: (*Processor).deposit},
	{keyword: "bet", handle: (*Processor).bet},
	{keyword: "balance", handle: (*Processor).balance},
}

// Apply processes one input line. Lines that start with no known keyword
// are skipped; a known command that fails validation returns a *LineError.
func (p *Processor) Apply(raw string) error {
	p.line++
	p.stats.Lines++
	line := strings.TrimSpace(raw)
	for _, cmd := range commands {
		if !strings.HasPrefix(line, cmd.keyword) {
			continue
		}
		p.stats.Commands[cmd.keyword]++
		if err := cmd.handle(p, strings.Fields(line)); err != nil {
			return &LineError{Line: p.line, Command: cmd.keyword, Err: err}
		}
		return nil
	}
	p.stats.Ignored++
	return nil
}

// Run applies every line of seq and stops at the first error.
func (p *Processor) Run(seq iter.Seq2[string, error]) error {
	for line, err := range seq {
		if err != nil {
			return err
		}
		if err := p.Apply(line); err != nil {
			return err
		}
	}
	return nil
}

// Results returns the balance query outputs in query order.
func (p *Processor) Results() []string {
	return slices.Clone(p.results)
}

func (p *Processor) Entries() []Entry {
	return slices.Clone(p.entries)
}

func (p *Processor) Balance(userID string) (int64, bool) {
	bal, ok := p.balances[userID]
	return bal, ok
}

func (p *Processor) Campaign(userID string) (Campaign, bool) {
	c, ok := p.campaigns[userID]
	if !ok {
		return Campaign{}, false
	}
	return *c, true
}

func (p *Processor) PendingScenarios() []Scenario {
	return slices.Clone(p.scenarios)
}

func (p *Processor) Stats() Stats {
	s := p.stats
	s.Commands = maps.Clone(p.stats.Commands)
	return s
}

// record applies amount to the user's balance and journals it. A sum that
// leaves the int64 range is rejected and nothing changes.
func (p *Processor) record(userID string, typ EntryType, amount int64) error {
	bal, err := addAmount(p.balances[userID], amount)
	if err != nil {
		return err
	}
	p.balances[userID] = bal
	p.entries = append(p.entries, Entry{
		ID:      p.newID(),
		Seq:     len(p.entries) + 1,
		UserID:  userID,
		Type:    typ,
		Amount:  amount,
		Balance: p.balances[userID],
		Line:    p.line,
	})
	return nil
}
