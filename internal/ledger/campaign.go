package ledger

import (
	"fmt"
	"strconv"
)

type threshold struct {
	deposit int64
	slot    int64
}

func (t threshold) met(deposited, wagered int64) bool {
	return deposited >= t.deposit && wagered >= t.slot
}

var tierThresholds = map[Tier]threshold{
	Tier1: {deposit: 100, slot: 50},
	Tier2: {deposit: 500, slot: 250},
	Tier3: {deposit: 1000, slot: 500},
}

func (s Scenario) prize(t Tier) (int64, error) {
	raw := s.Prizes[t-1]
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s prize %q is not an integer", ErrFormat, t, raw)
	}
	return n, nil
}

// evaluateCampaign advances userID by at most one tier. Users without both a
// deposit total and a slot wager total are not eligible yet.
func (p *Processor) evaluateCampaign(userID string) error {
	deposited, ok := p.deposits[userID]
	if !ok {
		return nil
	}
	wagered, ok := p.slotWagers[userID]
	if !ok {
		return nil
	}

	c, assigned := p.campaigns[userID]
	next := Tier1
	if assigned {
		if c.Tier == Tier3 {
			return nil
		}
		next = c.Tier + 1
	}
	if !tierThresholds[next].met(deposited, wagered) {
		return nil
	}

	if !assigned {
		if len(p.scenarios) == 0 {
			return fmt.Errorf("%w: no scenario left for user %s", ErrScenarioDepleted, userID)
		}
		c = &Campaign{Scenario: p.scenarios[0]}
		p.scenarios = p.scenarios[1:]
		p.campaigns[userID] = c
	}

	amount, err := c.Scenario.prize(next)
	if err != nil {
		return err
	}
	if err := p.record(userID, EntryCampaignPrize, amount); err != nil {
		return err
	}
	c.Tier = next
	p.logger.Debug().
		Str("user_id", userID).
		Str("tier", next.String()).
		Int64("prize", amount).
		Int("line", p.line).
		Msg("campaign tier reached")
	return nil
}
