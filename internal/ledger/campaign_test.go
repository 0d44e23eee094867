package ledger

import (
	"errors"
	"slices"
	"testing"
)

func TestCampaignNeedsBothTotals(t *testing.T) {
	p := New()
	applyAll(t, p,
		"register u1",
		"addscenario 10 20 30",
		"deposit u1 1000",
	)
	if _, ok := p.Campaign("u1"); ok {
		t.Fatal("campaign assigned without slot wagers")
	}
	applyAll(t, p, "bet u1 CASINO 600", "bet u1 SPORT 600")
	if _, ok := p.Campaign("u1"); ok {
		t.Fatal("non-slot bets triggered campaign")
	}
}

func TestCampaignTiersAdvanceOneAtATime(t *testing.T) {
	p := New()
	applyAll(t, p,
		"register u1",
		"addscenario 10 20 30",
		"deposit u1 1000",
		// Uncovered slot bet: only the wager total moves.
		"bet u1 SLOT 5000",
	)
	c, ok := p.Campaign("u1")
	if !ok || c.Tier != Tier1 {
		t.Fatalf("campaign = %+v ok=%v, want tier1", c, ok)
	}
	if bal, _ := p.Balance("u1"); bal != 1010 {
		t.Fatalf("balance = %d, want 1010", bal)
	}

	applyAll(t, p, "deposit u1 1")
	if c, _ := p.Campaign("u1"); c.Tier != Tier2 {
		t.Fatalf("tier = %v, want tier2", c.Tier)
	}
	applyAll(t, p, "deposit u1 1")
	if c, _ := p.Campaign("u1"); c.Tier != Tier3 {
		t.Fatalf("tier = %v, want tier3", c.Tier)
	}
	applyAll(t, p, "deposit u1 1", "bet u1 SLOT 99999", "balance u1")

	// 1000 + 10 + 1 + 20 + 1 + 30 + 1
	if got := p.Results(); !slices.Equal(got, []string{"1063"}) {
		t.Fatalf("results = %v, want [1063]", got)
	}
}

func TestCampaignThresholdBoundaries(t *testing.T) {
	p := New()
	applyAll(t, p,
		"register u1",
		"addscenario 1 2 3",
		"deposit u1 99",
		"bet u1 SLOT 500",
	)
	if _, ok := p.Campaign("u1"); ok {
		t.Fatal("campaign assigned below deposit threshold")
	}
	applyAll(t, p, "deposit u1 1")
	if c, ok := p.Campaign("u1"); !ok || c.Tier != Tier1 {
		t.Fatalf("campaign = %+v ok=%v, want tier1 at deposit 100", c, ok)
	}
}

func TestScenariosAssignedFIFO(t *testing.T) {
	p := New()
	applyAll(t, p,
		"register a",
		"register b",
		"addscenario 1 2 3",
		"addscenario 7 8 9",
		"addscenario 100 200 300",
		"deposit b 100",
		"deposit a 100",
		"bet b SLOT 50",
		"bet a SLOT 50",
	)
	cb, _ := p.Campaign("b")
	ca, _ := p.Campaign("a")
	if cb.Scenario.Prizes != [3]string{"1", "2", "3"} {
		t.Fatalf("b scenario = %v, want first loaded", cb.Scenario)
	}
	if ca.Scenario.Prizes != [3]string{"7", "8", "9"} {
		t.Fatalf("a scenario = %v, want second loaded", ca.Scenario)
	}
	pending := p.PendingScenarios()
	if len(pending) != 1 || pending[0].Prizes[0] != "100" {
		t.Fatalf("pending = %v, want only third scenario", pending)
	}
}

func TestCampaignNeverReassigned(t *testing.T) {
	p := New()
	applyAll(t, p,
		"register u1",
		"addscenario 5 6 7",
		"deposit u1 100",
		"bet u1 SLOT 50",
		"addscenario 50 60 70",
		"deposit u1 10",
		"bet u1 SLOT 10",
	)
	c, _ := p.Campaign("u1")
	if c.Scenario.Prizes[0] != "5" || c.Tier != Tier1 {
		t.Fatalf("campaign = %+v, want original scenario at tier1", c)
	}
	if len(p.PendingScenarios()) != 1 {
		t.Fatalf("pending = %d, want 1", len(p.PendingScenarios()))
	}
}

func TestCampaignDepletedQueue(t *testing.T) {
	p := New()
	applyAll(t, p, "register u1", "deposit u1 100")
	err := p.Apply("bet u1 SLOT 50")
	if !errors.Is(err, ErrScenarioDepleted) {
		t.Fatalf("err = %v, want depleted queue", err)
	}
	if Kind(err) != "scenario_queue_depleted" {
		t.Fatalf("Kind() = %q", Kind(err))
	}
}

func TestScenarioPrizeParsedAtPayout(t *testing.T) {
	p := New()
	applyAll(t, p, "register u1", "addscenario 10 abc 30", "deposit u1 100", "bet u1 SLOT 50")
	err := p.Apply("deposit u1 400")
	if err != nil {
		t.Fatalf("deposit below tier2 slot threshold failed: %v", err)
	}
	err = p.Apply("bet u1 SLOT 200")
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("err = %v, want format error for bad prize", err)
	}
}

func TestNegativePrizeCanDriveBalanceNegative(t *testing.T) {
	p := New()
	applyAll(t, p,
		"register u1",
		"addscenario -500 0 0",
		"deposit u1 100",
		"bet u1 SLOT 50",
		"balance u1",
	)
	if got := p.Results(); !slices.Equal(got, []string{"-350"}) {
		t.Fatalf("results = %v, want [-350]", got)
	}
}
