package ledger

import (
	"fmt"
	"strconv"
)

func (p *Processor) register(parts []string) error {
	if len(parts) != 2 {
		return formatErr("register <user_id>")
	}
	userID := parts[1]
	if _, ok := p.balances[userID]; ok {
		return fmt.Errorf("%w: user with ID %s already exists", ErrValidation, userID)
	}
	p.balances[userID] = 0
	return nil
}

func (p *Processor) addScenario(parts []string) error {
	if len(parts) != 4 {
		return formatErr("addscenario <prize1> <prize2> <prize3>")
	}
	p.scenarios = append(p.scenarios, Scenario{Prizes: [3]string{parts[1], parts[2], parts[3]}})
	return nil
}

func (p *Processor) deposit(parts []string) error {
	if len(parts) != 3 {
		return formatErr("deposit <user_id> <amount>")
	}
	userID := parts[1]
	amount, err := parseAmount(parts[2])
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: deposit amount must be positive", ErrValidation)
	}
	if _, ok := p.balances[userID]; !ok {
		return notRegisteredErr(userID)
	}

	total, err := addAmount(p.deposits[userID], amount)
	if err != nil {
		return err
	}
	if err := p.record(userID, EntryDeposit, amount); err != nil {
		return err
	}
	p.deposits[userID] = total
	return p.evaluateCampaign(userID)
}

func (p *Processor) bet(parts []string) error {
	if len(parts) != 4 {
		return formatErr("bet <user_id> <game> <amount>")
	}
	userID, game := parts[1], Game(parts[2])
	amount, err := parseAmount(parts[3])
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: bet amount must be positive", ErrValidation)
	}
	if _, ok := p.balances[userID]; !ok {
		return notRegisteredErr(userID)
	}
	if !game.Valid() {
		return fmt.Errorf("%w: invalid game type %s, should be one of %s, %s, %s",
			ErrValidation, game, GameSlot, GameCasino, GameSport)
	}

	// An uncovered stake leaves both the balance and the outcome flag alone.
	if amount <= p.balances[userID] {
		typ, delta := EntryBetWin, amount
		if !p.win {
			typ, delta = EntryBetLoss, -amount
		}
		if err := p.record(userID, typ, delta); err != nil {
			return err
		}
		p.win = !p.win
	}

	if game != GameSlot {
		return nil
	}
	wagered, err := addAmount(p.slotWagers[userID], amount)
	if err != nil {
		return err
	}
	p.slotWagers[userID] = wagered
	return p.evaluateCampaign(userID)
}

func (p *Processor) balance(parts []string) error {
	if len(parts) != 2 {
		return formatErr("balance <user_id>")
	}
	bal, ok := p.balances[parts[1]]
	if !ok {
		return notRegisteredErr(parts[1])
	}
	p.results = append(p.results, strconv.FormatInt(bal, 10))
	return nil
}
