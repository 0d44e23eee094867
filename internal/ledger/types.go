package ledger

type Game string

const (
	GameSlot   Game = "SLOT"
	GameCasino Game = "CASINO"
	GameSport  Game = "SPORT"
)

func (g Game) Valid() bool {
	switch g {
	case GameSlot, GameCasino, GameSport:
		return true
	default:
		return false
	}
}

// Tier is the highest campaign reward already paid to a user.
type Tier int

const (
	NoCampaign Tier = iota
	Tier1
	Tier2
	Tier3
)

func (t Tier) String() string {
	switch t {
	case Tier1:
		return "tier1"
	case Tier2:
		return "tier2"
	case Tier3:
		return "tier3"
	default:
		return "none"
	}
}

// Scenario holds the three prizes of a promotion. Prizes stay raw until paid.
type Scenario struct {
	Prizes [3]string
}

type Campaign struct {
	Scenario Scenario
	Tier     Tier
}

type EntryType string

const (
	EntryDeposit       EntryType = "deposit"
	EntryBetWin        EntryType = "bet_win"
	EntryBetLoss       EntryType = "bet_loss"
	EntryCampaignPrize EntryType = "campaign_prize"
)

// Entry records one balance mutation. Amount is signed; Balance is the result.
type Entry struct {
	ID      string
	Seq     int
	UserID  string
	Type    EntryType
	Amount  int64
	Balance int64
	Line    int
}

type Stats struct {
	Lines    int
	Ignored  int
	Commands map[string]int
}
