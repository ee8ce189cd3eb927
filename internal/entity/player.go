package entity

const (
	FirstToken  = "o"
	SecondToken = "*"
)

const (
	WinPoints  = 2
	DrawPoints = 1
)

// PlayerID identifies the seat of a player and tags the cells it owns.
type PlayerID uint8

const (
	NoPlayer PlayerID = iota
	First
	Second
)

func (that PlayerID) Other() PlayerID {
	switch that {
	case First:
		return Second
	case Second:
		return First
	default:
		return NoPlayer
	}
}

func (that PlayerID) IsValid() bool {
	return that == First || that == Second
}

// Index - position of the player in a two-element pair.
func (that PlayerID) Index() int {
	return int(that) - 1
}

func (that PlayerID) String() string {
	switch that {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "none"
	}
}

type Player struct {
	ID    PlayerID `json:"id"`
	Name  string   `json:"name"`
	Token string   `json:"token"`
	Score int      `json:"score"`
}

// NewPlayer - creates a player for the given seat with its fixed token.
func NewPlayer(id PlayerID, name string) *Player {
	token := FirstToken
	if id == Second {
		token = SecondToken
	}

	return &Player{
		ID:    id,
		Name:  name,
		Token: token,
	}
}

// AddPoints - scores only ever grow, negative values are ignored.
func (that *Player) AddPoints(points int) {
	if points > 0 {
		that.Score += points
	}
}
