package roll

import (
	"time"

	"github.com/KirkDiggler/cepheus-dice/internal/dice"
	rolllog "github.com/KirkDiggler/cepheus-dice/internal/repositories/roll_log"
)

// RollInput defines the request for rolling a dice expression
type RollInput struct {
	OwnerID      string
	Context      string
	Expression   string
	Seed         *int64 // nil means generate a fresh seed
	Advantage    bool
	Disadvantage bool
	Description  string
	TTL          time.Duration
}

// RollOutput defines the response for rolling a dice expression
type RollOutput struct {
	Result *dice.RollResult
	Entry  *rolllog.Entry
	Log    *rolllog.RollLog
}

// GetRollLogInput defines the request for getting a roll log
type GetRollLogInput struct {
	OwnerID string
	Context string
}

// GetRollLogOutput defines the response for getting a roll log
type GetRollLogOutput struct {
	Log *rolllog.RollLog
}

// ClearRollLogInput defines the request for clearing a roll log
type ClearRollLogInput struct {
	OwnerID string
	Context string
}

// ClearRollLogOutput defines the response for clearing a roll log
type ClearRollLogOutput struct {
	EntriesDeleted int
}

// RollAttributesInput defines the request for rolling a full attribute set
// for character creation
type RollAttributesInput struct {
	OwnerID string
	Seed    *int64 // nil means generate a fresh seed
}

// Attribute is a single rolled characteristic
type Attribute struct {
	Name   string
	Value  int
	Ehex   string
	Result *dice.RollResult
}

// RollAttributesOutput defines the response for rolling a full attribute set
type RollAttributesOutput struct {
	Attributes []Attribute
	UPP        string
	Log        *rolllog.RollLog
}
