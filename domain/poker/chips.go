package poker

import (
	"encoding/json"
	"fmt"
	"math"
)

// Chips is a chip amount stored as a whole number of cents. Keeping the
// count integral makes pot arithmetic exact; dollar floats appear only at
// the wire boundary.
type Chips int64

// ChipsFromDollars converts a dollar amount from the wire into cents,
// rounded to the nearest cent.
func ChipsFromDollars(d float64) Chips {
	return Chips(math.Round(d * 100))
}

// Dollars returns the amount as a dollar float for serialization.
func (c Chips) Dollars() float64 {
	return float64(c) / 100
}

func (c Chips) String() string {
	sign := ""
	v := c
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, int64(v)/100, int64(v)%100)
}

var _ json.Marshaler = Chips(0)

// MarshalJSON renders the amount as a dollar float, matching what clients
// expect to display.
func (c Chips) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Dollars())
}

func (c *Chips) UnmarshalJSON(data []byte) error {
	var d float64
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("parsing chip amount: %w", err)
	}
	*c = ChipsFromDollars(d)
	return nil
}
