package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Numball/Fair-Division/rentdiv"
)

// ErrUnknownKind indicates a strategy spec with an unrecognized kind.
var ErrUnknownKind = errors.New("scenario: unknown strategy kind")

// Strategy kind names accepted in scenario files.
const (
	KindCheapest = "cheapest"
	KindRandom   = "random"
	KindFixed    = "fixed"
	KindCapped   = "capped"
)

// Scenario mirrors a YAML scenario document. Omitted top-level fields fall
// back to the solver defaults when the scenario is built.
type Scenario struct {
	Housemates    []string                `yaml:"housemates"`
	Rooms         []int                   `yaml:"rooms"`
	TotalRent     float64                 `yaml:"total_rent"`
	Eps           *float64                `yaml:"eps"`
	Rounding      *int                    `yaml:"rounding"`
	MaxIterations int                     `yaml:"max_iterations"`
	Strategies    map[string]StrategySpec `yaml:"strategies"`
}

// StrategySpec declares one housemate's preference strategy. Kind selects
// the variant; the remaining fields apply to the kinds that use them.
type StrategySpec struct {
	Kind     string          `yaml:"kind"`
	Seed     int64           `yaml:"seed"`     // random
	Room     int             `yaml:"room"`     // fixed
	Favorite int             `yaml:"favorite"` // capped
	Order    []int           `yaml:"order"`    // capped
	Caps     map[int]float64 `yaml:"caps"`     // capped
}

// Default returns the shipped demo scenario: housemate A caps rooms 1 and 2
// at 500 and room 3 at 0, while B and C always take the cheapest room.
func Default() Scenario {
	return Scenario{
		Strategies: map[string]StrategySpec{
			"A": {Kind: KindCapped, Favorite: 1, Order: []int{1, 2, 3}, Caps: map[int]float64{1: 500, 2: 500, 3: 0}},
			"B": {Kind: KindCheapest},
			"C": {Kind: KindCheapest},
		},
	}
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML scenario document.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: parse: %w", err)
	}

	return s, nil
}

// Build materializes the scenario into a solver configuration and strategy
// map, applying rentdiv defaults for omitted fields. Strategy specs with an
// unknown kind yield ErrUnknownKind; everything else is left to the
// solver's own validation.
func (s *Scenario) Build() (rentdiv.Config, map[string]rentdiv.Strategy, error) {
	cfg := rentdiv.DefaultConfig()
	if len(s.Housemates) > 0 {
		cfg.Housemates = s.Housemates
	}
	if len(s.Rooms) > 0 {
		cfg.Rooms = s.Rooms
	}
	// Only an omitted (zero) field falls back to the default; negative
	// values pass through so the solver rejects them with its sentinel
	// instead of being silently papered over.
	if s.TotalRent != 0 {
		cfg.TotalRent = s.TotalRent
	}
	if s.Eps != nil {
		cfg.Eps = *s.Eps
	}
	if s.Rounding != nil {
		cfg.Rounding = *s.Rounding
	}
	if s.MaxIterations != 0 {
		cfg.MaxIterations = s.MaxIterations
	}

	strategies := make(map[string]rentdiv.Strategy, len(s.Strategies))
	for housemate, spec := range s.Strategies {
		built, err := spec.build()
		if err != nil {
			return rentdiv.Config{}, nil, fmt.Errorf("%w (housemate %s)", err, housemate)
		}
		strategies[housemate] = built
	}

	return cfg, strategies, nil
}

// build materializes one strategy spec.
func (sp StrategySpec) build() (rentdiv.Strategy, error) {
	switch sp.Kind {
	case KindCheapest:
		return rentdiv.NewCheapest(), nil
	case KindRandom:
		return rentdiv.NewRandom(sp.Seed), nil
	case KindFixed:
		return rentdiv.NewFixedRoom(sp.Room), nil
	case KindCapped:
		return rentdiv.NewCappedOrder(sp.Favorite, sp.Order, sp.Caps), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, sp.Kind)
	}
}
