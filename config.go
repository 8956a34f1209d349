package areas

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// DefaultInteractionDistance is the agent-to-centre distance below which a
// zone is entered.
const DefaultInteractionDistance = 2.5

// Definition describes a zone to register. Position and HalfExtents are
// required; optional flags default to true when nil.
type Definition struct {
	Name        string `yaml:"name"`
	Position    *Vec2  `yaml:"position"`
	HalfExtents *Vec2  `yaml:"half_extents"`

	Interactable *bool `yaml:"interactable"`
	Active       *bool `yaml:"active"`
	// TestAgent enables agent proximity for the zone. Pointer-only zones set
	// it to false.
	TestAgent *bool `yaml:"test_agent"`

	// HitHeight is the world Z of the default ground proxy built when
	// HitMesh is nil.
	HitHeight float64 `yaml:"hit_height"`
	HitMesh   HitMesh `yaml:"-"`

	UserData any `yaml:"-"`
}

// Pos returns a pointer to a ground-plane vector, for building Definitions.
func Pos(x, y float64) *Vec2 { return &Vec2{X: x, Y: y} }

// Bool returns a pointer to b, for the optional Definition flags.
func Bool(b bool) *bool { return &b }

func (d Definition) validate() error {
	if d.Position == nil {
		return &ConfigurationError{Name: d.Name, Field: "position", Err: ErrMissingGeometry}
	}
	if d.HalfExtents == nil {
		return &ConfigurationError{Name: d.Name, Field: "halfExtents", Err: ErrMissingGeometry}
	}
	if !finite(d.Position.X) || !finite(d.Position.Y) {
		return &ConfigurationError{Name: d.Name, Field: "position",
			Err: fmt.Errorf("non-finite coordinates (%v, %v)", d.Position.X, d.Position.Y)}
	}
	if !finite(d.HalfExtents.X) || !finite(d.HalfExtents.Y) || d.HalfExtents.X < 0 || d.HalfExtents.Y < 0 {
		return &ConfigurationError{Name: d.Name, Field: "halfExtents",
			Err: fmt.Errorf("invalid extents (%v, %v)", d.HalfExtents.X, d.HalfExtents.Y)}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Config holds engine settings and the zones to register at scene assembly.
type Config struct {
	InteractionDistance float64 `yaml:"interaction_distance"`
	// InteractKeys are the dedicated interact bindings, by ebiten key name.
	InteractKeys []string `yaml:"interact_keys"`
	// DriveKeysInteract also treats the vehicle movement keys as the
	// interact action.
	DriveKeysInteract bool         `yaml:"drive_keys_interact"`
	Debug             bool         `yaml:"debug"`
	Zones             []Definition `yaml:"zones"`
}

// DefaultConfig returns Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		InteractionDistance: DefaultInteractionDistance,
		InteractKeys:        []string{"E", "Enter", "Space"},
	}
}

// LoadConfig parses YAML on top of DefaultConfig. Zone definitions are not
// validated here; Registry.Add rejects bad ones individually.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("areas: parse config: %w", err)
	}
	if cfg.InteractionDistance <= 0 || !finite(cfg.InteractionDistance) {
		return Config{}, fmt.Errorf("areas: parse config: interaction_distance must be positive, got %v", cfg.InteractionDistance)
	}
	if _, err := cfg.Bindings(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Bindings resolves the configured key names.
func (c Config) Bindings() (Bindings, error) {
	b := Bindings{DriveKeysInteract: c.DriveKeysInteract}
	for _, name := range c.InteractKeys {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return Bindings{}, fmt.Errorf("areas: interact key %q: %w", name, err)
		}
		b.InteractKeys = append(b.InteractKeys, k)
	}
	return b, nil
}
