package options

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type PaymentType string

const (
	// PaymentBike means the payer cycles to pick the food up and pays for it.
	PaymentBike PaymentType = "bike"
	// PaymentDelivery means the payer orders, pays and is reimbursed through the ledger.
	PaymentDelivery PaymentType = "delivery"
	// PaymentEatingOut means everybody pays for themselves.
	PaymentEatingOut PaymentType = "eating_out"
)

func (p PaymentType) String() string {
	return string(p)
}

func (p PaymentType) valid() bool {
	switch p {
	case PaymentBike, PaymentDelivery, PaymentEatingOut:
		return true
	}
	return false
}

type Option struct {
	Label        string      `yaml:"label"`
	Description  string      `yaml:"description"`
	Instructions string      `yaml:"instructions"`
	Payment      PaymentType `yaml:"payment"`
	Emoji        string      `yaml:"emoji"`
}

type Table struct {
	Food  []Option `yaml:"food"`
	Home  []Option `yaml:"home"`
	Abort Option   `yaml:"abort"`
}

// All returns the options a poll is seeded with: food first, then home.
func (t Table) All() []Option {
	all := make([]Option, 0, len(t.Food)+len(t.Home))
	all = append(all, t.Food...)
	return append(all, t.Home...)
}

func (t Table) Lookup(label string) (Option, bool) {
	for _, option := range t.All() {
		if option.Label == label {
			return option, true
		}
	}
	return Option{}, false
}

func (t Table) IsFood(label string) bool {
	for _, option := range t.Food {
		if option.Label == label {
			return true
		}
	}
	return false
}

func (t Table) IsHome(label string) bool {
	for _, option := range t.Home {
		if option.Label == label {
			return true
		}
	}
	return false
}

func (t Table) IsAbort(label string) bool {
	return label == t.Abort.Label
}

// Emojis maps every label the bot writes or reads to its unicode form.
func (t Table) Emojis() map[string]string {
	emojis := map[string]string{
		"bike":             "🚲",
		"money_with_wings": "💸",
		"bee":              "🐝",
	}
	for _, option := range append(t.All(), t.Abort) {
		if option.Emoji != "" {
			emojis[option.Label] = option.Emoji
		}
	}
	return emojis
}

func (t Table) Validate() error {
	if len(t.Food) == 0 {
		return fmt.Errorf("option table has no food options")
	}

	if t.Abort.Label == "" {
		return fmt.Errorf("option table has no abort marker")
	}

	seen := make(map[string]bool)
	for _, option := range append(t.All(), t.Abort) {
		if option.Label == "" {
			return fmt.Errorf("option %q has no label", option.Description)
		}
		if seen[option.Label] {
			return fmt.Errorf("option %q is listed twice", option.Label)
		}
		seen[option.Label] = true
	}

	for _, option := range t.Food {
		if !option.Payment.valid() {
			return fmt.Errorf("option %q has unknown payment type %q", option.Label, option.Payment)
		}
	}

	return nil
}

// Load reads a YAML option table from path, or returns Default(day) when path is empty.
func Load(path string, day time.Time) (Table, error) {
	if path == "" {
		return Default(day), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read options file: %w", err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return Table{}, fmt.Errorf("failed to parse options file: %w", err)
	}

	if err := table.Validate(); err != nil {
		return Table{}, err
	}

	return table, nil
}
