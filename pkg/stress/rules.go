package stress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
)

// Rule maps one water-stress level to the fraction of expected yield
// assumed lost and the alert shown to the operator.
type Rule struct {
	StressLevel  string  `json:"stress_level"`
	LossFraction float64 `json:"loss_fraction"`
	AlertMessage string  `json:"alert_message"`
}

// Table holds the ordered loss rules plus the average bean price loaded
// with them. A Table is never empty, so Estimate always has a fallback.
type Table struct {
	Rules           []Rule
	AveragePriceTon float64
}

const DefaultPricePerTon = 3000.0

type rulesFile struct {
	LossRules          []Rule  `json:"loss_rules"`
	AveragePricePerTon float64 `json:"average_price_per_ton"`
}

// Default is the built-in two-rule table used when no rules file exists.
func Default() *Table {
	return &Table{
		Rules: []Rule{
			{StressLevel: "Low", LossFraction: 0.05, AlertMessage: "Risco baixo."},
			{StressLevel: "High", LossFraction: 0.35, AlertMessage: "Risco crítico."},
		},
		AveragePriceTon: DefaultPricePerTon,
	}
}

// Load reads the rules file once at startup. A missing file falls back
// to Default; an unparseable or invalid file is an error (the caller
// must not start the interactive loop in that case).
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[rules] %s not found, using built-in defaults", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rf rulesFile
	if err := json.Unmarshal(b, &rf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rf.LossRules) == 0 {
		return nil, fmt.Errorf("%s: no loss_rules defined", path)
	}
	for i, r := range rf.LossRules {
		if r.LossFraction < 0 || r.LossFraction > 1 {
			return nil, fmt.Errorf("%s: loss_fraction %v for %q out of [0,1]", path, r.LossFraction, r.StressLevel)
		}
		rf.LossRules[i].StressLevel = Normalize(r.StressLevel)
	}

	price := rf.AveragePricePerTon
	if price <= 0 {
		price = DefaultPricePerTon
	}
	return &Table{Rules: rf.LossRules, AveragePriceTon: price}, nil
}

// Normalize trims and ASCII-capitalizes a stress label ("  high " -> "High").
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Estimate returns the first rule whose level matches the normalized
// input. Unrecognized levels silently fall back to the first rule;
// callers that need strict validation must check HasLevel first.
func (t *Table) Estimate(level string) Rule {
	n := Normalize(level)
	for _, r := range t.Rules {
		if r.StressLevel == n {
			return r
		}
	}
	return t.Rules[0]
}

func (t *Table) HasLevel(level string) bool {
	n := Normalize(level)
	for _, r := range t.Rules {
		if r.StressLevel == n {
			return true
		}
	}
	return false
}

// Levels lists the valid labels in table order, for prompts and errors.
func (t *Table) Levels() []string {
	out := make([]string, 0, len(t.Rules))
	for _, r := range t.Rules {
		out = append(out, r.StressLevel)
	}
	return out
}
