package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
)

// ShiftList is one day's raw preference. In a document it may be written either as a
// single shift token or as an ordered list of tokens. Non-string entries are dropped.
type ShiftList []string

// UnmarshalYAML accepts a scalar or a sequence of scalars
func (s *ShiftList) UnmarshalYAML(node *yaml.Node) error {
	*s = ShiftList{}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!str" {
			*s = ShiftList{node.Value}
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode && item.ShortTag() == "!!str" {
				*s = append(*s, item.Value)
			}
		}
	}

	return nil
}

// UnmarshalJSON accepts a string or an array; anything else decodes to an empty list
func (s *ShiftList) UnmarshalJSON(data []byte) error {
	*s = ShiftList{}

	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = ShiftList{single}
		return nil
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	for _, item := range items {
		if token, ok := item.(string); ok {
			*s = append(*s, token)
		}
	}

	return nil
}

// ConfigOverrides holds optional per-run constraint values. Nil fields keep the base value.
type ConfigOverrides struct {
	MinPerShift        *int   `yaml:"minPerShift,omitempty" json:"minPerShift,omitempty" validate:"omitempty,min=0"`
	MaxPerShift        *int   `yaml:"maxPerShift,omitempty" json:"maxPerShift,omitempty"`
	MaxDaysPerEmployee *int   `yaml:"maxDaysPerEmployee,omitempty" json:"maxDaysPerEmployee,omitempty" validate:"omitempty,min=0,max=7"`
	RandomSeed         *int64 `yaml:"randomSeed,omitempty" json:"randomSeed,omitempty"`
}

// Document is a scheduling request: the roster, raw preferences and optional overrides
type Document struct {
	Employees   []string                        `yaml:"employees" json:"employees"`
	Preferences map[string]map[string]ShiftList `yaml:"preferences,omitempty" json:"preferences,omitempty"`
	Config      *ConfigOverrides                `yaml:"config,omitempty" json:"config,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadFile reads and validates a YAML (or JSON) input document
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses and validates an input document from r
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks the config overrides. The roster itself is checked by the scheduler.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	return nil
}

// RawPreferences converts the document's preferences into the scheduler's raw form.
// Day keys are matched case-insensitively; unknown day keys are ignored.
func (d *Document) RawPreferences() scheduler.RawPreferences {
	raw := make(scheduler.RawPreferences, len(d.Preferences))
	for emp, perDay := range d.Preferences {
		days := make(map[scheduler.Day]scheduler.RawShifts, len(perDay))
		for key, shifts := range perDay {
			day, ok := ParseDay(key)
			if !ok {
				continue
			}
			days[day] = scheduler.RawShifts(shifts)
		}
		raw[emp] = days
	}
	return raw
}

// Apply returns base with the document's overrides applied
func (d *Document) Apply(base scheduler.Config) scheduler.Config {
	cfg := base
	if d.Config == nil {
		return cfg
	}
	if d.Config.MinPerShift != nil {
		cfg.MinPerShift = *d.Config.MinPerShift
	}
	if d.Config.MaxPerShift != nil {
		cfg.MaxPerShift = *d.Config.MaxPerShift
	}
	if d.Config.MaxDaysPerEmployee != nil {
		cfg.MaxDaysPerEmployee = *d.Config.MaxDaysPerEmployee
	}
	if d.Config.RandomSeed != nil {
		cfg.RandomSeed = *d.Config.RandomSeed
	}
	return cfg
}

// dayNames maps the full lower-case day names to their days
var dayNames = map[string]scheduler.Day{
	"monday":    scheduler.Mon,
	"tuesday":   scheduler.Tue,
	"wednesday": scheduler.Wed,
	"thursday":  scheduler.Thu,
	"friday":    scheduler.Fri,
	"saturday":  scheduler.Sat,
	"sunday":    scheduler.Sun,
}

// ParseDay matches a day identifier such as "Mon", "mon" or "MONDAY".
// Only the three-letter abbreviation or the full name is accepted.
func ParseDay(s string) (scheduler.Day, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if day, ok := dayNames[s]; ok {
		return day, true
	}
	for _, day := range scheduler.Days {
		if s == strings.ToLower(string(day)) {
			return day, true
		}
	}
	return "", false
}

// FromExample builds a document from the built-in example dataset
func FromExample() *Document {
	employees, raw := scheduler.ExampleDataset()
	doc := &Document{
		Employees:   employees,
		Preferences: make(map[string]map[string]ShiftList, len(raw)),
	}
	for emp, perDay := range raw {
		doc.Preferences[emp] = make(map[string]ShiftList, len(perDay))
		for day, shifts := range perDay {
			doc.Preferences[emp][string(day)] = ShiftList(shifts)
		}
	}
	return doc
}
