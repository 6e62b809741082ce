package input

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
)

const sampleYAML = `
employees:
  - Alice
  - " Bob "
  - Alice
preferences:
  Alice:
    Mon: [morning, afternoon]
    tue: Morning
    Someday: evening
  Bob:
    Wed: [evening, 3, night]
    Thu: 42
config:
  minPerShift: 1
  maxPerShift: 3
  randomSeed: 9
`

func TestDecode_StringOrList(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	raw := doc.RawPreferences()
	assert.Equal(t, scheduler.RawShifts{"morning", "afternoon"}, raw["Alice"][scheduler.Mon])
	assert.Equal(t, scheduler.RawShifts{"Morning"}, raw["Alice"][scheduler.Tue])
	assert.Len(t, raw["Alice"], 2, "unknown day keys are ignored")

	// Non-string entries are dropped, invalid strings are left for the normalizer
	assert.Equal(t, scheduler.RawShifts{"evening", "night"}, raw["Bob"][scheduler.Wed])
	assert.Empty(t, raw["Bob"][scheduler.Thu])
}

func TestDecode_AppliesOverrides(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	cfg := doc.Apply(scheduler.DefaultConfig())

	assert.Equal(t, 1, cfg.MinPerShift)
	assert.Equal(t, 3, cfg.MaxPerShift)
	assert.Equal(t, scheduler.DefaultMaxDaysPerEmployee, cfg.MaxDaysPerEmployee)
	assert.Equal(t, int64(9), cfg.RandomSeed)
}

func TestDecode_NoOverrides(t *testing.T) {
	doc, err := Decode(strings.NewReader("employees: [Alice]\n"))
	require.NoError(t, err)

	assert.Equal(t, scheduler.DefaultConfig(), doc.Apply(scheduler.DefaultConfig()))
}

func TestDecode_InvalidOverride(t *testing.T) {
	_, err := Decode(strings.NewReader("employees: [Alice]\nconfig:\n  maxDaysPerEmployee: 9\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("employees: [Alice\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse input")
}

func TestShiftList_UnmarshalJSON(t *testing.T) {
	var doc Document
	body := `{"employees":["A"],"preferences":{"A":{"Mon":"evening","Tue":["morning",1,"afternoon"],"Wed":{"x":1}}}}`
	require.NoError(t, json.Unmarshal([]byte(body), &doc))

	assert.Equal(t, ShiftList{"evening"}, doc.Preferences["A"]["Mon"])
	assert.Equal(t, ShiftList{"morning", "afternoon"}, doc.Preferences["A"]["Tue"])
	assert.Empty(t, doc.Preferences["A"]["Wed"])
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", " Bob ", "Alice"}, doc.Employees)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseDay(t *testing.T) {
	day, ok := ParseDay(" SUNDAY ")
	assert.True(t, ok)
	assert.Equal(t, scheduler.Sun, day)

	_, ok = ParseDay("Mo")
	assert.False(t, ok)

	_, ok = ParseDay("Holiday")
	assert.False(t, ok)
}

func TestParseDay_AbbreviationOrFullName(t *testing.T) {
	for input, expected := range map[string]scheduler.Day{
		"mon":        scheduler.Mon,
		"TUE":        scheduler.Tue,
		"Wednesday":  scheduler.Wed,
		" thursday ": scheduler.Thu,
		"Fri":        scheduler.Fri,
		"saturday":   scheduler.Sat,
		"Sun":        scheduler.Sun,
	} {
		day, ok := ParseDay(input)
		assert.True(t, ok, input)
		assert.Equal(t, expected, day, input)
	}
}

func TestParseDay_RejectsNearMisses(t *testing.T) {
	for _, input := range []string{"Sunflower", "Monkey", "Thurs", "Tues", "Wednes", "Fridays", ""} {
		_, ok := ParseDay(input)
		assert.False(t, ok, input)
	}
}

func TestRawPreferences_IgnoresNearMissDayKeys(t *testing.T) {
	doc, err := Decode(strings.NewReader("employees: [Alice]\npreferences:\n  Alice:\n    Sunflower: morning\n    Sun: evening\n"))
	require.NoError(t, err)

	raw := doc.RawPreferences()
	assert.Len(t, raw["Alice"], 1)
	assert.Equal(t, scheduler.RawShifts{"evening"}, raw["Alice"][scheduler.Sun])
}

func TestFromExample_RoundTrip(t *testing.T) {
	employees, raw := scheduler.ExampleDataset()
	doc := FromExample()

	assert.Equal(t, employees, doc.Employees)
	assert.Equal(t, raw, doc.RawPreferences())
}
