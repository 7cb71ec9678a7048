package validation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── default fallback configuration ───────────────────────────────────────────

func TestDefaultFallback_ConfiguredPatternActsAsGate(t *testing.T) {
	orig := ruleConfigs["default"]
	ruleConfigs["default"] = &ruleConfig{
		re:      regexp.MustCompile(`^[a-z]+$`),
		message: "The %s format is invalid.",
	}
	defer func() { ruleConfigs["default"] = orig }()

	v := Make(map[string]string{"slug": "lower"}, Rules{"slug": "nosuchrule"})
	assert.True(t, v.Passes())
	assert.Equal(t, "lower", v.Validated()["slug"])

	v = Make(map[string]string{"slug": "UPPER"}, Rules{"slug": "nosuchrule"})
	assert.True(t, v.Fails())
	assert.Nil(t, v.Validated()["slug"])
}

// ── enum parameter partitioning ──────────────────────────────────────────────

func TestSplitEnumParams(t *testing.T) {
	allowed, def, has := splitEnumParams("HOURS|DAYS|WEEKS|default:DAYS")
	assert.Equal(t, []string{"HOURS", "DAYS", "WEEKS"}, allowed)
	assert.Equal(t, "DAYS", def)
	assert.True(t, has)
}

func TestSplitEnumParams_NoDefault(t *testing.T) {
	allowed, _, has := splitEnumParams("OPEN|CLOSED")
	assert.Equal(t, []string{"OPEN", "CLOSED"}, allowed)
	assert.False(t, has)
}

func TestSplitEnumParams_DefaultSubstringMatches(t *testing.T) {
	// Any token containing "default" counts as a default declaration, even
	// without the colon form.
	allowed, def, has := splitEnumParams("A|default")
	assert.Equal(t, []string{"A"}, allowed)
	assert.Empty(t, def)
	assert.True(t, has)
}

// ── datetime round-trip ──────────────────────────────────────────────────────

func TestValidDatetime(t *testing.T) {
	assert.True(t, validDatetime("2024-01-10 09:30"))
	assert.False(t, validDatetime("2024-02-30 10:00"), "calendar overflow")
	assert.False(t, validDatetime("2024-1-10 09:30"), "unpadded month")
	assert.False(t, validDatetime(""))
}
