package notice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMissingRequiredValue_FallsBackToNoID(t *testing.T) {
	n := NewMissingRequiredValue("agency.txt", "agency_name", "")

	assert.Equal(t, CodeMissingRequiredValue, n.Code())
	assert.Equal(t, SeverityError, n.Severity())
	assert.Equal(t, "agency.txt", n.Filename())
	assert.Equal(t, "agency_name", n.FieldName())
	assert.Equal(t, NoID, n.EntityID())
	assert.True(t, n.IsError())
}

func TestFloatFieldValueOutOfRange_CarriesBounds(t *testing.T) {
	n := NewFloatFieldValueOutOfRange("shapes.txt", "shape_pt_lat", "S1", -90, 90, 120)

	min, ok := n.Get(KeyRangeMin)
	require.True(t, ok)
	assert.Equal(t, -90.0, min)
	max, _ := n.Get(KeyRangeMax)
	assert.Equal(t, 90.0, max)
	actual, _ := n.Get(KeyActualValue)
	assert.Equal(t, 120.0, actual)
	assert.NotEqual(t, CodeIntegerFieldValueOutOfRange, n.Code())
}

func TestSpecific_ReturnsCopy(t *testing.T) {
	n := NewIllegalFieldValueCombination("attributions.txt", "agency_id", "route_id", "A1")

	m := n.Specific()
	m[KeyFieldName] = "mutated"

	assert.Equal(t, "agency_id", n.FieldName())
	v, _ := n.Get(KeyConflictingFieldName)
	assert.Equal(t, "route_id", v)
}

func TestWarnings_HaveWarningSeverity(t *testing.T) {
	tests := []struct {
		name string
		n    Notice
		code string
	}{
		{"non standard header", NewNonStandardHeader("stops.txt", "extra"), CodeNonStandardHeader},
		{"extra file", NewExtraFileFound("extra.txt"), CodeExtraFileFound},
		{"short name too long", NewRouteShortNameTooLong("routes.txt", "R1", 13, 12), CodeRouteShortNameTooLong},
		{"long equals short", NewRouteLongNameEqualsShortName("routes.txt", "R1"), CodeRouteLongNameEqualsShortName},
		{"long contains short", NewRouteLongNameContainsShortName("routes.txt", "R1"), CodeRouteLongNameContainsShortName},
		{"same description", NewSameNameAndDescriptionForRoute("routes.txt", "R1", "route_long_name"), CodeSameNameAndDescriptionForRoute},
		{"zip folder", NewInputZipContainsFolder("feed.zip", "feed"), CodeInputZipContainsFolder},
		{"non ascii id", NewNonASCIIOrNonPrintableChar("routes.txt", "route_id", "R\u00e9", "R\u00e9"), CodeNonASCIIOrNonPrintableChar},
		{"color contrast", NewRouteColorContrast("routes.txt", "R1", 1.07), CodeRouteColorContrast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, SeverityWarning, tt.n.Severity())
			assert.Equal(t, tt.code, tt.n.Code())
			assert.False(t, tt.n.IsError())
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	n := NewIntegerFieldValueOutOfRange("shapes.txt", "shape_pt_sequence", "S1", 0, 2147483647, -1)

	b, err := json.Marshal(n)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, CodeIntegerFieldValueOutOfRange, got["code"])
	assert.Equal(t, "ERROR", got["severity"])
	assert.Equal(t, "shapes.txt", got["filename"])
	assert.Equal(t, "S1", got["entityId"])
	specific, ok := got["noticeSpecific"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "shape_pt_sequence", specific[KeyFieldName])
	assert.Equal(t, float64(-1), specific[KeyActualValue])
	assert.Equal(t, float64(0), specific[KeyRangeMin])
}

func TestMarshalJSON_OmitsEmptyEntityAndPayload(t *testing.T) {
	b, err := json.Marshal(NewMissingRequiredFile("agency.txt"))
	require.NoError(t, err)

	assert.NotContains(t, string(b), "entityId")
	assert.NotContains(t, string(b), "noticeSpecific")
}

func TestCannotParse_UsesRowIDOrSentinel(t *testing.T) {
	withID := NewCannotParseFloat("shapes.txt", "shape_pt_lat", "S1", 3, "north")
	withoutID := NewCannotParseInteger("routes.txt", "route_type", "", 2, "bus")

	assert.Equal(t, "S1", withID.EntityID())
	assert.Equal(t, NoID, withoutID.EntityID())

	b, err := json.Marshal(withoutID)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"entityId":"no id"`)
}

func TestNewCannotDownloadArchive(t *testing.T) {
	n := NewCannotDownloadArchive("https://example.com/feed.zip")

	assert.Equal(t, CodeCannotDownloadArchive, n.Code())
	assert.True(t, n.IsError())
	url, _ := n.Get(KeyURL)
	assert.Equal(t, "https://example.com/feed.zip", url)
}
