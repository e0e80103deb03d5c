package gtfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

func validTranslationBuilder() *TranslationBuilder {
	return NewTranslationBuilder().
		TableName(Some("stops")).
		FieldName(Some("stop_name")).
		Language(Some("fr")).
		Translation(Some("Gare Centrale")).
		RecordID(Some("S1"))
}

func TestTranslationBuilder_ValidRoundTrip(t *testing.T) {
	tr, ok := validTranslationBuilder().Build().Entity()

	require.True(t, ok)
	assert.Equal(t, "stops", tr.TableName())
	assert.Equal(t, "stop_name", tr.FieldName())
	assert.Equal(t, "fr", tr.Language())
	assert.Equal(t, "Gare Centrale", tr.Translation())
	assert.Equal(t, Some("S1"), tr.RecordID())
	assert.False(t, tr.RecordSubID().IsPresent())
	assert.False(t, tr.FieldValue().IsPresent())
}

func TestTranslationBuilder_FeedInfoHasNoRecord(t *testing.T) {
	res := NewTranslationBuilder().
		TableName(Some(FeedInfoTable)).
		FieldName(Some("feed_publisher_name")).
		Language(Some("de")).
		Translation(Some("Verkehrsbetrieb")).
		Build()
	require.True(t, res.IsSuccess())

	res = NewTranslationBuilder().
		TableName(Some(FeedInfoTable)).
		FieldName(Some("feed_publisher_name")).
		Language(Some("de")).
		Translation(Some("Verkehrsbetrieb")).
		FieldValue(Some("Transit")).
		Build()
	notices := res.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, notice.CodeIllegalFieldValueCombination, notices[0].Code())
	assert.Equal(t, "field_value", notices[0].FieldName())
}

func TestTranslationBuilder_Notices(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(b *TranslationBuilder)
		wantCode  string
		wantField string
	}{
		{
			name:      "missing translation",
			mutate:    func(b *TranslationBuilder) { b.Translation(None[string]()) },
			wantCode:  notice.CodeMissingRequiredValue,
			wantField: "translation",
		},
		{
			name:      "invalid language",
			mutate:    func(b *TranslationBuilder) { b.Language(Some("not a language")) },
			wantCode:  notice.CodeInvalidLang,
			wantField: "language",
		},
		{
			name:      "record id and field value",
			mutate:    func(b *TranslationBuilder) { b.FieldValue(Some("Central Station")) },
			wantCode:  notice.CodeIllegalFieldValueCombination,
			wantField: "record_id",
		},
		{
			name:      "no record reference",
			mutate:    func(b *TranslationBuilder) { b.RecordID(None[string]()) },
			wantCode:  notice.CodeMissingRequiredValue,
			wantField: "record_id",
		},
		{
			name: "sub id without record id",
			mutate: func(b *TranslationBuilder) {
				b.RecordID(None[string]()).RecordSubID(Some("1")).FieldValue(Some("Central Station"))
			},
			wantCode:  notice.CodeIllegalFieldValueCombination,
			wantField: "record_sub_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validTranslationBuilder()
			tt.mutate(b)
			notices := b.Build().Notices()
			require.Len(t, notices, 1)
			assert.Equal(t, tt.wantCode, notices[0].Code())
			assert.Equal(t, tt.wantField, notices[0].FieldName())
		})
	}
}

func TestTranslation_KeyDistinguishesLanguage(t *testing.T) {
	fr, _ := validTranslationBuilder().Build().Entity()
	de, _ := validTranslationBuilder().Language(Some("de")).Build().Entity()
	again, _ := validTranslationBuilder().Translation(Some("Hauptbahnhof")).Build().Entity()

	assert.NotEqual(t, fr.Key(), de.Key())
	assert.Equal(t, fr.Key(), again.Key())
}
