package gtfs

import (
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

const TranslationFile = "translations.txt"

// FeedInfoTable is the table_name of translations that apply to the single
// row of feed_info.txt.
const FeedInfoTable = "feed_info"

// Translation is a row of translations.txt. Rows of feed_info carry no
// record reference; other rows point at a record either by record_id (and
// record_sub_id) or by field_value.
type Translation struct {
	tableName   string
	fieldName   string
	language    string
	translation string
	recordID    Optional[string]
	recordSubID Optional[string]
	fieldValue  Optional[string]
}

func (t Translation) TableName() string             { return t.tableName }
func (t Translation) FieldName() string             { return t.fieldName }
func (t Translation) Language() string              { return t.language }
func (t Translation) Translation() string           { return t.translation }
func (t Translation) RecordID() Optional[string]    { return t.recordID }
func (t Translation) RecordSubID() Optional[string] { return t.recordSubID }
func (t Translation) FieldValue() Optional[string]  { return t.fieldValue }

// Key identifies the translated value: one translation per table, field,
// language and record.
func (t Translation) Key() string {
	var sb strings.Builder
	for _, p := range []Optional[string]{
		Some(t.tableName), Some(t.fieldName), Some(t.language),
		t.recordID, t.recordSubID, t.fieldValue,
	} {
		writeKeyPart(&sb, p)
	}
	return sb.String()
}

// TranslationBuilder builds Translation values.
type TranslationBuilder struct {
	tableName   Optional[string]
	fieldName   Optional[string]
	language    Optional[string]
	translation Optional[string]
	recordID    Optional[string]
	recordSubID Optional[string]
	fieldValue  Optional[string]
	notices     []notice.Notice
}

func NewTranslationBuilder() *TranslationBuilder { return &TranslationBuilder{} }

func (b *TranslationBuilder) TableName(v Optional[string]) *TranslationBuilder {
	b.tableName = v
	return b
}

func (b *TranslationBuilder) FieldName(v Optional[string]) *TranslationBuilder {
	b.fieldName = v
	return b
}

func (b *TranslationBuilder) Language(v Optional[string]) *TranslationBuilder {
	b.language = v
	return b
}

func (b *TranslationBuilder) Translation(v Optional[string]) *TranslationBuilder {
	b.translation = v
	return b
}

func (b *TranslationBuilder) RecordID(v Optional[string]) *TranslationBuilder {
	b.recordID = v
	return b
}

func (b *TranslationBuilder) RecordSubID(v Optional[string]) *TranslationBuilder {
	b.recordSubID = v
	return b
}

func (b *TranslationBuilder) FieldValue(v Optional[string]) *TranslationBuilder {
	b.fieldValue = v
	return b
}

// Build validates the recorded values. feed_info rows must not reference a
// record; other rows need exactly one of record_id and field_value, and
// record_sub_id only together with record_id.
func (b *TranslationBuilder) Build() BuildResult[Translation] {
	b.notices = b.notices[:0]
	c := collector{filename: TranslationFile, entityID: b.recordID.OrElse(""), notices: &b.notices}

	c.requireString("table_name", b.tableName)
	c.requireString("field_name", b.fieldName)
	c.requireString("language", b.language)
	if lang, ok := b.language.Get(); ok && !isValidLang(lang) {
		c.add(notice.NewInvalidLang(TranslationFile, "language", c.entityID, lang))
	}
	c.requireString("translation", b.translation)

	if b.tableName.OrElse("") == FeedInfoTable {
		for _, f := range []struct {
			field string
			value Optional[string]
		}{
			{"record_id", b.recordID},
			{"record_sub_id", b.recordSubID},
			{"field_value", b.fieldValue},
		} {
			if f.value.IsPresent() {
				c.add(notice.NewIllegalFieldValueCombination(TranslationFile, f.field, "table_name", c.entityID))
			}
		}
	} else if b.tableName.IsPresent() {
		switch {
		case b.recordID.IsPresent() && b.fieldValue.IsPresent():
			c.add(notice.NewIllegalFieldValueCombination(TranslationFile, "record_id", "field_value", c.entityID))
		case !b.recordID.IsPresent() && !b.fieldValue.IsPresent():
			c.add(notice.NewMissingRequiredValue(TranslationFile, "record_id", c.entityID))
		}
		if b.recordSubID.IsPresent() && !b.recordID.IsPresent() {
			c.add(notice.NewIllegalFieldValueCombination(TranslationFile, "record_sub_id", "record_id", c.entityID))
		}
	}

	if len(b.notices) > 0 {
		return Failed[Translation](b.notices)
	}
	return Built(Translation{
		tableName:   b.tableName.OrElse(""),
		fieldName:   b.fieldName.OrElse(""),
		language:    b.language.OrElse(""),
		translation: b.translation.OrElse(""),
		recordID:    b.recordID,
		recordSubID: b.recordSubID,
		fieldValue:  b.fieldValue,
	})
}
