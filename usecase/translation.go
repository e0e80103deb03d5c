package usecase

import (
	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

type TranslationRepository interface {
	AddTranslation(t gtfs.Translation) (gtfs.Translation, bool)
}

// ProcessParsedTranslation processes rows of translations.txt.
type ProcessParsedTranslation struct {
	sink    notice.Sink
	repo    TranslationRepository
	builder *gtfs.TranslationBuilder
}

func NewProcessParsedTranslation(sink notice.Sink, repo TranslationRepository, builder *gtfs.TranslationBuilder) *ProcessParsedTranslation {
	mustDeps(sink, repo, builder, "ProcessParsedTranslation")
	return &ProcessParsedTranslation{sink: sink, repo: repo, builder: builder}
}

func (p *ProcessParsedTranslation) Execute(rec ParsedEntity) Outcome {
	res := p.builder.
		TableName(str(rec.Get("table_name"))).
		FieldName(str(rec.Get("field_name"))).
		Language(str(rec.Get("language"))).
		Translation(str(rec.Get("translation"))).
		RecordID(str(rec.Get("record_id"))).
		RecordSubID(str(rec.Get("record_sub_id"))).
		FieldValue(str(rec.Get("field_value"))).
		Build()
	return process(p.sink, res, p.repo.AddTranslation, func(gtfs.Translation) notice.Notice {
		return notice.NewDuplicatedEntity(gtfs.TranslationFile, "field_name", rec.EntityID())
	})
}
