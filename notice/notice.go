package notice

import (
	"encoding/json"
	"maps"
)

// Severity of a notice.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// NoID is reported as the entity id when an entity has no single printable
// identifier, e.g. composite-keyed shape points or attributions.
const NoID = "no id"

// Keys of the kind-specific values.
const (
	KeyFieldName            = "fieldName"
	KeyConflictingFieldName = "conflictingFieldName"
	KeyHeaderName           = "headerName"
	KeyRangeMin             = "rangeMin"
	KeyRangeMax             = "rangeMax"
	KeyActualValue          = "actualValue"
	KeyRawValue             = "rawValue"
	KeyLineNumber           = "lineNumber"
	KeyExpectedLength       = "expectedLength"
	KeyActualLength         = "actualLength"
	KeyReferencedFile       = "referencedFile"
	KeyMaxLength            = "maxLength"
	KeySequence             = "shapePtSequence"
	KeyPrevSequence         = "prevShapePtSequence"
	KeyPrevValue            = "prevValue"
	KeyFolderName           = "folderName"
	KeyURL                  = "url"
	KeyContrastRatio        = "contrastRatio"
)

// Sink receives notices in processing order.
type Sink interface {
	AddNotice(n Notice)
}

// Notice is a single validation finding. The zero value is not meaningful;
// use one of the New* constructors.
type Notice struct {
	filename    string
	severity    Severity
	code        string
	title       string
	description string
	entityID    string
	specific    map[string]any
}

func newNotice(severity Severity, code, filename, entityID, title, description string, kv ...any) Notice {
	n := Notice{
		filename:    filename,
		severity:    severity,
		code:        code,
		title:       title,
		description: description,
		entityID:    entityID,
	}
	if len(kv) > 0 {
		n.specific = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			n.specific[kv[i].(string)] = kv[i+1]
		}
	}
	return n
}

func (n Notice) Filename() string    { return n.filename }
func (n Notice) Severity() Severity  { return n.severity }
func (n Notice) Code() string        { return n.code }
func (n Notice) Title() string       { return n.title }
func (n Notice) Description() string { return n.description }
func (n Notice) EntityID() string    { return n.entityID }

// IsError reports whether the notice has error severity.
func (n Notice) IsError() bool { return n.severity == SeverityError }

// Get returns a kind-specific value.
func (n Notice) Get(key string) (any, bool) {
	v, ok := n.specific[key]
	return v, ok
}

// FieldName returns the offending field, or "" when the kind has none.
func (n Notice) FieldName() string {
	s, _ := n.specific[KeyFieldName].(string)
	return s
}

// Specific returns a copy of the kind-specific values.
func (n Notice) Specific() map[string]any {
	return maps.Clone(n.specific)
}

type noticeJSON struct {
	Code           string         `json:"code"`
	Severity       Severity       `json:"severity"`
	Filename       string         `json:"filename"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	EntityID       string         `json:"entityId,omitempty"`
	NoticeSpecific map[string]any `json:"noticeSpecific,omitempty"`
}

// MarshalJSON renders the notice with every field named.
func (n Notice) MarshalJSON() ([]byte, error) {
	return json.Marshal(noticeJSON{
		Code:           n.code,
		Severity:       n.severity,
		Filename:       n.filename,
		Title:          n.title,
		Description:    n.description,
		EntityID:       n.entityID,
		NoticeSpecific: n.specific,
	})
}
