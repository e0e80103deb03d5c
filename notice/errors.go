package notice

import "fmt"

// Error notice codes.
const (
	CodeCannotUnzipInputArchive         = "E001"
	CodeMissingRequiredFile             = "E002"
	CodeMissingHeader                   = "E003"
	CodeInvalidRowLength                = "E004"
	CodeCannotParseFloat                = "E005"
	CodeCannotParseInteger              = "E006"
	CodeMissingRequiredValue            = "E007"
	CodeIntegerFieldValueOutOfRange     = "E008"
	CodeFloatFieldValueOutOfRange       = "E009"
	CodeInvalidURL                      = "E010"
	CodeInvalidTimezone                 = "E011"
	CodeUnexpectedEnumValue             = "E012"
	CodeIllegalFieldValueCombination    = "E013"
	CodeDuplicatedEntity                = "E014"
	CodeInvalidColor                    = "E015"
	CodeInvalidEmail                    = "E016"
	CodeInvalidLang                     = "E017"
	CodeUnknownReference                = "E018"
	CodeMissingShortAndLongNameForRoute = "E019"
	CodeDecreasingShapeDistance         = "E020"
	CodeCannotDownloadArchive           = "E021"
)

func NewCannotUnzipInputArchive(filename string) Notice {
	return newNotice(SeverityError, CodeCannotUnzipInputArchive, filename, "",
		"Unzip failure",
		fmt.Sprintf("Could not unzip archive `%s`", filename))
}

func NewMissingRequiredFile(filename string) Notice {
	return newNotice(SeverityError, CodeMissingRequiredFile, filename, "",
		"Missing required file",
		fmt.Sprintf("Required file `%s` was not found", filename))
}

func NewMissingHeader(filename, header string) Notice {
	return newNotice(SeverityError, CodeMissingHeader, filename, "",
		"Missing required header",
		fmt.Sprintf("Header `%s` is required in `%s`", header, filename),
		KeyHeaderName, header)
}

func NewInvalidRowLength(filename string, line, expected, actual int) Notice {
	return newNotice(SeverityError, CodeInvalidRowLength, filename, "",
		"Invalid row length",
		fmt.Sprintf("Row %d has %d values, header has %d", line, actual, expected),
		KeyLineNumber, line, KeyExpectedLength, expected, KeyActualLength, actual)
}

// NewCannotParseFloat reports a cell that is not a finite float. entityID is
// the id of the row, NoID when the row has none.
func NewCannotParseFloat(filename, field, entityID string, line int, raw string) Notice {
	return newNotice(SeverityError, CodeCannotParseFloat, filename, orNoID(entityID),
		"Invalid float value",
		fmt.Sprintf("Value `%s` of field `%s` at line %d can not be parsed as a float", raw, field, line),
		KeyFieldName, field, KeyLineNumber, line, KeyRawValue, raw)
}

func NewCannotParseInteger(filename, field, entityID string, line int, raw string) Notice {
	return newNotice(SeverityError, CodeCannotParseInteger, filename, orNoID(entityID),
		"Invalid integer value",
		fmt.Sprintf("Value `%s` of field `%s` at line %d can not be parsed as an integer", raw, field, line),
		KeyFieldName, field, KeyLineNumber, line, KeyRawValue, raw)
}

// NewMissingRequiredValue reports a required field with no value. entityID
// falls back to NoID when empty.
func NewMissingRequiredValue(filename, field, entityID string) Notice {
	entityID = orNoID(entityID)
	return newNotice(SeverityError, CodeMissingRequiredValue, filename, entityID,
		"Missing required value",
		fmt.Sprintf("Missing value for required field `%s` in entity with id `%s`", field, entityID),
		KeyFieldName, field)
}

// NewIntegerFieldValueOutOfRange reports an integer outside [min, max].
func NewIntegerFieldValueOutOfRange(filename, field, entityID string, min, max, actual int) Notice {
	entityID = orNoID(entityID)
	return newNotice(SeverityError, CodeIntegerFieldValueOutOfRange, filename, entityID,
		"Out of range integer value",
		fmt.Sprintf("Invalid value for field `%s` of entity with id `%s`: %d not in [%d, %d]",
			field, entityID, actual, min, max),
		KeyFieldName, field, KeyRangeMin, min, KeyRangeMax, max, KeyActualValue, actual)
}

// NewFloatFieldValueOutOfRange reports a float outside [min, max].
func NewFloatFieldValueOutOfRange(filename, field, entityID string, min, max, actual float64) Notice {
	entityID = orNoID(entityID)
	return newNotice(SeverityError, CodeFloatFieldValueOutOfRange, filename, entityID,
		"Out of range float value",
		fmt.Sprintf("Invalid value for field `%s` of entity with id `%s`: %g not in [%g, %g]",
			field, entityID, actual, min, max),
		KeyFieldName, field, KeyRangeMin, min, KeyRangeMax, max, KeyActualValue, actual)
}

func NewInvalidURL(filename, field, entityID, value string) Notice {
	return newInvalidValue(CodeInvalidURL, "Invalid url", filename, field, entityID, value)
}

func NewInvalidTimezone(filename, field, entityID, value string) Notice {
	return newInvalidValue(CodeInvalidTimezone, "Invalid timezone", filename, field, entityID, value)
}

func NewInvalidColor(filename, field, entityID, value string) Notice {
	return newInvalidValue(CodeInvalidColor, "Invalid color", filename, field, entityID, value)
}

func NewInvalidEmail(filename, field, entityID, value string) Notice {
	return newInvalidValue(CodeInvalidEmail, "Invalid email", filename, field, entityID, value)
}

func NewInvalidLang(filename, field, entityID, value string) Notice {
	return newInvalidValue(CodeInvalidLang, "Invalid language code", filename, field, entityID, value)
}

func newInvalidValue(code, title, filename, field, entityID, value string) Notice {
	entityID = orNoID(entityID)
	return newNotice(SeverityError, code, filename, entityID, title,
		fmt.Sprintf("Value `%s` of field `%s` in entity with id `%s` is not valid", value, field, entityID),
		KeyFieldName, field, KeyActualValue, value)
}

func NewUnexpectedEnumValue(filename, field, entityID string, value int) Notice {
	entityID = orNoID(entityID)
	return newNotice(SeverityError, CodeUnexpectedEnumValue, filename, entityID,
		"Unexpected enum value",
		fmt.Sprintf("Value %d of field `%s` in entity with id `%s` is not an expected enum value", value, field, entityID),
		KeyFieldName, field, KeyActualValue, value)
}

// NewIllegalFieldValueCombination reports two fields whose values conflict.
func NewIllegalFieldValueCombination(filename, field, conflictingField, entityID string) Notice {
	entityID = orNoID(entityID)
	return newNotice(SeverityError, CodeIllegalFieldValueCombination, filename, entityID,
		"Conflicting field values",
		fmt.Sprintf("Conflicting field values for field `%s` and field `%s` in entity with id `%s`",
			field, conflictingField, entityID),
		KeyFieldName, field, KeyConflictingFieldName, conflictingField)
}

// NewDuplicatedEntity reports an entity whose identity key is already stored.
func NewDuplicatedEntity(filename, field, entityID string) Notice {
	entityID = orNoID(entityID)
	return newNotice(SeverityError, CodeDuplicatedEntity, filename, entityID,
		"Entity must be unique",
		fmt.Sprintf("Entity with id `%s` has a duplicated value for field `%s`", entityID, field),
		KeyFieldName, field)
}

// NewUnknownReference reports a field pointing at an entity that does not
// exist in referencedFile.
func NewUnknownReference(filename, field, entityID, referencedFile, value string) Notice {
	entityID = orNoID(entityID)
	return newNotice(SeverityError, CodeUnknownReference, filename, entityID,
		"Unknown reference",
		fmt.Sprintf("Value `%s` of field `%s` in entity with id `%s` does not match any entity in `%s`",
			value, field, entityID, referencedFile),
		KeyFieldName, field, KeyReferencedFile, referencedFile, KeyActualValue, value)
}

func NewMissingShortAndLongNameForRoute(filename, entityID string) Notice {
	return newNotice(SeverityError, CodeMissingShortAndLongNameForRoute, filename, orNoID(entityID),
		"Missing route short name and long name",
		fmt.Sprintf("Route with id `%s` has neither route_short_name nor route_long_name", orNoID(entityID)))
}

// NewDecreasingShapeDistance reports a shape point whose shape_dist_traveled
// is not greater than the one of the previous point of the shape.
func NewDecreasingShapeDistance(filename, shapeID string, seq int, dist float64, prevSeq int, prevDist float64) Notice {
	return newNotice(SeverityError, CodeDecreasingShapeDistance, filename, orNoID(shapeID),
		"Decreasing shape distance",
		fmt.Sprintf("Shape `%s`: shape_dist_traveled %g at sequence %d is not greater than %g at sequence %d",
			orNoID(shapeID), dist, seq, prevDist, prevSeq),
		KeyFieldName, "shape_dist_traveled", KeySequence, seq, KeyActualValue, dist,
		KeyPrevSequence, prevSeq, KeyPrevValue, prevDist)
}

// NewCannotDownloadArchive reports a feed URL that could not be fetched.
func NewCannotDownloadArchive(url string) Notice {
	return newNotice(SeverityError, CodeCannotDownloadArchive, url, "",
		"Download failure",
		fmt.Sprintf("Could not download archive from `%s`", url),
		KeyURL, url)
}

func orNoID(id string) string {
	if id == "" {
		return NoID
	}
	return id
}
