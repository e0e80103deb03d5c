package notice

import "fmt"

// Warning notice codes.
const (
	CodeNonStandardHeader              = "W001"
	CodeExtraFileFound                 = "W002"
	CodeRouteShortNameTooLong          = "W003"
	CodeRouteLongNameEqualsShortName   = "W004"
	CodeRouteLongNameContainsShortName = "W005"
	CodeSameNameAndDescriptionForRoute = "W006"
	CodeInputZipContainsFolder         = "W007"
	CodeNonASCIIOrNonPrintableChar     = "W008"
	CodeRouteColorContrast             = "W009"
)

func NewNonStandardHeader(filename, header string) Notice {
	return newNotice(SeverityWarning, CodeNonStandardHeader, filename, "",
		"Non standard header",
		fmt.Sprintf("Unexpected header `%s` in `%s`", header, filename),
		KeyHeaderName, header)
}

func NewExtraFileFound(filename string) Notice {
	return newNotice(SeverityWarning, CodeExtraFileFound, filename, "",
		"Extra file found",
		fmt.Sprintf("File `%s` is not a known GTFS schedule file", filename))
}

func NewRouteShortNameTooLong(filename, entityID string, length, max int) Notice {
	return newNotice(SeverityWarning, CodeRouteShortNameTooLong, filename, orNoID(entityID),
		"Route short name too long",
		fmt.Sprintf("route_short_name of route `%s` has %d characters, more than %d", orNoID(entityID), length, max),
		KeyFieldName, "route_short_name", KeyActualLength, length, KeyMaxLength, max)
}

func NewRouteLongNameEqualsShortName(filename, entityID string) Notice {
	return newNotice(SeverityWarning, CodeRouteLongNameEqualsShortName, filename, orNoID(entityID),
		"Route long name equals short name",
		fmt.Sprintf("route_long_name and route_short_name of route `%s` are the same", orNoID(entityID)),
		KeyFieldName, "route_long_name", KeyConflictingFieldName, "route_short_name")
}

func NewRouteLongNameContainsShortName(filename, entityID string) Notice {
	return newNotice(SeverityWarning, CodeRouteLongNameContainsShortName, filename, orNoID(entityID),
		"Route long name contains short name",
		fmt.Sprintf("route_long_name of route `%s` contains its route_short_name", orNoID(entityID)),
		KeyFieldName, "route_long_name", KeyConflictingFieldName, "route_short_name")
}

func NewSameNameAndDescriptionForRoute(filename, entityID, nameField string) Notice {
	return newNotice(SeverityWarning, CodeSameNameAndDescriptionForRoute, filename, orNoID(entityID),
		"Same name and description for route",
		fmt.Sprintf("route_desc of route `%s` repeats its %s", orNoID(entityID), nameField),
		KeyFieldName, "route_desc", KeyConflictingFieldName, nameField)
}

// NewInputZipContainsFolder reports a folder inside the feed archive. Files
// in it are still read as if they were at the root.
func NewInputZipContainsFolder(filename, folder string) Notice {
	return newNotice(SeverityWarning, CodeInputZipContainsFolder, filename, "",
		"Input zip contains folder",
		fmt.Sprintf("Archive `%s` contains folder `%s`", filename, folder),
		KeyFolderName, folder)
}

// NewNonASCIIOrNonPrintableChar reports an id value with characters outside
// printable ASCII.
func NewNonASCIIOrNonPrintableChar(filename, field, entityID, value string) Notice {
	return newNotice(SeverityWarning, CodeNonASCIIOrNonPrintableChar, filename, orNoID(entityID),
		"Non ASCII or non printable character",
		fmt.Sprintf("Value %q of field `%s` contains non ASCII or non printable characters", value, field),
		KeyFieldName, field, KeyActualValue, value)
}

func NewRouteColorContrast(filename, entityID string, ratio float64) Notice {
	return newNotice(SeverityWarning, CodeRouteColorContrast, filename, orNoID(entityID),
		"Insufficient route color contrast",
		fmt.Sprintf("route_color and route_text_color of route `%s` have a contrast ratio of %.2f", orNoID(entityID), ratio),
		KeyFieldName, "route_text_color", KeyConflictingFieldName, "route_color", KeyContrastRatio, ratio)
}
