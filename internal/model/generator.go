package model

// Format selects the encoding of a generated document.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// FieldType selects how leaf values are produced.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeUUID    FieldType = "uuid"
	FieldTypeEmail   FieldType = "email"
)

// Defaults applied when a form field is missing or empty.
const (
	DefaultFields     = 5
	DefaultSubModules = 0
	DefaultArraySize  = 1
	DefaultFieldType  = FieldTypeString
	DefaultFormat     = FormatJSON
)

// ParseFormat maps any value other than "xml" to JSON.
func ParseFormat(s string) Format {
	if Format(s) == FormatXML {
		return FormatXML
	}
	return FormatJSON
}

// ParseFieldType maps unknown values to the string type.
func ParseFieldType(s string) FieldType {
	switch ft := FieldType(s); ft {
	case FieldTypeNumber, FieldTypeBoolean, FieldTypeUUID, FieldTypeEmail:
		return ft
	default:
		return FieldTypeString
	}
}

// ContentType returns the MIME type a document of this format is served with.
func (f Format) ContentType() string {
	if f == FormatXML {
		return "application/xml"
	}
	return "application/json"
}

// GenerateRequest represents a dummy data generation request after coercion.
// Counts may be zero or negative; the generator treats those as no iterations.
type GenerateRequest struct {
	Format     Format    `json:"format"`
	Fields     int       `json:"fields"`
	SubModules int       `json:"subModules"`
	ArraySize  int       `json:"arraySize"`
	FieldType  FieldType `json:"fieldType"`
}

// DefaultGenerateRequest returns the request used when no form fields are sent.
func DefaultGenerateRequest() GenerateRequest {
	return GenerateRequest{
		Format:     DefaultFormat,
		Fields:     DefaultFields,
		SubModules: DefaultSubModules,
		ArraySize:  DefaultArraySize,
		FieldType:  DefaultFieldType,
	}
}

// GenerateResponse holds an encoded document ready to be written.
type GenerateResponse struct {
	ContentType string
	Body        []byte
}
