package service

import (
	"errors"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/dummygen/dummygen-go/internal/dummy"
	"github.com/dummygen/dummygen-go/internal/model"
)

// GeneratorService handles dummy data generation business logic.
type GeneratorService struct {
	limits dummy.Limits
}

// NewGeneratorService creates a new GeneratorService that clamps requests to limits.
func NewGeneratorService(limits dummy.Limits) *GeneratorService {
	return &GeneratorService{limits: limits}
}

// ParseRequest coerces submitted form values into a typed request. Missing or
// empty values take the documented defaults. Decimal text is rounded the way
// a loop bound would consume it: fields and subModules up ("2.5" runs three
// times), arraySize down ("2.5" makes two copies). Text that is not a number
// becomes 0, so it produces no fields, no nesting and no replication.
func ParseRequest(form url.Values) model.GenerateRequest {
	return model.GenerateRequest{
		Format:     model.ParseFormat(form.Get("format")),
		Fields:     countOrDefault(form.Get("fields"), model.DefaultFields, math.Ceil),
		SubModules: countOrDefault(form.Get("subModules"), model.DefaultSubModules, math.Ceil),
		ArraySize:  countOrDefault(form.Get("arraySize"), model.DefaultArraySize, math.Trunc),
		FieldType:  fieldTypeOrDefault(form.Get("fieldType")),
	}
}

// Generate builds a document for req and encodes it in the requested format.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts, clamped := s.limits.Clamp(dummy.OptionsFromRequest(req))
	if clamped {
		slog.Debug("generation request clamped",
			"fields", req.Fields, "sub_modules", req.SubModules, "array_size", req.ArraySize,
			"clamped_fields", opts.Fields, "clamped_sub_modules", opts.SubModules, "clamped_array_size", opts.ArraySize,
			"max_elements", s.limits.MaxElements)
	}

	doc := dummy.Generate(opts)

	format := model.ParseFormat(string(req.Format))
	if format == model.FormatXML {
		return model.GenerateResponse{
			ContentType: format.ContentType(),
			Body:        []byte(dummy.ToXML(doc, dummy.DefaultRootTag)),
		}, nil
	}

	body, err := dummy.ToJSON(doc)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return model.GenerateResponse{
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

// countOrDefault returns fallback for an empty value and 0 for one that is not
// a number. Numbers are rounded to an integer with round; values beyond the
// int range, including infinities, saturate.
func countOrDefault(v string, fallback int, round func(float64) float64) int {
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if math.IsNaN(f) {
		return 0
	}

	f = round(f)
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

func fieldTypeOrDefault(v string) model.FieldType {
	if v == "" {
		return model.DefaultFieldType
	}
	return model.ParseFieldType(v)
}
