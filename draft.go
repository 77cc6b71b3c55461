package jsonschema

import "strings"

// Draft identifies a JSON Schema specification dialect.
type Draft string

// Supported dialects, oldest first.
const (
	Draft4       Draft = "draft4"
	Draft6       Draft = "draft6"
	Draft7       Draft = "draft7"
	Draft2019_09 Draft = "2019-09"
	Draft2020_12 Draft = "2020-12"
)

// schemaURIs maps the canonical $schema URI (and a couple of common variants)
// to the Draft it identifies.
var schemaURIs = map[string]Draft{
	"http://json-schema.org/draft-04/schema#":  Draft4,
	"https://json-schema.org/draft-04/schema#": Draft4,
	"http://json-schema.org/draft-06/schema#":  Draft6,
	"https://json-schema.org/draft-06/schema#": Draft6,
	"http://json-schema.org/draft-07/schema#":  Draft7,
	"https://json-schema.org/draft-07/schema#": Draft7,
	"https://json-schema.org/draft/2019-09/schema": Draft2019_09,
	"https://json-schema.org/draft/2020-12/schema": Draft2020_12,
}

// DetectDraft maps a schema's $schema URI to a Draft. It returns
// ErrDraftCannotBeDetected if uri is empty and ErrUnsupportedDraft if it is
// not one of the recognized dialect URIs.
func DetectDraft(uri string) (Draft, error) {
	if uri == "" {
		return "", ErrDraftCannotBeDetected
	}

	uri = strings.TrimSuffix(uri, "#")
	if draft, ok := schemaURIs[uri+"#"]; ok {
		return draft, nil
	}
	if draft, ok := schemaURIs[uri]; ok {
		return draft, nil
	}

	return "", ErrUnsupportedDraft
}

// draftProfile captures the per-dialect behavioral differences the evaluation
// engine must honor. Every Schema is evaluated under the profile resolved
// from its own $schema keyword, falling back to the enclosing schema's draft
// and then to the compiler's configured default Draft when $schema is absent.
type draftProfile struct {
	// RefSiblingsIgnored is true for Draft 4-7, where a "$ref" alongside other
	// keywords in the same schema object causes those siblings to be ignored.
	// From Draft 2019-09 onward $ref is an ordinary applicator and siblings apply.
	RefSiblingsIgnored bool

	// BooleanExclusiveBounds is true for Draft 4, where exclusiveMinimum/
	// exclusiveMaximum are booleans modifying minimum/maximum rather than
	// standalone numeric bounds.
	BooleanExclusiveBounds bool

	// DependenciesKeyword is true for Draft 4-7, which use a single polymorphic
	// "dependencies" keyword instead of the split dependentRequired/dependentSchemas.
	DependenciesKeyword bool

	// ContentAssertion is true only for Draft 7, the sole dialect in which
	// contentEncoding/contentMediaType/contentSchema are assertions rather
	// than annotations.
	ContentAssertion bool

	// RecursiveRefSupported is true for Draft 2019-09, which introduced
	// $recursiveRef/$recursiveAnchor before they were replaced by
	// $dynamicRef/$dynamicAnchor in 2020-12.
	RecursiveRefSupported bool

	// FormatAssertionByDefault is true for Draft 4-7, where "format" is an
	// assertion unless the implementation opts out; from Draft 2019-09 onward
	// format is an annotation unless the format-assertion vocabulary is requested.
	FormatAssertionByDefault bool

	// StrictIntegerFloat is true for Draft 4, where a float with a zero
	// fractional part (e.g. 1.0) only satisfies "type":"integer" once its
	// magnitude overflows the platform int64 range, the bignum-integer
	// accommodation. Draft 6 onward accept any zero-fractional numeric as an
	// integer regardless of magnitude.
	StrictIntegerFloat bool
}

// profileFor resolves the behavioral profile for a draft, defaulting to the
// 2020-12 profile for an empty or unrecognized value.
func profileFor(draft Draft) draftProfile {
	switch draft {
	case Draft4:
		return draftProfile{
			RefSiblingsIgnored:       true,
			BooleanExclusiveBounds:   true,
			DependenciesKeyword:      true,
			FormatAssertionByDefault: true,
			StrictIntegerFloat:       true,
		}
	case Draft6:
		return draftProfile{
			RefSiblingsIgnored:       true,
			DependenciesKeyword:      true,
			FormatAssertionByDefault: true,
		}
	case Draft7:
		return draftProfile{
			RefSiblingsIgnored:       true,
			DependenciesKeyword:      true,
			ContentAssertion:         true,
			FormatAssertionByDefault: true,
		}
	case Draft2019_09:
		return draftProfile{
			RecursiveRefSupported: true,
		}
	default: // Draft2020_12 and unknown/empty
		return draftProfile{}
	}
}

// effectiveDraft returns the draft that governs evaluation of s: its own
// $schema if present and recognized, otherwise its parent schema's effective
// draft, otherwise (at the root) the owning compiler's configured default,
// otherwise Draft2020_12.
func (s *Schema) effectiveDraft() Draft {
	if s.Schema != "" {
		if draft, err := DetectDraft(s.Schema); err == nil {
			return draft
		}
	}
	if s.parent != nil {
		return s.parent.effectiveDraft()
	}
	if c := s.GetCompiler(); c != nil && c.Draft != "" {
		return c.Draft
	}
	return Draft2020_12
}
