package jsonschema

import "errors"

// === Network and IO Related Errors ===
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for the specified scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrDataRead is returned when data cannot be read from the specified URL.
	ErrDataRead = errors.New("data read failed")

	// ErrNetworkFetch is returned when there is an error fetching from the URL.
	ErrNetworkFetch = errors.New("network fetch failed")

	// ErrInvalidStatusCode is returned when an invalid HTTP status code is returned.
	ErrInvalidStatusCode = errors.New("invalid http status code")
)

// === Serialization Related Errors ===
var (
	// ErrJSONUnmarshal is returned when there is an error unmarshalling JSON.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrXMLUnmarshal is returned when there is an error unmarshalling XML.
	ErrXMLUnmarshal = errors.New("xml unmarshal failed")

	// ErrYAMLUnmarshal is returned when there is an error unmarshalling YAML.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")
)

// === Schema Compilation and Reference Resolution Related Errors ===
var (
	// ErrSchemaCompilation is returned when a schema compilation fails.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrReferenceResolution is returned when a reference cannot be resolved.
	ErrReferenceResolution = errors.New("reference resolution failed")

	// ErrGlobalReferenceResolution is returned when a global reference cannot be resolved.
	ErrGlobalReferenceResolution = errors.New("global reference resolution failed")

	// ErrJSONPointerSegmentDecode is returned when a segment cannot be decoded.
	ErrJSONPointerSegmentDecode = errors.New("json pointer segment decode failed")

	// ErrJSONPointerSegmentNotFound is returned when a segment is not found in the schema context.
	ErrJSONPointerSegmentNotFound = errors.New("json pointer segment not found")

	// ErrInvalidSchemaType is returned when the JSON schema type is invalid.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrRegexValidation is returned when one or more regex patterns in a schema fail to compile.
	ErrRegexValidation = errors.New("schema contains invalid regex patterns")

	// ErrNilConstValue is returned when trying to unmarshal into a nil ConstValue.
	ErrNilConstValue = errors.New("cannot unmarshal into nil ConstValue")
)

// === Numeric Related Errors ===
var (
	// ErrRatConversion is returned when a value cannot be converted to an exact rational number.
	ErrRatConversion = errors.New("rat conversion failed")

	// ErrUnsupportedRatType is returned when the type is unsupported for conversion to *big.Rat.
	ErrUnsupportedRatType = errors.New("unsupported rat type")
)

// === Format Related Errors ===
var (
	// ErrIPv6AddressFormat is returned when an IPv6 address is not properly formatted.
	ErrIPv6AddressFormat = errors.New("ipv6 address format error")

	// ErrInvalidIPv6 is returned when the IPv6 address is invalid.
	ErrInvalidIPv6 = errors.New("invalid ipv6 address")
)

// === Engine Fault Errors ===
//
// These are distinct from validation outcomes: they signal that the engine itself
// could not complete evaluation, as opposed to the instance failing the schema.
var (
	// ErrRecursionDepthExceeded is returned when schema evaluation exceeds the maximum
	// recursion depth, most commonly caused by a reference cycle with no base case.
	ErrRecursionDepthExceeded = errors.New("recursion depth exceeded during evaluation")

	// ErrUnresolvedReference names the failure to resolve a $ref, $dynamicRef, or
	// $recursiveRef to a schema. No evaluation path in this package returns it;
	// DynamicScope records only ErrRecursionDepthExceeded as a fault.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrUnsupportedDraft is returned by DetectDraft when a $schema dialect URI
	// is not one this engine implements.
	ErrUnsupportedDraft = errors.New("unsupported json schema draft")

	// ErrDraftCannotBeDetected is returned by DetectDraft when the $schema URI
	// is empty.
	ErrDraftCannotBeDetected = errors.New("json schema draft cannot be detected")
)
