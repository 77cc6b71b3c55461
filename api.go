package jsonschema

// EngineFault reports a failure of the evaluation engine itself, as opposed
// to an instance that simply does not satisfy a schema. ValidateSchema
// returns one only when evaluation exceeds the recursion depth ceiling
// (ErrRecursionDepthExceeded); unresolved references and unrecognized
// $schema values do not produce an EngineFault. Callers that only
// care whether an instance is valid can ignore it and inspect the returned
// EvaluationResult; callers that need to distinguish "invalid" from "the
// engine gave up" should check for it with errors.As.
type EngineFault struct {
	Err error
}

func (f *EngineFault) Error() string { return f.Err.Error() }
func (f *EngineFault) Unwrap() error { return f.Err }

// Validate compiles schemaJSON with compiler (the package default compiler
// when nil) and evaluates instance against the result.
func Validate(compiler *Compiler, schemaJSON []byte, instance any) (*EvaluationResult, error) {
	if compiler == nil {
		compiler = GetDefaultCompiler()
	}
	schema, err := compiler.Compile(schemaJSON)
	if err != nil {
		return nil, err
	}
	return ValidateSchema(schema, instance)
}

// ValidateSchema evaluates instance against an already-compiled schema. A
// non-nil error is always an *EngineFault; a schema mismatch is reported
// through the returned EvaluationResult's Errors/IsValid instead.
func ValidateSchema(schema *Schema, instance any) (*EvaluationResult, error) {
	dynamicScope := NewDynamicScope()
	result, _, _ := schema.evaluate(instance, dynamicScope)
	if fault := dynamicScope.Fault(); fault != nil {
		return result, &EngineFault{Err: fault}
	}
	return result, nil
}
