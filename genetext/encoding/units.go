package encoding

import "fmt"

// InvalidConfigError reports an unrecognized value for one of the encoding
// options. It is a programming/configuration error: callers are expected to
// validate the configuration before encoding a batch.
type InvalidConfigError struct {
	Field string
	Value string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}

// Unit is the granularity at which a field is converted to ids.
type Unit int

const (
	// UnitWords maps each word to its vocabulary id.
	UnitWords Unit = iota
	// UnitChars maps each word to the sequence of its character ids,
	// keeping word boundaries as separate sub-sequences.
	UnitChars
	// UnitRawChars flattens a sentence into one stream of character ids.
	UnitRawChars
)

func (u Unit) String() string {
	switch u {
	case UnitWords:
		return "words"
	case UnitChars:
		return "chars"
	case UnitRawChars:
		return "raw_chars"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

func (u Unit) valid() bool {
	return u == UnitWords || u == UnitChars || u == UnitRawChars
}

// ParseUnit converts a configuration string to a Unit.
func ParseUnit(field, s string) (Unit, error) {
	switch s {
	case "words":
		return UnitWords, nil
	case "chars":
		return UnitChars, nil
	case "raw_chars":
		return UnitRawChars, nil
	}
	return 0, &InvalidConfigError{Field: field, Value: s}
}

// DocForm selects whether a document keeps per-sentence grouping or is
// flattened into one sequence.
type DocForm int

const (
	FormSentences DocForm = iota
	FormText
)

func (f DocForm) String() string {
	switch f {
	case FormSentences:
		return "sentences"
	case FormText:
		return "text"
	}
	return fmt.Sprintf("DocForm(%d)", int(f))
}

func (f DocForm) valid() bool { return f == FormSentences || f == FormText }

// ParseDocForm converts a configuration string to a DocForm.
func ParseDocForm(s string) (DocForm, error) {
	switch s {
	case "sentences":
		return FormSentences, nil
	case "text":
		return FormText, nil
	}
	return 0, &InvalidConfigError{Field: "doc_form", Value: s}
}

// Division selects whether a record contributes one combined entry or one
// entry per sentence to the output.
type Division int

const (
	SingleUnit Division = iota
	MultipleUnits
)

func (d Division) String() string {
	switch d {
	case SingleUnit:
		return "single_unit"
	case MultipleUnits:
		return "multiple_units"
	}
	return fmt.Sprintf("Division(%d)", int(d))
}

func (d Division) valid() bool { return d == SingleUnit || d == MultipleUnits }

// ParseDivision converts a configuration string to a Division.
func ParseDivision(s string) (Division, error) {
	switch s {
	case "single_unit":
		return SingleUnit, nil
	case "multiple_units":
		return MultipleUnits, nil
	}
	return 0, &InvalidConfigError{Field: "divide_document", Value: s}
}

// UnitConfig holds the five encoding choices for one generation run.
type UnitConfig struct {
	GeneUnit      Unit
	VariationUnit Unit
	DocUnit       Unit
	DocForm       DocForm
	Divide        Division
}

// DefaultUnitConfig mirrors the historical defaults: word-level everything,
// flattened document text, one entry per record.
func DefaultUnitConfig() UnitConfig {
	return UnitConfig{
		GeneUnit:      UnitWords,
		VariationUnit: UnitWords,
		DocUnit:       UnitWords,
		DocForm:       FormText,
		Divide:        SingleUnit,
	}
}

// UnitConfigFromStrings parses the string-valued options as they appear in
// config files. It is the single validation step: a UnitConfig obtained here
// is guaranteed to pass Validate.
func UnitConfigFromStrings(geneUnit, variationUnit, docUnit, docForm, divide string) (UnitConfig, error) {
	var cfg UnitConfig
	var err error
	if cfg.GeneUnit, err = ParseUnit("gene_unit", geneUnit); err != nil {
		return UnitConfig{}, err
	}
	if cfg.VariationUnit, err = ParseUnit("variation_unit", variationUnit); err != nil {
		return UnitConfig{}, err
	}
	if cfg.DocUnit, err = ParseUnit("doc_unit", docUnit); err != nil {
		return UnitConfig{}, err
	}
	if cfg.DocForm, err = ParseDocForm(docForm); err != nil {
		return UnitConfig{}, err
	}
	if cfg.Divide, err = ParseDivision(divide); err != nil {
		return UnitConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations holding out-of-range enum values, e.g. ones
// built directly from integer literals.
func (c UnitConfig) Validate() error {
	if !c.GeneUnit.valid() {
		return &InvalidConfigError{Field: "gene_unit", Value: c.GeneUnit.String()}
	}
	if !c.VariationUnit.valid() {
		return &InvalidConfigError{Field: "variation_unit", Value: c.VariationUnit.String()}
	}
	if !c.DocUnit.valid() {
		return &InvalidConfigError{Field: "doc_unit", Value: c.DocUnit.String()}
	}
	if !c.DocForm.valid() {
		return &InvalidConfigError{Field: "doc_form", Value: c.DocForm.String()}
	}
	if !c.Divide.valid() {
		return &InvalidConfigError{Field: "divide_document", Value: c.Divide.String()}
	}
	return nil
}
