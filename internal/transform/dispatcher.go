package transform

import (
	"fmt"

	"cleantab/internal/errors"
	"cleantab/pkg/contracts/domain"
)

// Descriptor identifies one (family, type) transformation, its description
// text for the caller's UI, and its applicability rule.
type Descriptor struct {
	Family      Family `json:"family"`
	Type        Type   `json:"type"`
	Description string `json:"description"`

	// needsNumeric marks transforms that require the column to be
	// numeric-coercible; checked against a value sample before applying.
	// Standardize and phone are exempt: both coerce per value and report
	// misses as failure counts instead of rejecting the column.
	needsNumeric bool

	apply func(*domain.Column, Options) domain.Outcome
}

// catalog is the closed set of transformations, in presentation order. The
// set is compiled in; unknown pairs can only come from a caller fabricating
// identifiers and are treated as programming errors.
var catalog = []Descriptor{
	{FamilyName, TypeTitle, "Title Case - Converts text to Title Case (e.g., 'john doe' -> 'John Doe')", false, textFn(TypeTitle)},
	{FamilyName, TypeUpper, "Uppercase - Converts all text to UPPERCASE (e.g., 'john doe' -> 'JOHN DOE')", false, textFn(TypeUpper)},
	{FamilyName, TypeLower, "Lowercase - Converts all text to lowercase (e.g., 'John Doe' -> 'john doe')", false, textFn(TypeLower)},
	{FamilyName, TypeCapitalize, "Capitalize - Capitalizes only the first letter (e.g., 'john doe' -> 'John doe')", false, textFn(TypeCapitalize)},

	{FamilyDate, TypeStandardize, "Standardize - Parse dates to the canonical datetime value type", false, dateFn(TypeStandardize)},
	{FamilyDate, TypeDateISO, "YYYY-MM-DD - Format dates as 'YYYY-MM-DD' (e.g., '2024-12-25')", false, dateFn(TypeDateISO)},
	{FamilyDate, TypeDateUS, "MM/DD/YYYY - Format dates as 'MM/DD/YYYY' (e.g., '12/25/2024')", false, dateFn(TypeDateUS)},
	{FamilyDate, TypeDateEU, "DD/MM/YYYY - Format dates as 'DD/MM/YYYY' (e.g., '25/12/2024')", false, dateFn(TypeDateEU)},
	{FamilyDate, TypeDateYMDSlash, "YYYY/MM/DD - Format dates as 'YYYY/MM/DD' (e.g., '2024/12/25')", false, dateFn(TypeDateYMDSlash)},
	{FamilyDate, TypeDateDMYDash, "DD-MM-YYYY - Format dates as 'DD-MM-YYYY' (e.g., '25-12-2024')", false, dateFn(TypeDateDMYDash)},

	{FamilyState, TypeStandardize, "Standardize - Convert to full state names with proper case (e.g., 'NY' -> 'New York')", false, stateFn(TypeStandardize)},
	{FamilyState, TypeStateName, "State Name - Convert to full state name form (e.g., 'NY' -> 'New York')", false, stateFn(TypeStateName)},
	{FamilyState, TypeStateCode, "State Code - Convert to two-letter state code (e.g., 'New York' -> 'NY')", false, stateFn(TypeStateCode)},

	{FamilyNumeric, TypeStandardize, "Standardize - Strip formatting and convert to pure numeric values (e.g., '$1,000.50' -> 1000.5)", false, numericFn(TypeStandardize)},
	{FamilyNumeric, TypeFormat, "Format - Round numeric values to 2 decimal places (e.g., 100000.456 -> 100000.46)", true, numericFn(TypeFormat)},
	{FamilyNumeric, TypePercentage, "Percentage - Render a 0-1 fraction as a percentage string (e.g., 0.5 -> '50.00%')", true, numericFn(TypePercentage)},
	{FamilyNumeric, TypeMoney, "Money - Format as currency with thousands separators (e.g., 100000 -> '$100,000.00')", true, numericFn(TypeMoney)},
	{FamilyNumeric, TypePhone, "Phone - Extract digits and prefix '+' (e.g., '(123) 456-7890' -> '+1234567890')", false, numericFn(TypePhone)},
	{FamilyNumeric, TypeID, "ID - Truncate to an integer representation, discarding any fraction", true, numericFn(TypeID)},
}

func textFn(typ Type) func(*domain.Column, Options) domain.Outcome {
	return func(col *domain.Column, _ Options) domain.Outcome { return FixTextValues(col, typ) }
}

func dateFn(typ Type) func(*domain.Column, Options) domain.Outcome {
	return func(col *domain.Column, _ Options) domain.Outcome { return FixDateValues(col, typ) }
}

func stateFn(typ Type) func(*domain.Column, Options) domain.Outcome {
	return func(col *domain.Column, _ Options) domain.Outcome { return FixStateValues(col, typ) }
}

func numericFn(typ Type) func(*domain.Column, Options) domain.Outcome {
	return func(col *domain.Column, opts Options) domain.Outcome { return FixNumericValues(col, typ, opts) }
}

// Lookup returns the descriptor for a (family, type) pair.
func Lookup(fam Family, typ Type) (Descriptor, bool) {
	for _, d := range catalog {
		if d.Family == fam && d.Type == typ {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Catalog returns the full transformation catalog in presentation order.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// Apply dispatches a (family, type) transformation onto a column, enforcing
// applicability first. Row count and order are preserved by every
// transformation.
func Apply(col *domain.Column, fam Family, typ Type, opts Options) (domain.Outcome, error) {
	d, ok := Lookup(fam, typ)
	if !ok {
		return domain.Outcome{}, errors.NewUnknownTransform(string(fam), string(typ))
	}

	opts = opts.withDefaults()
	if d.needsNumeric {
		if err := checkNumericApplicable(col, opts.SampleSize); err != nil {
			return domain.Outcome{}, err
		}
	}

	return d.apply(col, opts), nil
}

// checkNumericApplicable parses a sample of non-null values with the
// standardize rules; a single miss makes the numeric family inapplicable.
func checkNumericApplicable(col *domain.Column, sampleSize int) error {
	sampled := 0
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		if _, ok := toFloat(v); !ok {
			return errors.NewInapplicableTransform(col.Name,
				fmt.Sprintf("value %q is not numeric-coercible; numeric transforms need a numeric or numeric-text column", Stringify(v)))
		}
		sampled++
		if sampled >= sampleSize {
			break
		}
	}
	return nil
}
