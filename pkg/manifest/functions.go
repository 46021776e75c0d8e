package manifest

import (
	"slices"

	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// Kind groups used by the canonical function declarations.
var (
	maxMinKinds = []types.PrimitiveTypeKind{
		types.Byte, types.DateTime, types.Decimal, types.Double, types.Int16, types.Int32, types.Int64,
		types.SByte, types.Single, types.String, types.Binary, types.Time, types.DateTimeOffset,
	}
	avgSumKinds      = []types.PrimitiveTypeKind{types.Decimal, types.Double, types.Int32, types.Int64}
	statisticalKinds = []types.PrimitiveTypeKind{types.Decimal, types.Double, types.Int32, types.Int64}

	substringArgKinds = []types.PrimitiveTypeKind{types.Byte, types.Int16, types.Int32, types.Int64, types.SByte}

	dateKinds = []types.PrimitiveTypeKind{types.DateTimeOffset, types.DateTime}
	timeKinds = []types.PrimitiveTypeKind{types.DateTimeOffset, types.DateTime, types.Time}

	roundingKinds        = []types.PrimitiveTypeKind{types.Single, types.Double, types.Decimal}
	roundWithDigitsKinds = []types.PrimitiveTypeKind{types.Double, types.Decimal}
	absKinds             = []types.PrimitiveTypeKind{
		types.Decimal, types.Double, types.Int16, types.Int32, types.Int64, types.Byte, types.Single,
	}
	powerBaseKinds     = []types.PrimitiveTypeKind{types.Decimal, types.Double, types.Int32, types.Int64}
	powerExponentKinds = []types.PrimitiveTypeKind{types.Decimal, types.Double, types.Int64}

	bitwiseKinds = []types.PrimitiveTypeKind{types.Int16, types.Int32, types.Int64, types.Byte}
)

func (m *Manifest) buildFunctionCatalog() (*[]*types.EdmFunction, int, error) {
	fns, err := buildCanonicalFunctions(m.primitives())
	if err != nil {
		return nil, 0, err
	}
	return &fns, len(fns), nil
}

// buildCanonicalFunctions declares every canonical function. The order of
// declaration is observable: overload resolution prefers the first declared
// of otherwise equal candidates.
func buildCanonicalFunctions(prims *primitiveCatalog) ([]*types.EdmFunction, error) {
	b := newFunctionBuilder(prims)
	declareAggregates(b)
	declareStringFunctions(b)
	declareDateTimeFunctions(b)
	declareMathFunctions(b)
	declareBitwiseFunctions(b)
	b.addFunction(types.Guid, "NewGuid")
	declareSpatialFunctions(b)
	return b.functions()
}

func declareAggregates(b *functionBuilder) {
	forTypes(maxMinKinds, func(k types.PrimitiveTypeKind) {
		b.addAggregate(k, "Max", k)
		b.addAggregate(k, "Min", k)
	})

	forTypes(avgSumKinds, func(k types.PrimitiveTypeKind) {
		b.addAggregate(k, "Avg", k)
		b.addAggregate(k, "Sum", k)
	})

	forTypes(statisticalKinds, func(k types.PrimitiveTypeKind) {
		b.addAggregate(types.Double, "StDev", k)
		b.addAggregate(types.Double, "StDevP", k)
		b.addAggregate(types.Double, "Var", k)
		b.addAggregate(types.Double, "VarP", k)
	})

	// Count and BigCount apply to every kind except the strong spatial ones.
	forAllBaseKinds(func(k types.PrimitiveTypeKind) {
		b.addAggregate(types.Int32, "Count", k)
	})
	forAllBaseKinds(func(k types.PrimitiveTypeKind) {
		b.addAggregate(types.Int64, "BigCount", k)
	})
}

func declareStringFunctions(b *functionBuilder) {
	b.addFunction(types.String, "Trim", p(types.String, "stringArgument"))
	b.addFunction(types.String, "RTrim", p(types.String, "stringArgument"))
	b.addFunction(types.String, "LTrim", p(types.String, "stringArgument"))
	b.addFunction(types.String, "Concat", p(types.String, "string1"), p(types.String, "string2"))
	b.addFunction(types.Int32, "Length", p(types.String, "stringArgument"))

	forTypes(substringArgKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.String, "Substring", p(types.String, "stringArgument"), p(k, "start"), p(k, "length"))
	})
	forTypes(substringArgKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.String, "Left", p(types.String, "stringArgument"), p(k, "length"))
	})
	forTypes(substringArgKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.String, "Right", p(types.String, "stringArgument"), p(k, "length"))
	})

	b.addFunction(types.String, "Replace",
		p(types.String, "stringArgument"), p(types.String, "toReplace"), p(types.String, "replacement"))
	b.addFunction(types.Int32, "IndexOf", p(types.String, "searchString"), p(types.String, "stringToFind"))
	b.addFunction(types.String, "ToUpper", p(types.String, "stringArgument"))
	b.addFunction(types.String, "ToLower", p(types.String, "stringArgument"))
	b.addFunction(types.String, "Reverse", p(types.String, "stringArgument"))
	b.addFunction(types.Boolean, "Contains", p(types.String, "searchedString"), p(types.String, "searchedForString"))
	b.addFunction(types.Boolean, "StartsWith", p(types.String, "stringArgument"), p(types.String, "prefix"))
	b.addFunction(types.Boolean, "EndsWith", p(types.String, "stringArgument"), p(types.String, "suffix"))
}

func declareDateTimeFunctions(b *functionBuilder) {
	forTypes(dateKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.Int32, "Year", p(k, "dateValue"))
		b.addFunction(types.Int32, "Month", p(k, "dateValue"))
		b.addFunction(types.Int32, "Day", p(k, "dateValue"))
		b.addFunction(types.Int32, "DayOfYear", p(k, "dateValue"))
	})
	forTypes(timeKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.Int32, "Hour", p(k, "timeValue"))
		b.addFunction(types.Int32, "Minute", p(k, "timeValue"))
		b.addFunction(types.Int32, "Second", p(k, "timeValue"))
		b.addFunction(types.Int32, "Millisecond", p(k, "timeValue"))
	})

	b.addFunction(types.DateTime, "CurrentDateTime")
	b.addFunction(types.DateTimeOffset, "CurrentDateTimeOffset")
	b.addFunction(types.Int32, "GetTotalOffsetMinutes", p(types.DateTimeOffset, "dateTimeOffsetArgument"))
	b.addFunction(types.DateTime, "CurrentUtcDateTime")

	forTypes(dateKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(k, "TruncateTime", p(k, "dateValue"))
	})

	b.addFunction(types.DateTime, "CreateDateTime",
		p(types.Int32, "year"), p(types.Int32, "month"), p(types.Int32, "day"),
		p(types.Int32, "hour"), p(types.Int32, "minute"), p(types.Double, "second"))
	b.addFunction(types.DateTimeOffset, "CreateDateTimeOffset",
		p(types.Int32, "year"), p(types.Int32, "month"), p(types.Int32, "day"),
		p(types.Int32, "hour"), p(types.Int32, "minute"), p(types.Double, "second"),
		p(types.Int32, "timeZoneOffset"))
	b.addFunction(types.Time, "CreateTime", p(types.Int32, "hour"), p(types.Int32, "minute"), p(types.Double, "second"))

	forTypes(dateKinds, func(k types.PrimitiveTypeKind) {
		for _, name := range []string{"AddYears", "AddMonths", "AddDays"} {
			b.addFunction(k, name, p(k, "dateValue"), p(types.Int32, "addValue"))
		}
	})
	forTypes(timeKinds, func(k types.PrimitiveTypeKind) {
		for _, name := range []string{"AddHours", "AddMinutes", "AddSeconds", "AddMilliseconds", "AddMicroseconds", "AddNanoseconds"} {
			b.addFunction(k, name, p(k, "timeValue"), p(types.Int32, "addValue"))
		}
	})

	forTypes(dateKinds, func(k types.PrimitiveTypeKind) {
		for _, name := range []string{"DiffYears", "DiffMonths", "DiffDays"} {
			b.addFunction(types.Int32, name, p(k, "dateValue1"), p(k, "dateValue2"))
		}
	})
	forTypes(timeKinds, func(k types.PrimitiveTypeKind) {
		for _, name := range []string{"DiffHours", "DiffMinutes", "DiffSeconds", "DiffMilliseconds", "DiffMicroseconds", "DiffNanoseconds"} {
			b.addFunction(types.Int32, name, p(k, "timeValue1"), p(k, "timeValue2"))
		}
	})
}

func declareMathFunctions(b *functionBuilder) {
	forTypes(roundingKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(k, "Round", p(k, "value"))
		b.addFunction(k, "Floor", p(k, "value"))
		b.addFunction(k, "Ceiling", p(k, "value"))
	})

	forTypes(roundWithDigitsKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(k, "Round", p(k, "value"), p(types.Int32, "digits"))
		b.addFunction(k, "Truncate", p(k, "value"), p(types.Int32, "digits"))
	})

	forTypes(absKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(k, "Abs", p(k, "value"))
	})

	forTypes(powerBaseKinds, func(base types.PrimitiveTypeKind) {
		forTypes(powerExponentKinds, func(exp types.PrimitiveTypeKind) {
			b.addFunction(base, "Power", p(base, "baseArgument"), p(exp, "exponent"))
		})
	})
}

func declareBitwiseFunctions(b *functionBuilder) {
	forTypes(bitwiseKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(k, "BitwiseAnd", p(k, "value1"), p(k, "value2"))
		b.addFunction(k, "BitwiseOr", p(k, "value1"), p(k, "value2"))
		b.addFunction(k, "BitwiseXor", p(k, "value1"), p(k, "value2"))
		b.addFunction(k, "BitwiseNot", p(k, "value"))
	})
}

// CanonicalFunctions returns every canonical function in declaration order:
// aggregates, string, date/time, math, bitwise, NewGuid, then spatial. The
// slice is a fresh copy; the functions themselves are shared and immutable.
func (m *Manifest) CanonicalFunctions() []*types.EdmFunction {
	return slices.Clone(m.functions())
}

func (m *Manifest) functions() []*types.EdmFunction {
	return *m.functionCell.get(m.log, m.buildFunctionCatalog)
}

// FunctionsNamed returns the overloads of the canonical function name, in
// declaration order. Matching is case sensitive.
func (m *Manifest) FunctionsNamed(name string) []*types.EdmFunction {
	var out []*types.EdmFunction
	for _, fn := range m.functions() {
		if fn.Name() == name {
			out = append(out, fn)
		}
	}
	return out
}
