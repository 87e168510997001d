package types

// ValueType identifies the dynamic type of a host value, independent of any
// concrete engine.
type ValueType uint32

const (
	ValueNone ValueType = iota

	ValueBool
	ValueInt32
	ValueUint32
	ValueDouble
	ValueString
	ValueSymbol
	ValueArray
	ValueObject
	ValueFunction

	ValueDate
	ValueError
	ValueRegExp

	ValuePromise

	ValueMap
	ValueSet

	ValueArrayBuffer
	ValueArrayBufferView
	ValueDataView

	ValueEnum

	valueCount
)

// ValueCount is the number of defined value types.
const ValueCount = int(valueCount)

// typeNames is read-only static data shared by error materialization. Names
// are spelled the way the host engine presents them to scripts.
var typeNames = [...]string{
	ValueNone: "?",

	ValueBool:     "Boolean",
	ValueInt32:    "Int32",
	ValueUint32:   "Uint32",
	ValueDouble:   "Number",
	ValueString:   "String",
	ValueSymbol:   "Symbol",
	ValueArray:    "Array",
	ValueObject:   "Object",
	ValueFunction: "Function",

	ValueDate:   "Date",
	ValueError:  "Error",
	ValueRegExp: "RegExp",

	ValuePromise: "Promise",

	ValueMap: "Map",
	ValueSet: "Set",

	ValueArrayBuffer:     "ArrayBuffer",
	ValueArrayBufferView: "ArrayBufferView",
	ValueDataView:        "DataView",

	ValueEnum: "Enum",
}

// TypeName returns the script-visible name of a value type.
func TypeName(t ValueType) string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[ValueNone]
}

func (t ValueType) String() string { return TypeName(t) }

// IsNumber reports whether the value type is one of the host's numeric
// representations.
func (t ValueType) IsNumber() bool {
	return t == ValueInt32 || t == ValueUint32 || t == ValueDouble
}
