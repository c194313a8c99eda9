package dummy

import "math"

// Limits caps the shape of generated documents. A zero value disables the
// corresponding cap.
type Limits struct {
	MaxFields     int `yaml:"maxFields" validate:"gte=0"`
	MaxSubModules int `yaml:"maxSubModules" validate:"gte=0"`
	MaxArraySize  int `yaml:"maxArraySize" validate:"gte=0"`

	// MaxElements bounds Elements(opts), the number of nodes and leaves the
	// encoders write once shared replicas are expanded.
	MaxElements int `yaml:"maxElements" validate:"gte=0"`
}

// DefaultLimits bounds a response to 100000 written elements, roughly ten
// megabytes of indented UUID JSON.
func DefaultLimits() Limits {
	return Limits{
		MaxFields:     1000,
		MaxSubModules: 6,
		MaxArraySize:  1000,
		MaxElements:   100_000,
	}
}

// Elements returns how many nodes and leaves encoding a document of this
// shape writes. Every replica of a shared node is counted, as the encoders
// write each one in full. The result saturates at math.MaxInt.
func Elements(opts Options) int {
	fields := max(opts.Fields, 0)
	copies := max(opts.ArraySize, 1)

	// written is the size of one Generate result with m levels remaining.
	written := 0
	for m := 0; m <= max(opts.SubModules, 0); m++ {
		node := satAdd(1+fields, satMul(m, written))
		written = satMul(copies, node)
		if written == math.MaxInt {
			break
		}
	}
	return written
}

// Clamp lowers every count in opts that exceeds its limit and reports
// whether anything changed. When the result would still write more than
// MaxElements, nesting is reduced first, then the array size, then the
// field count.
func (l Limits) Clamp(opts Options) (Options, bool) {
	clamped := false
	if l.MaxFields > 0 && opts.Fields > l.MaxFields {
		opts.Fields = l.MaxFields
		clamped = true
	}
	if l.MaxSubModules > 0 && opts.SubModules > l.MaxSubModules {
		opts.SubModules = l.MaxSubModules
		clamped = true
	}
	if l.MaxArraySize > 0 && opts.ArraySize > l.MaxArraySize {
		opts.ArraySize = l.MaxArraySize
		clamped = true
	}

	if l.MaxElements > 0 {
		for Elements(opts) > l.MaxElements {
			switch {
			case opts.SubModules > 0:
				opts.SubModules--
			case opts.ArraySize > 1:
				opts.ArraySize = max(l.MaxElements/(1+max(opts.Fields, 0)), 1)
			default:
				opts.Fields = l.MaxElements - 1
			}
			clamped = true
		}
	}
	return opts, clamped
}

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
