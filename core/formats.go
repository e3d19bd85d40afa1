package core

import "strings"

// FormatFlags is a set of inline formats. The zero value is empty.
type FormatFlags uint8

const (
	flagBold FormatFlags = 1 << iota
	flagItalic
	flagUnderline
)

func flagFor(format FormatType) FormatFlags {
	switch format {
	case FormatBold:
		return flagBold
	case FormatItalic:
		return flagItalic
	case FormatUnderline:
		return flagUnderline
	}
	return 0
}

// NewFormatFlags builds a set from formats.
func NewFormatFlags(formats ...FormatType) FormatFlags {
	var f FormatFlags
	for _, format := range formats {
		f = f.With(format)
	}
	return f
}

func (f FormatFlags) Has(format FormatType) bool {
	flag := flagFor(format)
	return flag != 0 && f&flag != 0
}

func (f FormatFlags) With(format FormatType) FormatFlags {
	return f | flagFor(format)
}

func (f FormatFlags) Without(format FormatType) FormatFlags {
	return f &^ flagFor(format)
}

// Toggle flips membership of format.
func (f FormatFlags) Toggle(format FormatType) FormatFlags {
	if f.Has(format) {
		return f.Without(format)
	}
	return f.With(format)
}

func (f FormatFlags) IsEmpty() bool {
	return f == 0
}

// List returns the members in toolbar order.
func (f FormatFlags) List() []FormatType {
	var out []FormatType
	for _, format := range Formats {
		if f.Has(format) {
			out = append(out, format)
		}
	}
	return out
}

func (f FormatFlags) String() string {
	list := f.List()
	parts := make([]string, len(list))
	for i, format := range list {
		parts[i] = string(format)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
