package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
)

// Size is the size label of a product variant.
type Size string

const (
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

const sizeType = "Size"

// Sizes lists the legal sizes in declaration order. Callers must not treat
// the position as a small-to-large ranking.
func Sizes() []Size {
	return []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL}
}

func ParseSize(s string) (Size, error) {
	sz := Size(s)
	if !sz.IsValid() {
		return "", invalidSize(s)
	}
	return sz, nil
}

func (s Size) IsValid() bool {
	switch s {
	case SizeS, SizeM, SizeL, SizeXL, SizeXXL:
		return true
	default:
		return false
	}
}

func (s Size) String() string { return string(s) }

func (s Size) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, invalidSize(string(s))
	}
	return []byte(s), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	sz, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = sz
	return nil
}

func (s Size) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, invalidSize(string(s))
	}
	return string(s), nil
}

func (s *Size) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	case nil:
		return invalidSize("")
	default:
		return fmt.Errorf("scan %s: unsupported source type %T", sizeType, src)
	}
}

func invalidSize(v string) error {
	all := Sizes()
	allowed := make([]string, 0, len(all))
	for _, sz := range all {
		allowed = append(allowed, string(sz))
	}
	return enumeration.Invalid(sizeType, v, allowed...)
}
