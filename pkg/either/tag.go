package either

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTag = errors.New("unknown either tag")

// Tag is the discriminant of an Either. The zero value is TagLeft.
type Tag uint8

const (
	TagLeft Tag = iota
	TagRight
)

func (t Tag) String() string {
	switch t {
	case TagLeft:
		return "left"
	case TagRight:
		return "right"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// ParseTag accepts "left" or "right" in any letter case.
func ParseTag(s string) (Tag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return TagLeft, nil
	case "right":
		return TagRight, nil
	default:
		return TagLeft, fmt.Errorf("%w: %q", ErrUnknownTag, s)
	}
}

func (t Tag) flip() Tag {
	if t == TagRight {
		return TagLeft
	}
	return TagRight
}
