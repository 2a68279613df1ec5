package infinitescroll

import (
	"fmt"
	"strings"
)

// Direction is the axis along which content scrolls and grows.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "vertical" or "horizontal" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v", "":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("unknown direction %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IndicatorStyle selects the look of the default activity indicator.
type IndicatorStyle int

const (
	StyleWhite IndicatorStyle = iota
	StyleGray
	StyleWhiteLarge
)

func (s IndicatorStyle) String() string {
	switch s {
	case StyleWhite:
		return "white"
	case StyleGray:
		return "gray"
	case StyleWhiteLarge:
		return "white-large"
	default:
		return fmt.Sprintf("IndicatorStyle(%d)", int(s))
	}
}

// ParseIndicatorStyle parses "white", "gray" or "white-large".
func ParseIndicatorStyle(s string) (IndicatorStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "":
		return StyleWhite, nil
	case "gray", "grey":
		return StyleGray, nil
	case "white-large", "large":
		return StyleWhiteLarge, nil
	default:
		return StyleWhite, fmt.Errorf("unknown indicator style %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s IndicatorStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *IndicatorStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseIndicatorStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
