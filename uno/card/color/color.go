package color

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	corejson "github.com/ratel-online/core/util/json"
)

type Color int

const (
	Wild Color = iota
	Red
	Yellow
	Green
	Blue
)

// All lists the four playable colors in a fixed order.
var All = []Color{Red, Yellow, Green, Blue}

var names = map[Color]string{
	Wild:   "wild",
	Red:    "red",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
}

var painters = map[Color]func(string, ...interface{}) string{
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
}

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) Valid() bool {
	_, ok := names[c]
	return ok
}

// Chosen reports whether c is one of the four colors a player can pick.
func (c Color) Chosen() bool {
	return c != Wild && c.Valid()
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	paint, ok := painters[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return paint(text, args...)
}

func (c Color) String() string {
	return c.Name()
}

func (c Color) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", int(c))
	}
	return corejson.Marshal(c.Name()), nil
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := corejson.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ByName(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ByName resolves a color name, ignoring case and surrounding spaces.
func ByName(name string) (Color, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for c, n := range names {
		if n == normalized {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}
