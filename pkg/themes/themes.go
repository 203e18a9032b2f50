// Package themes provides the color theme catalog and color resolution
// for card rendering.
//
// Themes live in an embedded TOML file so the catalog is data, not code.
// Resolution never fails: unknown theme names fall back to the default
// theme and malformed color overrides are ignored.
package themes

import (
	_ "embed"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed themes.toml
var themesTOML []byte

// DefaultTheme is the theme used when no theme is requested or the
// requested theme does not exist.
const DefaultTheme = "default"

// defaultBorder is the border color applied when a theme defines none.
const defaultBorder = "e4e2e2"

// Theme holds the raw colors of a single named theme.
type Theme struct {
	Title  string `toml:"title"`
	Icon   string `toml:"icon"`
	Text   string `toml:"text"`
	Bg     string `toml:"bg"`
	Border string `toml:"border"`
	Ring   string `toml:"ring"`
}

// Colors is the fully resolved color set consumed by the renderer.
// Every field is a hex string without the leading "#".
type Colors struct {
	Title      string
	Icon       string
	Text       string
	Background string
	Border     string
	Ring       string
}

// Overrides carries user-supplied color overrides. Empty fields mean
// "use the theme color"; malformed values are treated as empty.
type Overrides struct {
	Title      string
	Icon       string
	Text       string
	Background string
	Border     string
	Ring       string
}

var catalog = loadCatalog()

func loadCatalog() map[string]Theme {
	var c map[string]Theme
	if err := toml.Unmarshal(themesTOML, &c); err != nil {
		panic("themes: embedded catalog is malformed: " + err.Error())
	}
	return c
}

// Names returns all theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the theme with the given name, falling back to the
// default theme for unknown names.
func Lookup(name string) Theme {
	if t, ok := catalog[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return catalog[DefaultTheme]
}

// Exists reports whether a theme with the given name is in the catalog.
func Exists(name string) bool {
	_, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// hexPattern matches 3, 4, 6, or 8 digit hex colors without the "#".
var hexPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidHex reports whether s is a hex color usable in an SVG fill.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ResolveColors resolves the final color set from user overrides and a
// theme name. Each color falls back override → theme → default theme.
// The ring color additionally falls back to the resolved title color,
// and the border to a fixed neutral when the theme defines none.
func ResolveColors(o Overrides, themeName string) Colors {
	theme := Lookup(themeName)
	def := catalog[DefaultTheme]

	c := Colors{
		Title:      pick(o.Title, theme.Title, def.Title),
		Icon:       pick(o.Icon, theme.Icon, def.Icon),
		Text:       pick(o.Text, theme.Text, def.Text),
		Background: pick(o.Background, theme.Bg, def.Bg),
		Border:     pick(o.Border, theme.Border, defaultBorder),
	}
	c.Ring = pick(o.Ring, theme.Ring, c.Title)
	return c
}

// pick returns the first valid hex color among override, theme value,
// and fallback.
func pick(override, themed, fallback string) string {
	if ValidHex(override) {
		return override
	}
	if ValidHex(themed) {
		return themed
	}
	return fallback
}
