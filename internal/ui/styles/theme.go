package styles

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wfcli/wf/internal/config"
)

// Theme is the color palette shared by all UI components.
type Theme struct {
	Primary color.Color // borders, titles
	Accent  color.Color // selected items, branch markers
	Success color.Color
	Error   color.Color
	Muted   color.Color // de-emphasized text
	Normal  color.Color // standard text
	Info    color.Color
	Warning color.Color
}

// variants holds the light/dark members of a theme family. Either side may
// be nil when the family only ships one variant.
type variants struct {
	light *Theme
	dark  *Theme
}

// palette builds a Theme from eight colors in Theme field order:
// primary, accent, success, error, muted, normal, info, warning.
func palette(p [8]string) *Theme {
	return &Theme{
		Primary: lipgloss.Color(p[0]),
		Accent:  lipgloss.Color(p[1]),
		Success: lipgloss.Color(p[2]),
		Error:   lipgloss.Color(p[3]),
		Muted:   lipgloss.Color(p[4]),
		Normal:  lipgloss.Color(p[5]),
		Info:    lipgloss.Color(p[6]),
		Warning: lipgloss.Color(p[7]),
	}
}

// uncolored keeps bold/italic/underline formatting but renders with the
// terminal's default colors.
func uncolored() *Theme {
	none := lipgloss.NoColor{}
	return &Theme{
		Primary: none, Accent: none, Success: none, Error: none,
		Muted: none, Normal: none, Info: none, Warning: none,
	}
}

var families = map[string]variants{
	"none": {light: uncolored(), dark: uncolored()},
	"default": {
		dark: palette([8]string{"62", "212", "82", "196", "240", "252", "244", "214"}),
	},
	"dracula": {
		dark: palette([8]string{"#bd93f9", "#ff79c6", "#50fa7b", "#ff5555", "#6272a4", "#f8f8f2", "#8be9fd", "#ffb86c"}),
	},
	"nord": {
		light: palette([8]string{"#5e81ac", "#b48ead", "#a3be8c", "#bf616a", "#9a9a9a", "#2e3440", "#81a1c1", "#d08770"}),
		dark:  palette([8]string{"#88c0d0", "#b48ead", "#a3be8c", "#bf616a", "#4c566a", "#eceff4", "#81a1c1", "#ebcb8b"}),
	},
	"gruvbox": {
		light: palette([8]string{"#076678", "#8f3f71", "#79740e", "#9d0006", "#928374", "#3c3836", "#427b58", "#b57614"}),
		dark:  palette([8]string{"#83a598", "#d3869b", "#b8bb26", "#fb4934", "#665c54", "#ebdbb2", "#8ec07c", "#fabd2f"}),
	},
	"catppuccin": {
		light: palette([8]string{"#1e66f5", "#ea76cb", "#40a02b", "#d20f39", "#9ca0b0", "#4c4f69", "#179299", "#fe640b"}), // latte
		dark:  palette([8]string{"#89b4fa", "#f5c2e7", "#a6e3a1", "#f38ba8", "#6c7086", "#cdd6f4", "#94e2d5", "#fab387"}), // mocha
	},
}

var currentTheme = *families["default"].dark

// Current returns the active theme.
func Current() Theme {
	return currentTheme
}

// Init applies the configured theme. Call after loading config and before
// any styled output.
func Init(cfg config.ThemeConfig) {
	theme := selectTheme(cfg)

	override(&theme.Primary, cfg.Primary)
	override(&theme.Accent, cfg.Accent)
	override(&theme.Success, cfg.Success)
	override(&theme.Error, cfg.Error)
	override(&theme.Muted, cfg.Muted)
	override(&theme.Normal, cfg.Normal)
	override(&theme.Info, cfg.Info)
	override(&theme.Warning, cfg.Warning)

	currentTheme = theme
	applyTheme(theme)
	SetNerdfont(cfg.Nerdfont)
}

// override replaces dst when the config carries an explicit color.
func override(dst *color.Color, value string) {
	if value != "" {
		*dst = lipgloss.Color(value)
	}
}

// selectTheme picks the family variant for the configured name and mode.
// Mode auto queries the terminal background.
func selectTheme(cfg config.ThemeConfig) Theme {
	family, ok := families[cfg.Name]
	if !ok {
		if cfg.Name != "" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default (available: %s)\n",
				cfg.Name, strings.Join(config.ValidThemeNames, ", "))
		}
		family = families["default"]
	}

	mode := cfg.Mode
	switch mode {
	case "light", "dark":
	default:
		if mode != "" && mode != "auto" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme mode %q, using auto (available: %s)\n",
				mode, strings.Join(config.ValidThemeModes, ", "))
		}
		mode = "light"
		if lipgloss.HasDarkBackground(os.Stdin, os.Stderr) {
			mode = "dark"
		}
	}

	variant := family.dark
	if mode == "light" {
		variant = family.light
	}
	// Dark-only families serve their dark variant in light mode and the
	// other way round
	if variant == nil {
		if variant = family.dark; variant == nil {
			variant = family.light
		}
	}
	if variant == nil {
		return *families["default"].dark
	}
	return *variant
}

// applyTheme rebuilds the global color and style variables from the theme.
func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal
	Info = t.Info
	Warning = t.Warning

	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)

	RoundedBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)

	HighlightStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true)
}

// GetPreset returns a theme family's preset by name, preferring the dark
// variant, or nil when the name is unknown.
func GetPreset(name string) *Theme {
	family, ok := families[name]
	if !ok {
		return nil
	}
	if family.dark != nil {
		return family.dark
	}
	return family.light
}

// PresetNames returns the valid theme family names.
func PresetNames() []string {
	return config.ValidThemeNames
}
