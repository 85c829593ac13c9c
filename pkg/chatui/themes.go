package chatui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/go-go-golems/chinwag/pkg/transcript"
)

// Theme collects every style the chat surface renders with. Themes are
// purely cosmetic: switching one never changes behavior.
type Theme struct {
	Name string

	Header   lipgloss.Style
	Typing   lipgloss.Style
	Spinner  lipgloss.Style
	Composer lipgloss.Style
	Help     lipgloss.Style

	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	SystemLabel    lipgloss.Style
	ErrorLabel     lipgloss.Style

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SystemBubble    lipgloss.Style
	ErrorBubble     lipgloss.Style
}

// FlatTheme is the plain variant: no borders, a dark terminal palette.
func FlatTheme() Theme {
	return Theme{
		Name: "flat",

		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Typing:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("246")),
		Spinner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Composer: lipgloss.NewStyle(),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		UserLabel:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		AssistantLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		SystemLabel:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("243")),
		ErrorLabel:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),

		UserBubble:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).PaddingLeft(2),
		AssistantBubble: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		SystemBubble:    lipgloss.NewStyle().Faint(true).PaddingLeft(2),
		ErrorBubble:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).PaddingLeft(2),
	}
}

// GlassTheme approximates the glassmorphism variant: rounded borders and a
// translucent-looking blue-gray tint behind every bubble.
func GlassTheme() Theme {
	border := lipgloss.RoundedBorder()
	bubble := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color("60")).
		Background(lipgloss.Color("236")).
		Padding(0, 1)

	return Theme{
		Name: "glass",

		Header: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("117")).
			Background(lipgloss.Color("237")).
			Padding(0, 1),
		Typing:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("103")),
		Spinner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117")),
		Composer: lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("60")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),

		UserLabel:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		AssistantLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147")),
		SystemLabel:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("103")),
		ErrorLabel:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204")),

		UserBubble:      bubble.Foreground(lipgloss.Color("195")),
		AssistantBubble: bubble.Foreground(lipgloss.Color("189")),
		SystemBubble:    bubble.Faint(true),
		ErrorBubble:     bubble.Foreground(lipgloss.Color("204")),
	}
}

// ThemeByName resolves the cosmetic variant chosen on the command line.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "flat":
		return FlatTheme(), nil
	case "glass":
		return GlassTheme(), nil
	default:
		return Theme{}, errors.Errorf("unknown theme: %s (want flat or glass)", name)
	}
}

func (t Theme) BubbleStyle(role transcript.Role) lipgloss.Style {
	switch role {
	case transcript.RoleUser:
		return t.UserBubble
	case transcript.RoleAssistant:
		return t.AssistantBubble
	case transcript.RoleError:
		return t.ErrorBubble
	default:
		return t.SystemBubble
	}
}

func (t Theme) LabelStyle(role transcript.Role) lipgloss.Style {
	switch role {
	case transcript.RoleUser:
		return t.UserLabel
	case transcript.RoleAssistant:
		return t.AssistantLabel
	case transcript.RoleError:
		return t.ErrorLabel
	default:
		return t.SystemLabel
	}
}
