package theme

import "strings"

// Mode is the color scheme of a resolved theme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode maps a token value to a Mode, defaulting to ModeLight.
func ParseMode(s string) Mode {
	if Mode(s) == ModeDark {
		return ModeDark
	}
	return ModeLight
}

// Element identifies a styled piece of the page.
type Element string

const (
	Page            Element = "page"
	Section         Element = "section"
	SectionAlt      Element = "section-alt"
	Heading         Element = "heading"
	Lead            Element = "lead"
	Muted           Element = "muted"
	Card            Element = "card"
	CardFeatured    Element = "card-featured"
	Badge           Element = "badge"
	ButtonPrimary   Element = "button-primary"
	ButtonSecondary Element = "button-secondary"
	ButtonDisabled  Element = "button-disabled"
	Label           Element = "label"
	Input           Element = "input"
	InputInvalid    Element = "input-invalid"
	FieldError      Element = "field-error"
	AlertSuccess    Element = "alert-success"
	AlertError      Element = "alert-error"
	Nav             Element = "nav"
	Footer          Element = "footer"
)

// Styles maps elements to CSS class lists.
type Styles map[Element]string

var baseStyles = Styles{
	Page:            "min-h-screen antialiased font-sans",
	Section:         "py-16 md:py-24",
	SectionAlt:      "py-16 md:py-24",
	Heading:         "text-3xl md:text-5xl font-extrabold tracking-tight",
	Lead:            "mt-4 text-lg md:text-xl",
	Muted:           "text-sm",
	Card:            "rounded-2xl border p-6 shadow-sm",
	CardFeatured:    "rounded-2xl border-2 p-6 shadow-xl scale-105",
	Badge:           "inline-flex items-center rounded-full px-3 py-1 text-xs font-medium",
	ButtonPrimary:   "inline-flex items-center justify-center rounded-lg px-5 py-3 font-semibold transition",
	ButtonSecondary: "inline-flex items-center justify-center rounded-lg px-5 py-3 font-semibold border transition",
	ButtonDisabled:  "inline-flex items-center justify-center rounded-lg px-5 py-3 font-semibold opacity-60 cursor-not-allowed",
	Label:           "block text-sm font-medium mb-1",
	Input:           "block w-full rounded-lg border px-3 py-2 focus:outline-none focus:ring-2",
	InputInvalid:    "block w-full rounded-lg border-2 px-3 py-2 focus:outline-none focus:ring-2",
	FieldError:      "mt-1 text-sm",
	AlertSuccess:    "rounded-lg p-4 text-sm",
	AlertError:      "rounded-lg p-4 text-sm",
	Nav:             "sticky top-0 z-10 backdrop-blur border-b",
	Footer:          "py-10 text-sm border-t",
}

var modeStyles = map[Mode]Styles{
	ModeLight: {
		Page:            "bg-white text-slate-900",
		SectionAlt:      "bg-slate-50",
		Lead:            "text-slate-600",
		Muted:           "text-slate-500",
		Card:            "bg-white border-slate-200",
		CardFeatured:    "bg-white border-[var(--brand)]",
		Badge:           "bg-[var(--brand)]/10 text-[var(--brand)]",
		ButtonPrimary:   "bg-[var(--brand)] text-white hover:opacity-90",
		ButtonSecondary: "border-slate-300 text-slate-900 hover:bg-slate-100",
		ButtonDisabled:  "bg-slate-300 text-slate-600",
		Label:           "text-slate-700",
		Input:           "bg-white border-slate-300 focus:ring-[var(--brand)]",
		InputInvalid:    "bg-white border-red-500 focus:ring-red-500",
		FieldError:      "text-red-600",
		AlertSuccess:    "bg-emerald-50 text-emerald-800",
		AlertError:      "bg-red-50 text-red-800",
		Nav:             "bg-white/80 border-slate-200",
		Footer:          "border-slate-200 text-slate-500",
	},
	ModeDark: {
		Page:            "bg-slate-950 text-slate-100",
		SectionAlt:      "bg-slate-900",
		Lead:            "text-slate-300",
		Muted:           "text-slate-400",
		Card:            "bg-slate-900 border-slate-800",
		CardFeatured:    "bg-slate-900 border-[var(--brand)]",
		Badge:           "bg-[var(--brand)]/20 text-[var(--brand)]",
		ButtonPrimary:   "bg-[var(--brand)] text-slate-950 hover:opacity-90",
		ButtonSecondary: "border-slate-700 text-slate-100 hover:bg-slate-800",
		ButtonDisabled:  "bg-slate-700 text-slate-400",
		Label:           "text-slate-300",
		Input:           "bg-slate-900 border-slate-700 focus:ring-[var(--brand)]",
		InputInvalid:    "bg-slate-900 border-red-400 focus:ring-red-400",
		FieldError:      "text-red-400",
		AlertSuccess:    "bg-emerald-950 text-emerald-200",
		AlertError:      "bg-red-950 text-red-200",
		Nav:             "bg-slate-950/80 border-slate-800",
		Footer:          "border-slate-800 text-slate-400",
	},
}

// buildStyles joins base and mode classes, then applies "class.<element>"
// token overrides.
func buildStyles(mode Mode, tokens map[string]string) Styles {
	out := make(Styles, len(baseStyles))
	for el, base := range baseStyles {
		cls := base
		if extra := modeStyles[mode][el]; extra != "" {
			cls += " " + extra
		}
		out[el] = cls
	}
	for key, val := range tokens {
		if el, ok := cutClassToken(key); ok {
			out[el] = val
		}
	}
	return out
}

func cutClassToken(key string) (Element, bool) {
	name, ok := strings.CutPrefix(key, "class.")
	if !ok || name == "" {
		return "", false
	}
	return Element(name), true
}
