package config

// Kind is the declared type of a configuration field.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
)

// String returns the type name shown in InvalidType errors.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	default:
		return "string"
	}
}

// Environment keys.
const (
	KeyScreenFlip      = "SCREEN_FLIP"
	KeyScreenMock      = "SCREEN_MOCK"
	KeyScreenColor     = "SCREEN_COLOR"
	KeyPiholeHost      = "PIHOLE_HOST"
	KeyPiholePort      = "PIHOLE_PORT"
	KeyPiholeConfDir   = "PIHOLE_CONFDIR"
	KeyRefreshPeriod   = "REFRESH_PERIOD"
	KeyLocale          = "LOCALE"
	KeyHeadless        = "HEADLESS"
	KeyScreenRotation  = "SCREEN_ROTATION"
	KeyScreenTargetFPS = "SCREEN_TARGET_FPS"
	KeyPiholeToken     = "PIHOLE_TOKEN"
	KeyLogLevel        = "LOG_LEVEL"
	KeyLogFormat       = "LOG_FORMAT"
)

// Field is one row of the schema table.
type Field struct {
	Name     string
	Kind     Kind
	Default  string
	Required bool // no default; the source must provide it
	Variants Variant
	assign   func(s *Settings, v value)
}

// value holds a cast field value; only the member matching the field kind is set.
type value struct {
	s string
	b bool
	i int
}

// Schema lists every recognized field, in the order they are validated.
var Schema = []Field{
	{Name: KeyScreenFlip, Kind: KindBool, Default: "false", Variants: VariantAll,
		assign: func(s *Settings, v value) { s.ScreenFlip = v.b }},
	{Name: KeyScreenMock, Kind: KindBool, Default: "false", Variants: VariantAll,
		assign: func(s *Settings, v value) { s.ScreenMock = v.b }},
	{Name: KeyScreenColor, Kind: KindString, Default: "yellow", Variants: VariantAll,
		assign: func(s *Settings, v value) { s.ScreenColor = v.s }},
	{Name: KeyPiholeHost, Kind: KindString, Default: "localhost", Variants: VariantAll,
		assign: func(s *Settings, v value) { s.PiholeHost = v.s }},
	{Name: KeyPiholePort, Kind: KindInt, Default: "80", Variants: VariantAll,
		assign: func(s *Settings, v value) { s.PiholePort = v.i }},
	{Name: KeyPiholeConfDir, Kind: KindString, Default: "/etc/pihole", Variants: VariantAll,
		assign: func(s *Settings, v value) { s.PiholeConfDir = v.s }},
	{Name: KeyRefreshPeriod, Kind: KindInt, Default: "3600", Variants: VariantAll,
		assign: func(s *Settings, v value) { s.RefreshPeriod = v.i }},
	{Name: KeyLocale, Kind: KindString, Default: "en_US.UTF-8", Variants: VariantAll,
		assign: func(s *Settings, v value) { s.Locale = v.s }},
	{Name: KeyHeadless, Kind: KindBool, Default: "false", Variants: VariantTerminal,
		assign: func(s *Settings, v value) { s.Headless = v.b }},
	{Name: KeyScreenRotation, Kind: KindInt, Default: "0", Variants: VariantTerminal,
		assign: func(s *Settings, v value) { s.ScreenRotation = v.i }},
	{Name: KeyScreenTargetFPS, Kind: KindInt, Default: "1", Variants: VariantTerminal,
		assign: func(s *Settings, v value) { s.ScreenTargetFPS = v.i }},
	{Name: KeyPiholeToken, Kind: KindString, Required: true, Variants: VariantTerminal,
		assign: func(s *Settings, v value) { s.PiholeToken = v.s }},
	{Name: KeyLogLevel, Kind: KindString, Default: "info", Variants: VariantAll,
		assign: func(s *Settings, v value) { s.LogLevel = v.s }},
	{Name: KeyLogFormat, Kind: KindString, Default: "console", Variants: VariantAll,
		assign: func(s *Settings, v value) { s.LogFormat = v.s }},
}

// Keys returns the schema field names recognized by the given variant.
func Keys(variant Variant) []string {
	keys := make([]string, 0, len(Schema))
	for _, f := range Schema {
		if f.Variants&variant != 0 {
			keys = append(keys, f.Name)
		}
	}
	return keys
}
