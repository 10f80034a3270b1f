package board

import "matrix-scoreboard/internal/domain"

// Color is a packed 0xRRGGBB value. Team colors are kept deliberately dim;
// the panel is bright and full-saturation colors wash out adjacent pixels.
type Color uint32

const (
	Black        Color = 0x000000
	White        Color = 0xFFFFFF
	DimGray      Color = 0x444444
	Gray         Color = 0x202020
	Blue         Color = 0x000028
	Navy         Color = 0x000038
	Green        Color = 0x002800
	ForestGreen  Color = 0x002400
	SkyBlue      Color = 0x001428
	Teal         Color = 0x003828
	LightCyan    Color = 0x142828
	Red          Color = 0x280000
	Burgundy     Color = 0x140000
	Orange       Color = 0x3C1C00
	Purple       Color = 0x281428
	Lavender     Color = 0x140038
	BrightYellow Color = 0x3C3C00
	GoldenYellow Color = 0x3C3C14
	DarkTeal     Color = 0x001414
)

// RGB splits the packed color into 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

var nbaColors = map[string]Color{
	"ATL": Red, "BOS": Green, "BKN": Gray, "CHA": Teal, "CHI": Red,
	"CLE": Burgundy, "DAL": Blue, "DEN": Blue, "DET": Red, "GS": Blue,
	"HOU": Red, "IND": Navy, "LAC": Red, "LAL": Lavender, "MEM": SkyBlue,
	"MIA": Red, "MIL": Green, "MIN": Blue, "NO": Blue, "NY": Orange,
	"OKC": SkyBlue, "ORL": SkyBlue, "PHI": SkyBlue, "PHX": Orange,
	"POR": Red, "SAC": Purple, "SA": Gray, "TOR": Red, "UTA": Navy,
	"WAS": Navy,
}

var nflColors = map[string]Color{
	"ARI": Red, "ATL": Red, "BAL": Lavender, "BUF": Red, "CAR": SkyBlue,
	"CHI": Orange, "CIN": Orange, "CLE": Orange, "DAL": Blue, "DEN": Orange,
	"DET": SkyBlue, "GB": ForestGreen, "HOU": Blue, "IND": Blue,
	"JAX": LightCyan, "KC": Red, "LAC": Blue, "LAR": Blue, "LV": Gray,
	"MIA": Teal, "MIN": Lavender, "NE": Blue, "NO": GoldenYellow,
	"NYG": Blue, "NYJ": Green, "PHI": DarkTeal, "PIT": BrightYellow,
	"SF": Red, "SEA": Blue, "TB": Red, "TEN": Blue, "WAS": Red,
}

var nhlColors = map[string]Color{
	"ANA": Orange, "ARI": Burgundy, "BOS": BrightYellow, "BUF": Blue,
	"CGY": Red, "CAR": Red, "CHI": Red, "COL": Burgundy, "CBJ": Blue,
	"DAL": Green, "DET": Red, "EDM": Orange, "FLA": Red, "LAK": Gray,
	"MIN": Green, "MTL": Red, "NSH": BrightYellow, "NJ": Red, "NYI": Blue,
	"NYR": Blue, "OTT": Red, "PHI": Orange, "PIT": BrightYellow,
	"SJS": Teal, "SEA": LightCyan, "STL": Blue, "TBL": Blue, "TOR": Blue,
	"UTAH": Blue, "VAN": Blue, "VGK": GoldenYellow, "WSH": Red, "WPG": Blue,
}

var mlbColors = map[string]Color{
	"ARI": Burgundy, "ATL": Red, "BAL": Orange, "BOS": Red, "CHC": Blue,
	"CHW": Gray, "CIN": Red, "CLE": Blue, "COL": Lavender, "DET": Blue,
	"HOU": Orange, "KC": Blue, "LAA": Red, "LAD": Blue, "MIA": Teal,
	"MIL": GoldenYellow, "MIN": Blue, "NYM": Orange, "NYY": Blue,
	"ATH": Green, "PHI": Red, "PIT": BrightYellow, "SD": BrightYellow,
	"SF": Orange, "SEA": Teal, "STL": Red, "TB": Blue, "TEX": Blue,
	"TOR": Blue, "WSH": Red,
}

// TeamColor returns the display color for a team abbreviation in the given
// league, falling back to gray for unknown teams or leagues.
func TeamColor(team string, sport domain.Sport) Color {
	if team == "" {
		return Gray
	}
	var colors map[string]Color
	switch sport {
	case domain.SportNBA:
		colors = nbaColors
	case domain.SportNFL:
		colors = nflColors
	case domain.SportNHL:
		colors = nhlColors
	case domain.SportMLB:
		colors = mlbColors
	default:
		return Gray
	}
	if c, ok := colors[team]; ok {
		return c
	}
	return Gray
}
