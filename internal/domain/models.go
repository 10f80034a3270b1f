package domain

// Status is the canonical game lifecycle state every raw status string is
// normalized to before display.
type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusFinal      Status = "Final"
	StatusPostponed  Status = "Postponed"
	StatusSuspended  Status = "Suspended"
	StatusCancelled  Status = "Cancelled"
	StatusDelayed    Status = "Delayed"
	StatusUnknown    Status = "Unknown"
)

// Valid reports whether s is a member of the canonical status set.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusFinal, StatusPostponed,
		StatusSuspended, StatusCancelled, StatusDelayed, StatusUnknown:
		return true
	}
	return false
}

// Live reports whether the game should show in the live-only display mode.
func (s Status) Live() bool {
	switch s {
	case StatusInProgress, StatusDelayed, StatusSuspended, StatusUnknown:
		return true
	}
	return false
}

// Sport identifies one of the four supported leagues.
type Sport string

const (
	SportNFL Sport = "NFL"
	SportNBA Sport = "NBA"
	SportNHL Sport = "NHL"
	SportMLB Sport = "MLB"
)

// Sports lists the supported leagues in fetch/rotation order.
func Sports() []Sport {
	return []Sport{SportNFL, SportNBA, SportNHL, SportMLB}
}

// Valid reports whether s is one of the supported leagues.
func (s Sport) Valid() bool {
	switch s {
	case SportNFL, SportNBA, SportNHL, SportMLB:
		return true
	}
	return false
}

// Count is the MLB balls/strikes/outs readout.
type Count struct {
	Balls   int  `json:"balls"`
	Strikes int  `json:"strikes"`
	Outs    int  `json:"outs"`
	Present bool `json:"-"`
}

// Bases is the MLB base-runner occupancy.
type Bases struct {
	First   bool `json:"first"`
	Second  bool `json:"second"`
	Third   bool `json:"third"`
	Present bool `json:"-"`
}

// Game is the canonical, display-ready game shape produced from one raw
// record. Every field is defaulted at the parse boundary; internal logic
// never re-checks presence.
type Game struct {
	HomeTeam     string `json:"homeTeam"`
	AwayTeam     string `json:"awayTeam"`
	HomeScore    int    `json:"homeScore"`
	AwayScore    int    `json:"awayScore"`
	Status       Status `json:"status"`
	// RawStatus keeps the provider's original wording for display labels
	// ("Rain Delay" renders differently from a generic delay).
	RawStatus    string `json:"rawStatus"`
	Period       string `json:"period"`
	Clock        string `json:"clock"`
	Date         string `json:"date"`
	Venue        string `json:"venue"`
	HomeRecord   string `json:"homeRecord"`
	AwayRecord   string `json:"awayRecord"`
	LastPlay     string `json:"lastPlay"`
	DownDistance string `json:"downDistance"`
	Possession   string `json:"possession"`
	Count        Count  `json:"count"`
	Bases        Bases  `json:"bases"`
	Sport        Sport  `json:"sport"`
}

// RawGame is one loosely-typed game record as returned by the scores API.
// No shape is guaranteed beyond best-effort keys.
type RawGame map[string]any
