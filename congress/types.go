package congress

// Chamber identifies a chamber of congress.
type Chamber string

const (
	ChamberHouse  Chamber = "house"
	ChamberSenate Chamber = "senate"
)

// Member is a legislator summary from the roster endpoint.
type Member struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Party        string `json:"party"`
	State        string `json:"state"`
	District     string `json:"district,omitempty"`
	NextElection string `json:"next_election"`
}

// MemberProfile is the detailed record for a single legislator.
type MemberProfile struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         string `json:"gender"`
	URL            string `json:"url"`
	CurrentParty   string `json:"current_party"`
	MostRecentVote string `json:"most_recent_vote"`
	InOffice       bool   `json:"in_office"`
}

// Vote is a single roll-call vote cast by a member.
type Vote struct {
	Chamber     string    `json:"chamber"`
	Date        string    `json:"date"`
	Question    string    `json:"question"`
	Description string    `json:"description"`
	Position    string    `json:"position"`
	Result      string    `json:"result"`
	Bill        *VoteBill `json:"bill,omitempty"`
}

// VoteBill is the bill reference embedded in a vote record.
type VoteBill struct {
	BillID string `json:"bill_id"`
	Number string `json:"number"`
	Title  string `json:"title"`
}

// Bill is a bill record from the search and detail endpoints.
type Bill struct {
	BillID            string `json:"bill_id"`
	BillSlug          string `json:"bill_slug"`
	Number            string `json:"number"`
	Title             string `json:"title"`
	ShortTitle        string `json:"short_title"`
	SponsorName       string `json:"sponsor_name"`
	SponsorParty      string `json:"sponsor_party"`
	SponsorState      string `json:"sponsor_state"`
	IntroducedDate    string `json:"introduced_date"`
	LatestMajorAction string `json:"latest_major_action"`
	Summary           string `json:"summary"`
	CongressdotgovURL string `json:"congressdotgov_url"`
}

// Nomination is a presidential nomination record.
type Nomination struct {
	NominationID string `json:"nomination_id"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	ReceivedDate string `json:"received_date"`
	LatestAction string `json:"latest_action"`
	Committee    string `json:"committee"`
}

// VotesPage is one page of a member's vote history.
type VotesPage struct {
	Votes  []Vote
	Offset int
}

// BillsPage is one page of bill search results.
type BillsPage struct {
	Bills      []Bill
	NumResults int
	Offset     int
}

// Detail holds either a bill or a nomination, depending on which endpoint
// the item id dispatched to.
type Detail struct {
	Bill       *Bill
	Nomination *Nomination
}

// members roster: results[0].members
type membersEnvelope struct {
	Results []struct {
		Congress string   `json:"congress"`
		Chamber  string   `json:"chamber"`
		Members  []Member `json:"members"`
	} `json:"results"`
}

// member profile: results[0]
type profileEnvelope struct {
	Results []MemberProfile `json:"results"`
}

// member votes: results[0].votes
type votesEnvelope struct {
	Results []struct {
		Offset int    `json:"offset"`
		Votes  []Vote `json:"votes"`
	} `json:"results"`
}

// bill search: results[0].bills
type billSearchEnvelope struct {
	Results []struct {
		NumResults int    `json:"num_results"`
		Offset     int    `json:"offset"`
		Bills      []Bill `json:"bills"`
	} `json:"results"`
}

// bill detail: results[0]
type billEnvelope struct {
	Results []Bill `json:"results"`
}

// nomination detail: results[0]
type nominationEnvelope struct {
	Results []Nomination `json:"results"`
}
