package models

// User is the view model for the authenticated user.
type User struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LikedMember is a member in the user's like list.
type LikedMember struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// MemberSummary is a roster entry, annotated with whether the current
// user has liked the member.
type MemberSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Party        string `json:"party"`
	State        string `json:"state"`
	District     string `json:"district,omitempty"`
	NextElection string `json:"next_election"`
	Liked        bool   `json:"liked"`
}

// MemberDetail is the member page: profile plus one page of votes.
type MemberDetail struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	CurrentParty   string `json:"current_party"`
	DateOfBirth    string `json:"date_of_birth"`
	URL            string `json:"url"`
	InOffice       bool   `json:"in_office"`
	Votes          []Vote `json:"votes"`
	Page           int    `json:"page"`
	Pages          int    `json:"pages"`
}

// Vote is a single roll-call vote on the member page.
type Vote struct {
	Date        string `json:"date"`
	Question    string `json:"question"`
	Description string `json:"description"`
	Position    string `json:"position"`
	Result      string `json:"result"`
	BillID      string `json:"bill_id,omitempty"`
	BillNumber  string `json:"bill_number,omitempty"`
}

// BillSummary is a bill search result.
type BillSummary struct {
	BillID            string `json:"bill_id"`
	Number            string `json:"number"`
	Title             string `json:"title"`
	SponsorName       string `json:"sponsor_name"`
	IntroducedDate    string `json:"introduced_date"`
	LatestMajorAction string `json:"latest_major_action"`
}

// BillSearchPage is one page of bill search results.
type BillSearchPage struct {
	Query string        `json:"query"`
	Bills []BillSummary `json:"bills"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

// BillDetail is the bill-or-nomination detail page. Exactly one of Bill
// and Nomination is set.
type BillDetail struct {
	Bill       *Bill       `json:"bill,omitempty"`
	Nomination *Nomination `json:"nomination,omitempty"`
}

// Bill is the detail view of a bill.
type Bill struct {
	BillID            string `json:"bill_id"`
	Number            string `json:"number"`
	Title             string `json:"title"`
	SponsorName       string `json:"sponsor_name"`
	SponsorParty      string `json:"sponsor_party"`
	SponsorState      string `json:"sponsor_state"`
	IntroducedDate    string `json:"introduced_date"`
	LatestMajorAction string `json:"latest_major_action"`
	Summary           string `json:"summary"`
	CongressdotgovURL string `json:"congressdotgov_url"`
}

// Nomination is the detail view of a presidential nomination.
type Nomination struct {
	NominationID string `json:"nomination_id"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	ReceivedDate string `json:"received_date"`
	LatestAction string `json:"latest_action"`
	Committee    string `json:"committee"`
}

// Home is the homepage payload. LikedMembers is only populated for
// authenticated users.
type Home struct {
	User         *User         `json:"user,omitempty"`
	LikedMembers []LikedMember `json:"liked_members,omitempty"`
}
