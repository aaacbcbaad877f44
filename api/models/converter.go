package models

import (
	"github.com/jmcnair/voterhub/congress"
	"github.com/jmcnair/voterhub/database"
	"github.com/samber/lo"
)

// ToUser converts a database user to its view model, dropping the
// password hash.
func ToUser(u *database.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}

// ToLikedMembers converts the user's liked members for the homepage.
func ToLikedMembers(members []database.GovMember) []LikedMember {
	return lo.Map(members, func(m database.GovMember, _ int) LikedMember {
		return LikedMember{
			ID:        m.ID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
		}
	})
}

// ToMemberSummaries converts a roster, marking the entries the user has
// already liked.
func ToMemberSummaries(members []congress.Member, liked map[string]bool) []MemberSummary {
	return lo.Map(members, func(m congress.Member, _ int) MemberSummary {
		return MemberSummary{
			ID:           m.ID,
			Title:        m.Title,
			FirstName:    m.FirstName,
			LastName:     m.LastName,
			Party:        m.Party,
			State:        m.State,
			District:     m.District,
			NextElection: m.NextElection,
			Liked:        liked[m.ID],
		}
	})
}

// ToMemberDetail combines a profile and one page of votes.
func ToMemberDetail(profile *congress.MemberProfile, votes []congress.Vote, page, pages int) *MemberDetail {
	return &MemberDetail{
		ID:           profile.ID,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		CurrentParty: profile.CurrentParty,
		DateOfBirth:  profile.DateOfBirth,
		URL:          profile.URL,
		InOffice:     profile.InOffice,
		Votes:        lo.Map(votes, func(v congress.Vote, _ int) Vote { return toVote(v) }),
		Page:         page,
		Pages:        pages,
	}
}

func toVote(v congress.Vote) Vote {
	vote := Vote{
		Date:        v.Date,
		Question:    v.Question,
		Description: v.Description,
		Position:    v.Position,
		Result:      v.Result,
	}
	if v.Bill != nil {
		vote.BillID = v.Bill.BillID
		vote.BillNumber = v.Bill.Number
	}
	return vote
}

// ToBillSearchPage converts one page of bill search results.
func ToBillSearchPage(query string, bills []congress.Bill, page, pages int) *BillSearchPage {
	return &BillSearchPage{
		Query: query,
		Page:  page,
		Pages: pages,
		Bills: lo.Map(bills, func(b congress.Bill, _ int) BillSummary {
			return BillSummary{
				BillID:            b.BillID,
				Number:            b.Number,
				Title:             b.Title,
				SponsorName:       b.SponsorName,
				IntroducedDate:    b.IntroducedDate,
				LatestMajorAction: b.LatestMajorAction,
			}
		}),
	}
}

// ToBillDetail converts a bill-or-nomination lookup result.
func ToBillDetail(d *congress.Detail) *BillDetail {
	detail := &BillDetail{}
	if d.Bill != nil {
		detail.Bill = &Bill{
			BillID:            d.Bill.BillID,
			Number:            d.Bill.Number,
			Title:             d.Bill.Title,
			SponsorName:       d.Bill.SponsorName,
			SponsorParty:      d.Bill.SponsorParty,
			SponsorState:      d.Bill.SponsorState,
			IntroducedDate:    d.Bill.IntroducedDate,
			LatestMajorAction: d.Bill.LatestMajorAction,
			Summary:           d.Bill.Summary,
			CongressdotgovURL: d.Bill.CongressdotgovURL,
		}
	}
	if d.Nomination != nil {
		detail.Nomination = &Nomination{
			NominationID: d.Nomination.NominationID,
			Description:  d.Nomination.Description,
			Status:       d.Nomination.Status,
			ReceivedDate: d.Nomination.ReceivedDate,
			LatestAction: d.Nomination.LatestAction,
			Committee:    d.Nomination.Committee,
		}
	}
	return detail
}
