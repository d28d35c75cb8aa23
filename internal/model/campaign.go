package model

import "strings"

// Campaign is a dashboard listing row. Campaigns are demo fixtures until the
// backend grows a campaigns resource; the dashboard renders and filters them
// but never mutates them.
type Campaign struct {
	ID        int64
	Name      string
	Status    string
	Objective string
	Budget    string
	Spent     string
	Reach     string
	Clicks    string
	CTR       string
	StartDate string
}

const (
	CampaignActive    = "Active"
	CampaignPaused    = "Paused"
	CampaignCompleted = "Completed"
	CampaignDraft     = "Draft"
	CampaignScheduled = "Scheduled"
)

var campaigns = []Campaign{
	{ID: 1, Name: "Summer Sale 2026", Status: CampaignActive, Objective: "Sales", Budget: "$5,000", Spent: "$1,240", Reach: "45.2k", Clicks: "2.1k", CTR: "4.6%", StartDate: "Feb 01, 2026"},
	{ID: 2, Name: "Retargeting Q1", Status: CampaignActive, Objective: "Conversions", Budget: "$3,500", Spent: "$2,980", Reach: "8.1k", Clicks: "940", CTR: "11.6%", StartDate: "Jan 12, 2026"},
	{ID: 3, Name: "New Product Launch", Status: CampaignDraft, Objective: "Traffic", Budget: "$10,000", Spent: "$0", Reach: "0", Clicks: "0", CTR: "0%", StartDate: "—"},
	{ID: 4, Name: "Brand Awareness", Status: CampaignCompleted, Objective: "Awareness", Budget: "$7,500", Spent: "$7,500", Reach: "45.2k", Clicks: "1.8k", CTR: "4.0%", StartDate: "Nov 03, 2025"},
	{ID: 5, Name: "Email Sequence", Status: CampaignScheduled, Objective: "Leads", Budget: "$1,200", Spent: "$0", Reach: "0", Clicks: "0", CTR: "0%", StartDate: "Mar 15, 2026"},
	{ID: 6, Name: "Holiday Teaser", Status: CampaignPaused, Objective: "Awareness", Budget: "$2,000", Spent: "$640", Reach: "12.5k", Clicks: "310", CTR: "2.5%", StartDate: "Dec 18, 2025"},
}

// Campaigns returns a copy of the campaign fixtures.
func Campaigns() []Campaign {
	out := make([]Campaign, len(campaigns))
	copy(out, campaigns)
	return out
}

// FilterCampaigns returns campaigns whose name or objective contains the
// query, case-insensitively. An empty query returns everything.
func FilterCampaigns(query string) []Campaign {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Campaigns()
	}
	var out []Campaign
	for _, c := range campaigns {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Objective), q) {
			out = append(out, c)
		}
	}
	return out
}

// ActiveCampaigns returns only campaigns currently serving.
func ActiveCampaigns() []Campaign {
	var out []Campaign
	for _, c := range campaigns {
		if c.Status == CampaignActive {
			out = append(out, c)
		}
	}
	return out
}
