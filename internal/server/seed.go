package server

import (
	"time"

	"github.com/getwaylabs/getway/pkg/model"
)

// seed loads the sample dataset the Scientist dashboard and CLI demos run
// against. Passwords here are for local development only.
func (s *memStore) seed() {
	owner := model.User{
		ID: "usr_owner1", Name: "Olivia Park", Email: "owner@metrolink.example",
		Role: model.RoleOwner, OrganizationID: "org_metrolink", IsApproved: true,
	}
	scientist := model.User{
		ID: "usr_sci1", Name: "Sara Lindqvist", Email: "sara@metrolink.example",
		Role: model.RoleScientist, OrganizationID: "org_metrolink", IsApproved: true,
	}
	pending := model.User{
		ID: "usr_sci2", Name: "Devi Raman", Email: "devi@metrolink.example",
		Role: model.RoleScientist, OrganizationID: "org_metrolink", IsApproved: false,
	}
	customer := model.User{
		ID: "usr_cust1", Name: "Maya Chen", Email: "maya@example.com",
		Role: model.RoleCustomer, IsApproved: true,
	}

	for _, a := range []struct {
		u  model.User
		pw string
	}{
		{owner, "transit"},
		{scientist, "scidata"},
		{pending, "scidata"},
		{customer, "getway"},
	} {
		u := a.u
		s.accounts[u.ID] = &account{user: u, password: a.pw}
		s.emails[u.Email] = u.ID
	}

	now := time.Now().UTC()
	s.posts = []*model.Post{
		{
			ID: "post_seed01", AuthorID: customer.ID, Author: customer.Name,
			Content:   "Green line was packed this morning, but still beat driving.",
			Likes:     4,
			CreatedAt: now.Add(-26 * time.Hour),
		},
		{
			ID: "post_seed02", AuthorID: customer.ID, Author: customer.Name,
			Content:   "Logged my 100th journey today. 62kg of CO2 saved!",
			Likes:     11,
			CreatedAt: now.Add(-3 * time.Hour),
		},
	}

	s.journeys = []*model.Journey{
		{
			ID: "jrn_seed01", UserID: customer.ID,
			Origin: "Central", Destination: "Harborfront",
			Mode: model.ModeMetro, DurationMin: 24,
			CO2SavedKg: co2PerMinute[model.ModeMetro] * 24,
			LoggedAt:   now.Add(-26 * time.Hour),
		},
		{
			ID: "jrn_seed02", UserID: customer.ID,
			Origin: "Harborfront", Destination: "University",
			Mode: model.ModeBus, DurationMin: 18,
			CO2SavedKg: co2PerMinute[model.ModeBus] * 18,
			LoggedAt:   now.Add(-4 * time.Hour),
		},
	}

	s.alerts = []model.Alert{
		{
			ID: "alr_seed01", Severity: model.SeverityCritical, Line: "green",
			Message:   "Signal failure between Central and Riverside; expect 20 min delays.",
			CreatedAt: now.Add(-90 * time.Minute),
		},
		{
			ID: "alr_seed02", Severity: model.SeverityWarning, Line: "blue",
			Message:   "Weekend track maintenance; trains every 15 minutes.",
			CreatedAt: now.Add(-8 * time.Hour),
		},
		{
			ID: "alr_seed03", Severity: model.SeverityInfo, Line: "green",
			Message:   "Extra services added for the stadium event on Saturday.",
			CreatedAt: now.Add(-30 * time.Hour),
		},
	}

	// Two weeks of daily rider counts for two lines.
	base := map[string]int{"green": 18200, "blue": 11400}
	for day := 13; day >= 0; day-- {
		date := now.AddDate(0, 0, -day).Format("2006-01-02")
		for line, riders := range base {
			// weekends dip, with a mild upward trend toward today
			n := riders + (13-day)*120
			if wd := now.AddDate(0, 0, -day).Weekday(); wd == time.Saturday || wd == time.Sunday {
				n = n * 6 / 10
			}
			s.riders = append(s.riders, model.RidershipPoint{Date: date, Line: line, Riders: n})
		}
	}
}
