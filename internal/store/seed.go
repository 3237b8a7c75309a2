package store

import "github.com/hostelhub/complaint-server/internal/models"

// LoadDemoData fills the store with a handful of representative complaints
// so the frontend has something to render in development. Votes are cast
// through the ledger so the counters stay honest.
func LoadDemoData(s *ComplaintStore) {
	type demo struct {
		owner   string
		req     models.ComplaintSubmission
		status  models.Status
		staffID int
		votes   map[string]models.VoteValue
	}

	demos := []demo{
		{
			owner: "alex.brown@college.edu",
			req: models.ComplaintSubmission{
				Title:       "Broken Door Lock",
				Description: "Room door lock is broken and cannot be locked properly.",
				Category:    models.CategoryOther,
				Room:        "67",
				Block:       "B",
			},
			status:  models.StatusInProgress,
			staffID: 1,
			votes: map[string]models.VoteValue{
				"john.doe@college.edu":    models.VoteUp,
				"mike.wilson@college.edu": models.VoteUp,
			},
		},
		{
			owner: "sarah.jones@college.edu",
			req: models.ComplaintSubmission{
				Title:       "Mess Food Quality",
				Description: "Food served in mess is cold and not properly cooked.",
				Category:    models.CategoryMessFood,
				Room:        "89",
				Block:       "A",
			},
			votes: map[string]models.VoteValue{
				"john.doe@college.edu":      models.VoteUp,
				"jane.smith@college.edu":    models.VoteUp,
				"mike.wilson@college.edu":   models.VoteUp,
				"alex.brown@college.edu":    models.VoteUp,
				"emma.davis@college.edu":    models.VoteUp,
				"david.lee@college.edu":     models.VoteUp,
				"lisa.wang@college.edu":     models.VoteUp,
				"tom.chen@college.edu":      models.VoteUp,
				"anna.kumar@college.edu":    models.VoteUp,
				"robert.singh@college.edu":  models.VoteUp,
				"priya.patel@college.edu":   models.VoteUp,
				"raj.gupta@college.edu":     models.VoteUp,
				"sophie.martin@college.edu": models.VoteDown,
				"james.wilson@college.edu":  models.VoteDown,
			},
		},
		{
			owner: "mike.wilson@college.edu",
			req: models.ComplaintSubmission{
				Title:       "Poor Wi-Fi Connection",
				Description: "Very slow internet speed in room 150. Cannot attend online classes.",
				Category:    models.CategoryWiFi,
				Room:        "150",
				Block:       "C",
			},
			status:  models.StatusResolved,
			staffID: 4,
			votes: map[string]models.VoteValue{
				"john.doe@college.edu":    models.VoteUp,
				"jane.smith@college.edu":  models.VoteUp,
				"sarah.jones@college.edu": models.VoteUp,
				"alex.brown@college.edu":  models.VoteUp,
				"emma.davis@college.edu":  models.VoteUp,
				"david.lee@college.edu":   models.VoteUp,
				"lisa.wang@college.edu":   models.VoteUp,
				"tom.chen@college.edu":    models.VoteUp,
				"anna.kumar@college.edu":  models.VoteDown,
			},
		},
		{
			owner: "jane.smith@college.edu",
			req: models.ComplaintSubmission{
				Title:       "Water Leak in Bathroom",
				Description: "Continuous water leak from the ceiling in the common bathroom.",
				Category:    models.CategoryWater,
				Room:        "205",
				Block:       "B",
			},
			status:  models.StatusInProgress,
			staffID: 3,
			votes: map[string]models.VoteValue{
				"john.doe@college.edu":    models.VoteUp,
				"mike.wilson@college.edu": models.VoteUp,
				"sarah.jones@college.edu": models.VoteUp,
			},
		},
		{
			owner: "john.doe@college.edu",
			req: models.ComplaintSubmission{
				Title:       "Power Outage in Block A",
				Description: "No electricity in room 101 since morning. All electronic devices are dead.",
				Category:    models.CategoryElectricity,
				Room:        "101",
				Block:       "A",
			},
			votes: map[string]models.VoteValue{
				"jane.smith@college.edu":  models.VoteUp,
				"mike.wilson@college.edu": models.VoteUp,
				"sarah.jones@college.edu": models.VoteUp,
				"alex.brown@college.edu":  models.VoteUp,
				"emma.davis@college.edu":  models.VoteUp,
				"david.lee@college.edu":   models.VoteDown,
			},
		},
	}

	for _, d := range demos {
		c := s.Create(d.owner, d.req)
		if d.staffID != 0 {
			s.Assign(c.ID, d.staffID)
		}
		if d.status != "" {
			s.SetStatus(c.ID, d.status)
		}
		for user, value := range d.votes {
			s.CastVote(c.ID, user, value)
		}
	}
}
