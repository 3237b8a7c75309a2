package store

import "github.com/hostelhub/complaint-server/internal/models"

// StaffDirectory is a read-only lookup of assignable staff members.
// The roster is fixed at construction.
type StaffDirectory struct {
	members []models.StaffMember
	byID    map[int]models.StaffMember
}

// NewStaffDirectory creates a directory over the given roster.
func NewStaffDirectory(members []models.StaffMember) *StaffDirectory {
	d := &StaffDirectory{
		members: make([]models.StaffMember, len(members)),
		byID:    make(map[int]models.StaffMember, len(members)),
	}
	copy(d.members, members)
	for _, m := range members {
		d.byID[m.ID] = m
	}
	return d
}

// DefaultStaff returns the hostel's standing staff roster.
func DefaultStaff() []models.StaffMember {
	return []models.StaffMember{
		{ID: 1, Name: "John Maintenance", Department: "Maintenance"},
		{ID: 2, Name: "Sarah Electrician", Department: "Electrical"},
		{ID: 3, Name: "Mike Plumber", Department: "Plumbing"},
		{ID: 4, Name: "Lisa IT Support", Department: "IT"},
		{ID: 5, Name: "David Mess Manager", Department: "Mess"},
	}
}

// List returns the full roster.
func (d *StaffDirectory) List() []models.StaffMember {
	out := make([]models.StaffMember, len(d.members))
	copy(out, d.members)
	return out
}

// Get looks up a staff member by id.
func (d *StaffDirectory) Get(id int) (models.StaffMember, error) {
	m, ok := d.byID[id]
	if !ok {
		return models.StaffMember{}, ErrNotFound
	}
	return m, nil
}
