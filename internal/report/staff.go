package report

import "resto-backend/internal/domain"

// StaffSummary is the headcount rollup shown on the staff screen.
type StaffSummary struct {
	Total        int
	Active       int
	ByRole       map[domain.StaffRole]int
	TotalPayroll float64
}

func StaffStats(staff []domain.StaffMember) StaffSummary {
	s := StaffSummary{ByRole: make(map[domain.StaffRole]int)}
	for _, m := range staff {
		s.Total++
		if m.Status == domain.StaffActive {
			s.Active++
		}
		s.ByRole[m.Role]++
		s.TotalPayroll += m.Salary
	}
	return s
}

// TableSummary is the same rollup pattern applied to the table floor plan.
// Occupancy is the guarded share of occupied tables, so an empty floor plan
// reads 0%, never NaN.
type TableSummary struct {
	Total     int
	ByStatus  map[domain.TableStatus]int
	Occupancy float64
}

func TableStats(tables []domain.Table) TableSummary {
	s := TableSummary{ByStatus: make(map[domain.TableStatus]int)}
	for _, t := range tables {
		s.Total++
		s.ByStatus[t.Status]++
	}
	s.Occupancy = round2(Share(float64(s.ByStatus[domain.TableOccupied]), float64(s.Total)))
	return s
}
