package memory

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"resto-backend/internal/domain"
)

// SeedDefaults loads the demo restaurant used in development: a small menu,
// a staff roster, a floor plan and two days of payments so the reports have
// something to show. The admin account logs in with admin@resto.local /
// admin123.
func (s *Store) SeedDefaults(ctx context.Context) error {
	categories := []domain.Category{
		{ID: "main-dishes", Name: "Main Dishes", IsActive: true},
		{ID: "appetizers", Name: "Appetizers", IsActive: true},
		{ID: "drinks", Name: "Drinks", IsActive: true},
		{ID: "desserts", Name: "Desserts", IsActive: true},
	}
	for _, c := range categories {
		if _, err := s.AddCategory(ctx, c); err != nil {
			return err
		}
	}

	items := []domain.MenuItem{
		{Name: "Grilled Chicken", CategoryID: "main-dishes", Price: "14.50", Description: "Char-grilled chicken with herbs", Status: domain.ItemAvailable, OrderCount: 48, Revenue: "696.00 USD"},
		{Name: "Beef Steak", CategoryID: "main-dishes", Price: "22.00", Description: "Ribeye, medium by default", Status: domain.ItemAvailable, OrderCount: 31, Revenue: "682.00 USD"},
		{Name: "Margherita Pizza", CategoryID: "main-dishes", Price: "11.00", Description: "Tomato, mozzarella, basil", Status: domain.ItemAvailable, OrderCount: 64, Revenue: "704.00 USD"},
		{Name: "Bruschetta", CategoryID: "appetizers", Price: "6.50", Description: "Toasted bread, tomato, garlic", Status: domain.ItemAvailable, OrderCount: 22, Revenue: "143.00 USD"},
		{Name: "Spring Rolls", CategoryID: "appetizers", Price: "5.00", Description: "Vegetable rolls with sweet chili", Status: domain.ItemUnavailable, OrderCount: 17, Revenue: "85.00 USD"},
		{Name: "Lemonade", CategoryID: "drinks", Price: "3.50", Description: "Fresh squeezed", Status: domain.ItemAvailable, OrderCount: 75, Revenue: "262.50 USD"},
		{Name: "Iced Tea", CategoryID: "drinks", Price: "3.00", Description: "House brew with lemon", Status: domain.ItemAvailable, OrderCount: 58, Revenue: "174.00 USD"},
		{Name: "Tiramisu", CategoryID: "desserts", Price: "6.50", Description: "Classic, made in house", Status: domain.ItemAvailable, OrderCount: 29, Revenue: "188.50 USD"},
	}
	for _, it := range items {
		if _, err := s.AddMenuItem(ctx, it); err != nil {
			return err
		}
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(adminHash)
	staff := []domain.StaffMember{
		{Name: "Admin", Email: "admin@resto.local", Role: domain.RoleAdmin, Salary: 4500, Status: domain.StaffActive, Shift: domain.ShiftMorning, PasswordHash: &hash},
		{Name: "Ana Costa", Email: "ana@resto.local", Role: domain.RoleChef, Salary: 3200, Status: domain.StaffActive, Shift: domain.ShiftMorning},
		{Name: "Omar Haddad", Email: "omar@resto.local", Role: domain.RoleWaiter, Salary: 1800, Status: domain.StaffActive, Shift: domain.ShiftEvening},
		{Name: "Lena Park", Email: "lena@resto.local", Role: domain.RoleCashier, Salary: 2100, Status: domain.StaffInactive, Shift: domain.ShiftNight},
	}
	for _, m := range staff {
		if _, err := s.AddStaff(ctx, m); err != nil {
			return err
		}
	}

	for n := 1; n <= 6; n++ {
		status := domain.TableAvailable
		if n%3 == 0 {
			status = domain.TableOccupied
		}
		if _, err := s.AddTable(ctx, domain.Table{Number: n, Capacity: 2 + 2*(n%3), Status: status}); err != nil {
			return err
		}
	}

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	ref := "REF-1042"
	payments := []domain.Payment{
		{Date: yesterday, Time: "12:15", Amount: 42.50, Method: domain.MethodCash, Status: domain.PaymentCompleted},
		{Date: yesterday, Time: "19:40", Amount: 88.00, Method: domain.MethodCard, Reference: &ref, Status: domain.PaymentCompleted},
		{Date: today, Time: "11:05", Amount: 31.00, Method: domain.MethodCash, Status: domain.PaymentCompleted},
		{Date: today, Time: "13:30", Amount: 54.25, Method: domain.MethodCard, Reference: &ref, Status: domain.PaymentPending},
	}
	for _, p := range payments {
		if _, err := s.AddPayment(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
