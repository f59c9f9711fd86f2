package domain

import "time"

// Enumerations
const (
	ItemAvailable   ItemStatus = "available"
	ItemUnavailable ItemStatus = "unavailable"

	MethodCash PaymentMethod = "cash"
	MethodCard PaymentMethod = "card"

	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentCancelled PaymentStatus = "cancelled"

	RoleAdmin   StaffRole = "admin"
	RoleChef    StaffRole = "chef"
	RoleCashier StaffRole = "cashier"
	RoleWaiter  StaffRole = "waiter"

	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"

	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
	ShiftNight   Shift = "night"

	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

type ItemStatus string
type PaymentMethod string
type PaymentStatus string
type StaffRole string
type StaffStatus string
type Shift string
type TableStatus string

// MenuItem carries two money fields on purpose: Price is the current list
// price, Revenue accumulates what the item actually earned at the prices in
// effect when it was ordered. They diverge once a price changes and are never
// reconciled; callers get both and decide.
//
// Price and Revenue are display strings ("12.50", "1250.00 USD") because the
// upstream clients submit and render them that way. Aggregation parses them
// tolerantly, see report.ParseAmount.
type MenuItem struct {
	ID          string
	Name        string
	CategoryID  string
	Price       string
	Description string
	Status      ItemStatus
	OrderCount  int
	Revenue     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category IDs are slugs of the name at creation time and stay stable across
// renames.
type Category struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payment is append-only: registered once, never edited or deleted.
// Date is a plain YYYY-MM-DD calendar day; Time is display only and takes no
// part in aggregation.
type Payment struct {
	ID           string
	Date         string
	Time         string
	Amount       float64
	Method       PaymentMethod
	TableID      *string
	CustomerName *string
	Reference    *string
	Status       PaymentStatus
	CreatedAt    time.Time
}

type StaffMember struct {
	ID           string
	Name         string
	Email        string
	Role         StaffRole
	Salary       float64
	Status       StaffStatus
	Shift        Shift
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Table struct {
	ID        string
	Number    int
	Capacity  int
	Status    TableStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
