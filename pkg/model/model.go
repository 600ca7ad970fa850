package model

import "time"

// Rating is a single checklist grade as recorded by an inspector.
type Rating string

const (
	RatingNotChecked Rating = "not-checked"
	RatingGreat      Rating = "G"
	RatingFair       Rating = "F"
	RatingNeedsWork  Rating = "N"
)

// Vehicle status values. An empty status means the vehicle is on the active
// reconditioning floor.
const (
	VehicleStatusActive  = ""
	VehicleStatusSold    = "sold"
	VehicleStatusPending = "pending"
)

// Location type buckets.
const (
	LocationOnSite    = "on-site"
	LocationOffSite   = "off-site"
	LocationInTransit = "in-transit"
)

// TeamNote is a short note left on a vehicle by a team member.
type TeamNote struct {
	ID        string    `json:"id,omitempty" firestore:"id,omitempty"`
	Author    string    `json:"author,omitempty" firestore:"author,omitempty"`
	Text      string    `json:"text,omitempty" firestore:"text,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
}

// Vehicle is the core document stored in the `vehicles` collection.
type Vehicle struct {
	ID          string     `json:"id,omitempty" firestore:"id,omitempty"`
	VIN         string     `json:"vin,omitempty" firestore:"vin,omitempty"`
	StockNumber string     `json:"stockNumber,omitempty" firestore:"stockNumber,omitempty"`
	Year        int        `json:"year,omitempty" firestore:"year,omitempty"`
	Make        string     `json:"make,omitempty" firestore:"make,omitempty"`
	Model       string     `json:"model,omitempty" firestore:"model,omitempty"`
	Trim        string     `json:"trim,omitempty" firestore:"trim,omitempty"`
	Mileage     int        `json:"mileage,omitempty" firestore:"mileage,omitempty"`
	Color       string     `json:"color,omitempty" firestore:"color,omitempty"`
	Location    string     `json:"location,omitempty" firestore:"location,omitempty"`
	Status      string     `json:"status,omitempty" firestore:"status,omitempty"` // "" | "sold" | "pending"
	Notes       string     `json:"notes,omitempty" firestore:"notes,omitempty"`
	TeamNotes   []TeamNote `json:"teamNotes,omitempty" firestore:"teamNotes,omitempty"`
	ImportRunID string     `json:"importRunId,omitempty" firestore:"importRunId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// InspectionItem is one rated point inside a section of a vehicle inspection.
// Items are created implicitly the first time a rating is set and overwritten
// in place on every change.
type InspectionItem struct {
	ID        string    `json:"id,omitempty" firestore:"id,omitempty"`
	Label     string    `json:"label,omitempty" firestore:"label,omitempty"`
	Rating    Rating    `json:"rating,omitempty" firestore:"rating,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty" firestore:"updatedBy,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// InspectionItemDefinition is one checklist entry of a section definition.
type InspectionItemDefinition struct {
	ID       string `json:"id,omitempty" firestore:"id,omitempty"`
	Label    string `json:"label,omitempty" firestore:"label,omitempty"`
	IsActive bool   `json:"isActive" firestore:"isActive"`
	Order    int    `json:"order" firestore:"order"`
}

// InspectionSection is a dealership-scoped checklist definition. Only active
// sections and items participate in status and progress computation.
type InspectionSection struct {
	Key               string                     `json:"key,omitempty" firestore:"key,omitempty"`
	Label             string                     `json:"label,omitempty" firestore:"label,omitempty"`
	Order             int                        `json:"order" firestore:"order"`
	IsActive          bool                       `json:"isActive" firestore:"isActive"`
	IsCustomerVisible bool                       `json:"isCustomerVisible" firestore:"isCustomerVisible"`
	Color             string                     `json:"color,omitempty" firestore:"color,omitempty"`
	Items             []InspectionItemDefinition `json:"items,omitempty" firestore:"items,omitempty"`
}

// VehicleInspection maps section keys to the items recorded for one vehicle.
type VehicleInspection struct {
	VehicleID   string                      `json:"vehicleId,omitempty" firestore:"vehicleId,omitempty"`
	InspectorID string                      `json:"inspectorId,omitempty" firestore:"inspectorId,omitempty"`
	Sections    map[string][]InspectionItem `json:"sections,omitempty" firestore:"sections,omitempty"`
	UpdatedAt   time.Time                   `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// Location is a formal location row. Free-text vehicle locations with no
// matching row are classified by keyword heuristics instead.
type Location struct {
	ID   string `json:"id,omitempty" firestore:"id,omitempty"`
	Name string `json:"name,omitempty" firestore:"name,omitempty"`
	Type string `json:"type,omitempty" firestore:"type,omitempty"` // on-site | off-site | in-transit
}

// Contact is a vendor or staff contact for the dealership.
type Contact struct {
	ID      string `json:"id,omitempty" firestore:"id,omitempty"`
	Name    string `json:"name,omitempty" firestore:"name,omitempty"`
	Company string `json:"company,omitempty" firestore:"company,omitempty"`
	Role    string `json:"role,omitempty" firestore:"role,omitempty"`
	Phone   string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Email   string `json:"email,omitempty" firestore:"email,omitempty"`
	Notes   string `json:"notes,omitempty" firestore:"notes,omitempty"`
}

// Todo is a task, optionally attached to a vehicle.
type Todo struct {
	ID        string    `json:"id,omitempty" firestore:"id,omitempty"`
	Title     string    `json:"title,omitempty" firestore:"title,omitempty"`
	Detail    string    `json:"detail,omitempty" firestore:"detail,omitempty"`
	Assignee  string    `json:"assignee,omitempty" firestore:"assignee,omitempty"`
	VehicleID string    `json:"vehicleId,omitempty" firestore:"vehicleId,omitempty"`
	DueDate   time.Time `json:"dueDate,omitempty" firestore:"dueDate,omitempty"`
	Done      bool      `json:"done" firestore:"done"`
	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
}

// DealershipSettings is the per-dealership settings document.
type DealershipSettings struct {
	DealershipID   string    `json:"dealershipId,omitempty" firestore:"dealershipId,omitempty"`
	Name           string    `json:"name,omitempty" firestore:"name,omitempty"`
	Theme          string    `json:"theme,omitempty" firestore:"theme,omitempty"`
	CustomSections bool      `json:"customSections" firestore:"customSections"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// ImportRunStats stores aggregated counters for an inventory import job.
type ImportRunStats struct {
	Found    int `json:"found,omitempty" firestore:"found,omitempty"`
	Imported int `json:"imported,omitempty" firestore:"imported,omitempty"`
	Decoded  int `json:"decoded,omitempty" firestore:"decoded,omitempty"`
	Skipped  int `json:"skipped,omitempty" firestore:"skipped,omitempty"`
	Failed   int `json:"failed,omitempty" firestore:"failed,omitempty"`
}

// ImportRun tracks the lifecycle of an inventory import execution.
type ImportRun struct {
	RunID       string         `json:"runId,omitempty" firestore:"runId,omitempty"`
	Status      string         `json:"status,omitempty" firestore:"status,omitempty"`
	Stats       ImportRunStats `json:"stats,omitempty" firestore:"stats,omitempty"`
	StartedAt   time.Time      `json:"startedAt,omitempty" firestore:"startedAt,omitempty"`
	FinishedAt  time.Time      `json:"finishedAt,omitempty" firestore:"finishedAt,omitempty"`
	ErrorSample []ErrorSample  `json:"errorsSample,omitempty" firestore:"errorsSample,omitempty"`
}

// ErrorSample captures a subset of errors for observability without heavy logging.
type ErrorSample struct {
	Row    string `json:"row,omitempty" firestore:"row,omitempty"`
	Reason string `json:"reason,omitempty" firestore:"reason,omitempty"`
}

// DashboardStats is a singleton document that pre-aggregates dashboard metrics.
type DashboardStats struct {
	LastUpdated    time.Time      `json:"lastUpdated,omitempty" firestore:"lastUpdated,omitempty"`
	TotalActive    int            `json:"totalActive,omitempty" firestore:"totalActive,omitempty"`
	TotalSold      int            `json:"totalSold,omitempty" firestore:"totalSold,omitempty"`
	TotalPending   int            `json:"totalPending,omitempty" firestore:"totalPending,omitempty"`
	ByCategory     map[string]int `json:"byCategory,omitempty" firestore:"byCategory,omitempty"`
	ByLocationType map[string]int `json:"byLocationType,omitempty" firestore:"byLocationType,omitempty"`
	ReadyForSale   int            `json:"readyForSale,omitempty" firestore:"readyForSale,omitempty"`
	AvgProgress    float64        `json:"avgProgress,omitempty" firestore:"avgProgress,omitempty"`
}
