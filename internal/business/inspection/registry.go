package inspection

import (
	"sort"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// DefaultSections returns the built-in section registry used when a
// dealership has not configured its own checklists. Dealerships may add
// custom sections on top; keys stay stable across reconfiguration.
func DefaultSections() []model.InspectionSection {
	return []model.InspectionSection{
		{
			Key: "emissions", Label: "Emissions", Order: 1, IsActive: true,
			IsCustomerVisible: true, Color: "#2f855a",
			Items: []model.InspectionItemDefinition{
				{ID: "obd-scan", Label: "OBD-II scan", IsActive: true, Order: 1},
				{ID: "check-engine-light", Label: "Check engine light", IsActive: true, Order: 2},
				{ID: "exhaust-system", Label: "Exhaust system", IsActive: true, Order: 3},
			},
		},
		{
			Key: "cosmetic", Label: "Cosmetic", Order: 2, IsActive: true,
			IsCustomerVisible: true, Color: "#b7791f",
			Items: []model.InspectionItemDefinition{
				{ID: "paint", Label: "Paint and body panels", IsActive: true, Order: 1},
				{ID: "glass", Label: "Glass and mirrors", IsActive: true, Order: 2},
				{ID: "wheels", Label: "Wheels and trim", IsActive: true, Order: 3},
				{ID: "interior-surfaces", Label: "Interior surfaces", IsActive: true, Order: 4},
			},
		},
		{
			Key: "mechanical", Label: "Mechanical", Order: 3, IsActive: true,
			IsCustomerVisible: true, Color: "#c53030",
			Items: []model.InspectionItemDefinition{
				{ID: "engine-oil", Label: "Engine oil and filter", IsActive: true, Order: 1},
				{ID: "brakes", Label: "Brake pads and rotors", IsActive: true, Order: 2},
				{ID: "tires", Label: "Tire tread and pressure", IsActive: true, Order: 3},
				{ID: "suspension", Label: "Suspension and steering", IsActive: true, Order: 4},
				{ID: "battery", Label: "Battery and charging", IsActive: true, Order: 5},
			},
		},
		{
			Key: "cleaning", Label: "Cleaning", Order: 4, IsActive: true,
			IsCustomerVisible: false, Color: "#2b6cb0",
			Items: []model.InspectionItemDefinition{
				{ID: "exterior-wash", Label: "Exterior wash and wax", IsActive: true, Order: 1},
				{ID: "interior-detail", Label: "Interior detail", IsActive: true, Order: 2},
				{ID: "engine-bay", Label: "Engine bay", IsActive: true, Order: 3},
			},
		},
		{
			Key: "photos", Label: "Photos", Order: 5, IsActive: true,
			IsCustomerVisible: false, Color: "#6b46c1",
			Items: []model.InspectionItemDefinition{
				{ID: "exterior-photos", Label: "Exterior photos", IsActive: true, Order: 1},
				{ID: "interior-photos", Label: "Interior photos", IsActive: true, Order: 2},
				{ID: "damage-closeups", Label: "Damage close-ups", IsActive: true, Order: 3},
			},
		},
	}
}

// SortSections orders sections and their items by their configured order.
func SortSections(sections []model.InspectionSection) {
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })
	for _, s := range sections {
		items := s.Items
		sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	}
}
