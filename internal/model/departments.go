package model

// The fixed set of municipal departments reports are routed to. A
// report's department is chosen at creation and never changes.
const (
	DepartmentWaterSupply     = "water_supply_department"
	DepartmentElectricity     = "electricity_department"
	DepartmentRoadTransport   = "road_transport_department"
	DepartmentWasteManagement = "waste_management_department"
	DepartmentDrainage        = "drainage_department"
	DepartmentStreetLighting  = "street_lighting_department"
)

var Departments = []string{
	DepartmentWaterSupply,
	DepartmentElectricity,
	DepartmentRoadTransport,
	DepartmentWasteManagement,
	DepartmentDrainage,
	DepartmentStreetLighting,
}

func ValidDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}
