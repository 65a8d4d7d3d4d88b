package constants

// Area groups the back-office modules for authorization purposes.
type Area string

const (
	AreaAccounts      Area = "accounts"
	AreaAcademics     Area = "academics"
	AreaStudents      Area = "students"
	AreaStaff         Area = "staff"
	AreaFinance       Area = "finance"
	AreaLibrary       Area = "library"
	AreaTransport     Area = "transport"
	AreaHostel        Area = "hostel"
	AreaCommunication Area = "communication"
	AreaSite          Area = "site"
	AreaReports       Area = "reports"
)

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

type Capability struct {
	Area   Area
	Action Action
}

func Read(a Area) Capability  { return Capability{Area: a, Action: ActionRead} }
func Write(a Area) Capability { return Capability{Area: a, Action: ActionWrite} }

func (c Capability) String() string { return string(c.Area) + ":" + string(c.Action) }

// write implies read for the same area
var rolePolicy = map[string]map[Area]Action{
	RoleTeacher: {
		AreaAcademics:     ActionWrite,
		AreaStudents:      ActionRead,
		AreaStaff:         ActionRead,
		AreaCommunication: ActionWrite,
		AreaSite:          ActionRead,
		AreaReports:       ActionRead,
	},
	RoleAccountant: {
		AreaFinance:       ActionWrite,
		AreaStudents:      ActionRead,
		AreaStaff:         ActionRead,
		AreaAccounts:      ActionRead,
		AreaCommunication: ActionRead,
		AreaReports:       ActionRead,
	},
	RoleLibrarian: {
		AreaLibrary:       ActionWrite,
		AreaStudents:      ActionRead,
		AreaCommunication: ActionRead,
	},
	RoleReceptionist: {
		AreaStudents:      ActionWrite,
		AreaCommunication: ActionWrite,
		AreaAccounts:      ActionRead,
		AreaAcademics:     ActionRead,
		AreaTransport:     ActionRead,
		AreaHostel:        ActionRead,
		AreaReports:       ActionRead,
	},
	RoleDriver: {
		AreaTransport:     ActionRead,
		AreaCommunication: ActionRead,
	},
	RoleHostelWarden: {
		AreaHostel:        ActionWrite,
		AreaStudents:      ActionRead,
		AreaCommunication: ActionRead,
	},
	RoleStudent: {
		AreaAcademics:     ActionRead,
		AreaCommunication: ActionRead,
		AreaSite:          ActionRead,
	},
	RoleParent: {
		AreaAcademics:     ActionRead,
		AreaCommunication: ActionRead,
		AreaSite:          ActionRead,
	},
}

// Allows reports whether role holds capability c.
func Allows(role string, c Capability) bool {
	if IsAdmin(role) {
		return true
	}
	areas, ok := rolePolicy[role]
	if !ok {
		return false
	}
	granted, ok := areas[c.Area]
	if !ok {
		return false
	}
	return c.Action == ActionRead || granted == ActionWrite
}
