package kernel

import "regexp"

type Email string

// Standard local@domain pattern, no whitespace on either side of the @
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (e Email) IsValid() bool  { return emailPattern.MatchString(string(e)) }
func (e Email) String() string { return string(e) }

type Phone string

func (p Phone) String() string { return string(p) }

// Department is one of the fixed campus department names
type Department string

const (
	DepartmentComputerScience Department = "Computer Science"
	DepartmentInformationTech Department = "Information Technology"
	DepartmentElectronics     Department = "Electronics"
	DepartmentElectrical      Department = "Electrical"
	DepartmentMechanical      Department = "Mechanical"
	DepartmentCivil           Department = "Civil"
)

// Departments lists every valid department
func Departments() []Department {
	return []Department{
		DepartmentComputerScience,
		DepartmentInformationTech,
		DepartmentElectronics,
		DepartmentElectrical,
		DepartmentMechanical,
		DepartmentCivil,
	}
}

func (d Department) IsValid() bool {
	for _, dept := range Departments() {
		if d == dept {
			return true
		}
	}
	return false
}

func (d Department) String() string { return string(d) }
