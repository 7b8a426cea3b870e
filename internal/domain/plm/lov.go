package plm

// LOVKey identifies a PLM list-of-values used to translate raw codes into
// display descriptions.
type LOVKey string

const (
	LOVKeyDepartment LOVKey = "department"
	LOVKeyBrand      LOVKey = "brand"
	LOVKeyDivision   LOVKey = "division"
)

// IsValid checks if the LOV key is one of the known lists.
func (k LOVKey) IsValid() bool {
	switch k {
	case LOVKeyDepartment, LOVKeyBrand, LOVKeyDivision:
		return true
	}
	return false
}
