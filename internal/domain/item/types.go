package item

type Status string

const (
	StatusAvailable      Status = "available"
	StatusRented         Status = "rented"
	StatusMaintenance    Status = "maintenance"
	StatusDecommissioned Status = "decommissioned"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance, StatusDecommissioned:
		return true
	default:
		return false
	}
}
