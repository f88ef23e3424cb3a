package assembler

// CompanyMachineLink mirrors one /companyMachines row: the join table
// between a company and the equipment it operates.
type CompanyMachineLink struct {
	ID          FlexInt `json:"id"`
	CompanyID   FlexInt `json:"companyId"`
	EquipmentID FlexInt `json:"equipmentId"`
	Active      bool    `json:"active"`
}

// CompanyMachineLinks decodes the raw join-table payload.
func CompanyMachineLinks(data []byte) []CompanyMachineLink {
	return toEntityList(data, func(l CompanyMachineLink) CompanyMachineLink { return l })
}
