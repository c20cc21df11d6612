package domain

// Collection names one of the three independently published record sets.
type Collection int

const (
	CollectionEntities Collection = iota
	CollectionOfferings
	CollectionProjects
)

var Collections = []Collection{CollectionEntities, CollectionOfferings, CollectionProjects}

func (c Collection) String() string {
	switch c {
	case CollectionEntities:
		return "councils"
	case CollectionOfferings:
		return "loans"
	case CollectionProjects:
		return "projects"
	default:
		return "unknown"
	}
}

// Source field names.
const (
	FieldEntityRef      = "councilID"
	FieldName           = "issuingCouncil"
	FieldDescription    = "councilDescription"
	FieldHub            = "councilHub"
	FieldColor          = "hex"
	FieldLogo           = "whiteLogo"
	FieldRaiseStatus    = "raiseStatus"
	FieldTotalRaised    = "totalRaised"
	FieldTotalReturned  = "totalReturned"
	FieldTotalSpent     = "totalSpent"
	FieldLoans          = "loans"
	FieldProjectsFunded = "projectsFunded"

	FieldInvestmentName = "investmentName"
	FieldStrapline      = "strapline"
	FieldURL            = "url"
	FieldRate           = "rateOfReturn"
	FieldTerm           = "termLength"
	FieldRepayment      = "capitalRepayment"
	FieldLoanAmount     = "loanAmount"
	FieldCloseDate      = "closeDate"

	FieldProjectName     = "projectName"
	FieldCategory        = "category"
	FieldDescriptionText = "description"
	FieldCreatedTime     = "createdTime"
)
