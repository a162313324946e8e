package domain

// Category identifies the project role of a file and selects its naming rule.
type Category string

const (
	CategoryDocumentation Category = "documentation"
	CategoryScripts       Category = "scripts"
	CategorySourceCode    Category = "source_code"
	CategoryComponents    Category = "components"
	CategoryHooks         Category = "hooks"
	CategoryTypes         Category = "types"
	CategoryServices      Category = "services"
	CategoryUtils         Category = "utils"
	CategoryConfig        Category = "config"
	CategoryOther         Category = "other"
)

// AllCategories enumerates every category in report order.
var AllCategories = []Category{
	CategoryDocumentation,
	CategoryScripts,
	CategorySourceCode,
	CategoryComponents,
	CategoryHooks,
	CategoryTypes,
	CategoryServices,
	CategoryUtils,
	CategoryConfig,
	CategoryOther,
}

func (c Category) String() string { return string(c) }
