package searchads

// Money is an amount in a currency, encoded by the API as a decimal string.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Campaign is an Apple Search Ads campaign.
type Campaign struct {
	ID                  int64    `json:"id"`
	OrgID               int64    `json:"orgId,omitempty"`
	Name                string   `json:"name"`
	AdamID              int64    `json:"adamId,omitempty"`
	Status              string   `json:"status"`
	ServingStatus       string   `json:"servingStatus,omitempty"`
	ServingStateReasons []string `json:"servingStateReasons,omitempty"`
	DisplayStatus       string   `json:"displayStatus,omitempty"`
	BudgetAmount        *Money   `json:"budgetAmount,omitempty"`
	DailyBudgetAmount   *Money   `json:"dailyBudgetAmount,omitempty"`
	CountriesOrRegions  []string `json:"countriesOrRegions,omitempty"`
	AdChannelType       string   `json:"adChannelType,omitempty"`
	SupplySources       []string `json:"supplySources,omitempty"`
	BillingEvent        string   `json:"billingEvent,omitempty"`
	Deleted             bool     `json:"deleted,omitempty"`
	StartTime           string   `json:"startTime,omitempty"`
	EndTime             string   `json:"endTime,omitempty"`
	ModificationTime    string   `json:"modificationTime,omitempty"`
}

// Pagination describes the position of a page in the full result.
type Pagination struct {
	TotalResults int `json:"totalResults"`
	StartIndex   int `json:"startIndex"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// Page is one page of a campaign listing.
type Page struct {
	Data       []Campaign  `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
