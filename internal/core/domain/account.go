package domain

// AccountClass is the SYSCOHADA class of an account, given by the first digit of its number.
type AccountClass int

const (
	ClassDurableResources AccountClass = 1 // Comptes de ressources durables
	ClassFixedAssets      AccountClass = 2 // Comptes d'actif immobilisé
	ClassStocks           AccountClass = 3 // Comptes de stocks
	ClassThirdParties     AccountClass = 4 // Comptes de tiers
	ClassTreasury         AccountClass = 5 // Comptes de trésorerie
	ClassExpenses         AccountClass = 6 // Comptes de charges des activités ordinaires
	ClassRevenues         AccountClass = 7 // Comptes de produits des activités ordinaires
	ClassOtherItems       AccountClass = 8 // Comptes des autres charges et produits
	ClassAnalytical       AccountClass = 9 // Comptes des engagements hors bilan et analytiques
)

// Valid reports whether c is one of the nine SYSCOHADA classes.
func (c AccountClass) Valid() bool {
	return c >= ClassDurableResources && c <= ClassAnalytical
}

// Account is a ledger account of the chart of accounts.
type Account struct {
	AccountID   string       `json:"accountID"` // Primary Key (UUID)
	Number      string       `json:"number"`    // SYSCOHADA account number, e.g. "411" or "52110000"
	Label       string       `json:"label"`
	Class       AccountClass `json:"class"`
	Description string       `json:"description"`
	IsActive    bool         `json:"isActive"`
	AuditFields
}

// ClassOfNumber returns the class encoded by the first digit of an account number,
// or 0 when the number does not start with 1 to 9.
func ClassOfNumber(number string) AccountClass {
	if number == "" || number[0] < '1' || number[0] > '9' {
		return 0
	}
	return AccountClass(number[0] - '0')
}
