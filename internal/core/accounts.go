package core

// Account names are colon-namespaced strings; the ledger accepts any string
// but the handlers only ever write from this chart.
const (
	AccountCash       = "Assets:Cash"
	AccountBank       = "Assets:Bank"
	AccountSales      = "Revenue:Sales"
	ExpensesFood      = "Expenses:Food"
	ExpensesTransport = "Expenses:Transport"
	ExpensesGeneral   = "Expenses:General"

	// ExpensePrefix selects expense accounts in summary queries.
	ExpensePrefix = "Expenses:"
)

// CommonAccounts groups the reference chart of accounts by class, for help
// text and future quick-pick UIs.
var CommonAccounts = map[string][]string{
	"income":      {AccountSales, "Revenue:Services", "Revenue:Other"},
	"expenses":    {ExpensesFood, ExpensesTransport, "Expenses:Office", "Expenses:Marketing"},
	"assets":      {AccountCash, AccountBank, "Assets:Receivables"},
	"liabilities": {"Liabilities:CreditCard", "Liabilities:Loans"},
}
