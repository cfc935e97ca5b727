package models

// Transaction statuses
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
)

// Categories
const (
	CategoryIncome        = "Income"
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryGroceries     = "Groceries"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills"
	CategoryHealth        = "Health"
	CategoryEntertainment = "Entertainment"
	CategoryTransfer      = "Transfer"
	CategoryMajorExpense  = "Major Expense"
	CategoryGeneral       = "General"
	CategoryUncategorized = "Uncategorized"
)

// Vendor sentinels
const (
	VendorUnknown           = "Unknown"
	VendorIncomingTransfer  = "Incoming Transfer"
	VendorTransferToAccount = "Transfer to Account"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionLedgerFile = 0644
	PermissionDirectory  = 0750
)
