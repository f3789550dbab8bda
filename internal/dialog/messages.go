package dialog

// User-visible dialog text, kept in one place so flows stay readable.
const (
	msgWelcome          = "Welcome! Please enter your username:"
	msgEnterUsername    = "Please enter your username:"
	msgEnterPassword    = "Enter your password:"
	msgLoginFailed      = "Login failed. Use /start to try again."
	msgBlocked          = "Your account is blocked."
	msgLoggedInFmt      = "Logged in as %s (%s)"
	msgChooseFromMenu   = "Please choose from the menu."
	msgCancelled        = "Cancelled."
	msgNothingToCancel  = "Nothing to cancel."
	msgStoreFailure     = "Something went wrong talking to the database. Please try again."
	msgPermissionDenied = "Permission denied."

	msgNoCategories    = "No production categories are defined yet. Ask an administrator to add one."
	msgChooseCategory  = "Choose the production category:"
	msgUnknownCategory = "Please choose a category from the list."
	msgEnterQuantity   = "Enter the quantity:"
	msgQuantityDigits  = "Quantity must be a non-negative whole number."
	msgConfirmFmt      = "Please confirm:\nCategory: %s\nQuantity: %d"
	msgConfirmOrCancel = "Press Confirm to save or Cancel to abort."
	msgSaved           = "Saved!"

	msgNoEntries        = "You have no entries yet."
	msgChooseEntry      = "Select an entry to edit:"
	msgBadEntryChoice   = "Please pick an entry from the list."
	msgChooseEditField  = "Which field do you want to change?"
	msgEntryDetailsFmt  = "Category: %s\nQuantity: %s"
	msgEnterNewCategory = "Choose the new category:"
	msgEnterNewQuantity = "Enter the new quantity:"
	msgUpdated          = "Updated!"
	msgDeleted          = "Entry deleted."

	msgNewAccountName    = "Enter the new worker's full name:"
	msgNewAccountLogin   = "Enter a username for the new worker:"
	msgNewAccountSecret  = "Enter a password for the new worker:"
	msgAccountCreated    = "New worker added successfully!"
	msgRemoveAccountWho  = "Send the username of the account to remove."
	msgAccountRemovedFmt = "Account %q removed."

	msgNewCategoryName     = "Enter the new category label:"
	msgCategoryExistsFmt   = "Category %q already exists."
	msgCategoryCreatedFmt  = "Category %q added."
	msgRemoveCategoryWhich = "Send the label of the category to remove."
	msgCategoryRemovedFmt  = "Category %q removed."

	msgNewDisplayName     = "Send your new name, or press Cancel:"
	msgNameMustNotBeBlank = "The name must not be blank."
	msgRenamedFmt         = "Name changed to %s."
	msgLoggedOut          = "You have been logged out."

	msgNoDataToday     = "No entries recorded today."
	msgNoDataThisMonth = "No entries recorded this month."
	msgExportFailed    = "The spreadsheet export could not be generated."
)
