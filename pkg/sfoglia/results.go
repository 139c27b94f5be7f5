package sfoglia

// ListAction identifies which button activated a list item.
type ListAction int

const (
	ListActionSelected           ListAction = iota // User selected an item (A button)
	ListActionTriggered                            // User triggered action button (X button)
	ListActionSecondaryTriggered                   // User triggered secondary action (Y button)
	ListActionConfirmed                            // User confirmed selection (Start button)
)
