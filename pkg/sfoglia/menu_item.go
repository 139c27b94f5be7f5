package sfoglia

// MenuItem represents a single item in a ListScene.
type MenuItem struct {
	Text     string      // Display text for the item
	Hint     string      // Secondary text rendered right-aligned, e.g. a value or badge
	Disabled bool        // Render dimmed and skip over it when moving focus
	Metadata interface{} // Application-specific data attached to the item
}
