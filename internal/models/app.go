package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Display      Display // Latest display pushed by the core
	Status       string  // Status bar text
	Width        int     // Terminal width
	Height       int     // Terminal height
	ServiceReady bool    // Whether the calculator service is running
	ShowKeypad   bool    // Render the keypad below the display
	ShowHelp     bool    // Expand the key binding help
	Pressed      string  // Token of the last key, highlighted on the keypad
}
