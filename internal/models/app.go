package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Status        string // Status bar text
	Typing        bool   // Typing indicator active
	InputEnabled  bool   // Submit control state
	Width         int    // Terminal width
	Height        int    // Terminal height
	ServerURL     string // Backend the widget talks to
	ActiveProfile string // Profile the backend came from
}
