package views

import "diaro/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type SwitchToViewerMsg struct {
	Entry domain.Entry
}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

// OpenEditorMsg asks the app to open a file in $EDITOR
type OpenEditorMsg struct {
	Path string
}

// OpenObsidianMsg asks the app to open a file in Obsidian
type OpenObsidianMsg struct {
	Path string
}

// CreateTodayMsg asks the app to create today's entry
type CreateTodayMsg struct{}

// CreateDoneMsg reports the outcome of creating today's entry
type CreateDoneMsg struct {
	Message string
	Err     error
}
