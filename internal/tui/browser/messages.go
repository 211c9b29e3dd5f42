package browser

import "github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewSearch
	ViewSettings
	ViewDetail
	ViewHelp
)

// SearchSubmittedMsg applies new filter criteria to the list.
type SearchSubmittedMsg struct {
	Criteria catalog.FilterCriteria
}

// ShowMoreMsg appends the next page of matches.
type ShowMoreMsg struct{}

// BookSelectedMsg opens the detail overlay for a book.
type BookSelectedMsg struct {
	ID string
}

// ThemeSelectedMsg switches between day and night.
type ThemeSelectedMsg struct {
	Key string
}

// BackToListMsg closes any overlay.
type BackToListMsg struct{}

// ErrorMsg shows the error banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg dismisses the error banner.
type ClearErrorMsg struct{}
