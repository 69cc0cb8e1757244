package models

// Association links a content line of a lineup document to the section it appeared under.
type Association struct {
	// Section is the catalog label that was active when the line was read.
	Section string `json:"section"`
	// Text is the trimmed content line.
	Text string `json:"text"`
}
