package model

// Catalog lists selectable project types and topics.
type Catalog struct {
	ProjectTypes []string
	Topics       []string
}
