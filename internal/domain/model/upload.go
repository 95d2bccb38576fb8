package model

// Upload is one file received for staging.
type Upload struct {
	Name string
	Size int64
	Data []byte
}

// Rejection explains why an upload was not staged.
type Rejection struct {
	Name    string
	Err     error
	Message string
}

// StageResult reports the outcome of staging a batch of uploads.
type StageResult struct {
	Tasks    []AssignmentTask
	Rejected []Rejection
	Warnings []string
}
