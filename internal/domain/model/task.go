package model

// FileRef describes an uploaded document backing a task.
type FileRef struct {
	Name      string
	Size      int64
	Extension string
	// Estimated is set when the document text could not be extracted and the
	// task is billed with the default word estimate.
	Estimated bool
}

// AssignmentTask is the smallest billable unit: a word-count entry or an uploaded document.
type AssignmentTask struct {
	ID        int64
	WordCount string
	File      *FileRef
}

// IsDegenerate reports whether the task has neither a word count nor a file.
func (t AssignmentTask) IsDegenerate() bool {
	return t.WordCount == "" && t.File == nil
}
