package dto

import "time"

// FileInfo describes the document behind a task.
type FileInfo struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	Extension string `json:"extension,omitempty"`
	Estimated bool   `json:"estimated,omitempty"`
}

// Task is a staged or assigned unit of work.
type Task struct {
	ID        int64      `json:"id"`
	WordCount FlexString `json:"wordCount,omitempty"`
	File      *FileInfo  `json:"file,omitempty"`
}

// Assignment mirrors a finalized assignment.
type Assignment struct {
	ID           int64      `json:"id"`
	ProjectType  string     `json:"projectType"`
	Topic        string     `json:"topic"`
	UrgencyType  string     `json:"urgencyType"`
	UrgencyValue FlexString `json:"urgencyValue"`
	Tasks        []Task     `json:"tasks"`
	SessionID    string     `json:"sessionId,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

// SaveAssignmentsRequest is the POST /api/assignments payload.
type SaveAssignmentsRequest struct {
	Assignments []Assignment `json:"assignments"`
}

// FinalizeRequest carries the terms for the staged tasks.
type FinalizeRequest struct {
	ProjectType  string     `json:"projectType"`
	Topic        string     `json:"topic"`
	UrgencyType  string     `json:"urgencyType"`
	UrgencyValue FlexString `json:"urgencyValue"`
}

// WordCountRequest stages a word-count task.
type WordCountRequest struct {
	WordCount FlexString `json:"wordCount"`
}

// Rejection reports an upload that was not staged.
type Rejection struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// StageFilesResponse reports the outcome of a multipart upload.
type StageFilesResponse struct {
	Tasks    []Task      `json:"tasks"`
	Rejected []Rejection `json:"rejected"`
	Warnings []string    `json:"warnings"`
}
