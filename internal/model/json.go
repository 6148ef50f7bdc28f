package model

import (
	"encoding/json"
	"time"
)

// The document stores timestamps as unix seconds (UTC) and uses null for
// absent optional fields. Empty collections are written as [] and decoded
// back to nil slices.

type projectDocument struct {
	Name            string     `json:"name"`
	DefaultCategory *uint64    `json:"default_category"`
	Categories      []Category `json:"categories"`
	Tasks           []Task     `json:"tasks"`
	Users           []User     `json:"users"`
}

type taskDocument struct {
	ID                 uint64          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Category           uint64          `json:"category"`
	CreatedAt          int64           `json:"created_at_utc"`
	UpdatedAt          int64           `json:"updated_at_utc"`
	ArchivedAt         *int64          `json:"archived_at_utc"`
	DueDate            *int64          `json:"due_date_utc"`
	AssignedTo         []uint64        `json:"assigned_to"`
	CheckList          []CheckListItem `json:"check_list"`
	LastCheckListIndex uint64          `json:"last_check_list_index"`
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	sec := t.Unix()
	return &sec
}

func timePtr(sec *int64) *time.Time {
	if sec == nil {
		return nil
	}
	t := time.Unix(*sec, 0).UTC()
	return &t
}

// MarshalJSON encodes the project in the on-disk document layout.
func (p *Project) MarshalJSON() ([]byte, error) {
	return json.Marshal(projectDocument{
		Name:            p.Name,
		DefaultCategory: p.DefaultCategory,
		Categories:      emptyIfNil(p.Categories),
		Tasks:           emptyIfNil(p.Tasks),
		Users:           emptyIfNil(p.Users),
	})
}

// UnmarshalJSON decodes the on-disk document layout. A default_category of 0,
// written by early versions to mean "unset", decodes to nil.
func (p *Project) UnmarshalJSON(data []byte) error {
	var doc projectDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	p.Name = doc.Name
	p.DefaultCategory = doc.DefaultCategory
	if p.DefaultCategory != nil && *p.DefaultCategory == 0 {
		p.DefaultCategory = nil
	}
	p.Categories = nilIfEmpty(doc.Categories)
	p.Tasks = nilIfEmpty(doc.Tasks)
	p.Users = nilIfEmpty(doc.Users)
	return nil
}

// MarshalJSON encodes the task with unix-second timestamps.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskDocument{
		ID:                 t.ID,
		Name:               t.Name,
		Description:        t.Description,
		Category:           t.Category,
		CreatedAt:          t.CreatedAt.Unix(),
		UpdatedAt:          t.UpdatedAt.Unix(),
		ArchivedAt:         unixPtr(t.ArchivedAt),
		DueDate:            unixPtr(t.DueDate),
		AssignedTo:         emptyIfNil(t.AssignedTo),
		CheckList:          emptyIfNil(t.CheckList),
		LastCheckListIndex: t.LastCheckListIndex,
	})
}

// UnmarshalJSON decodes a task written by MarshalJSON.
func (t *Task) UnmarshalJSON(data []byte) error {
	var doc taskDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*t = Task{
		ID:                 doc.ID,
		Name:               doc.Name,
		Description:        doc.Description,
		Category:           doc.Category,
		CreatedAt:          time.Unix(doc.CreatedAt, 0).UTC(),
		UpdatedAt:          time.Unix(doc.UpdatedAt, 0).UTC(),
		ArchivedAt:         timePtr(doc.ArchivedAt),
		DueDate:            timePtr(doc.DueDate),
		AssignedTo:         nilIfEmpty(doc.AssignedTo),
		CheckList:          nilIfEmpty(doc.CheckList),
		LastCheckListIndex: doc.LastCheckListIndex,
	}
	return nil
}
