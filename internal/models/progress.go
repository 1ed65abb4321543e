package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// ProgressRecord maps module id to the set of completed lesson ids in that
// module. The whole record is persisted under a single key; its wire shape is
// {"module<ID>": {"lesson<ID>": true}}. False is never written, absence means
// not completed.
type ProgressRecord map[int]map[int]bool

func (r ProgressRecord) Completed(moduleID int) map[int]bool {
	set := make(map[int]bool, len(r[moduleID]))
	for id, done := range r[moduleID] {
		if done {
			set[id] = true
		}
	}
	return set
}

// Toggle flips membership of lessonID in the module's completed set and
// reports the new membership. Other entries, including stale ones, are left
// untouched so a double toggle restores the original set.
func (r ProgressRecord) Toggle(moduleID, lessonID int) bool {
	set := r[moduleID]
	if set == nil {
		set = make(map[int]bool)
		r[moduleID] = set
	}
	if set[lessonID] {
		delete(set, lessonID)
		return false
	}
	set[lessonID] = true
	return true
}

// SetCompleted replaces the module's completed set in full.
func (r ProgressRecord) SetCompleted(moduleID int, lessonIDs map[int]bool) {
	set := make(map[int]bool, len(lessonIDs))
	for id, done := range lessonIDs {
		if done {
			set[id] = true
		}
	}
	r[moduleID] = set
}

func (r ProgressRecord) Clone() ProgressRecord {
	out := make(ProgressRecord, len(r))
	for moduleID, set := range r {
		cp := make(map[int]bool, len(set))
		for id, done := range set {
			cp[id] = done
		}
		out[moduleID] = cp
	}
	return out
}

func (r ProgressRecord) MarshalJSON() ([]byte, error) {
	doc := make(map[string]map[string]bool, len(r))
	for moduleID, set := range r {
		entry := make(map[string]bool)
		for lessonID, done := range set {
			if done {
				entry["lesson"+strconv.Itoa(lessonID)] = true
			}
		}
		if len(entry) > 0 {
			doc["module"+strconv.Itoa(moduleID)] = entry
		}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON is tolerant: keys that do not look like "module<ID>" or
// "lesson<ID>" and entries with a false value are skipped, not rejected.
// Corruption of the document as a whole still fails.
func (r *ProgressRecord) UnmarshalJSON(data []byte) error {
	var doc map[string]map[string]bool
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("progress record: %w", err)
	}
	rec := make(ProgressRecord, len(doc))
	for moduleKey, entry := range doc {
		moduleID, ok := parsePrefixedID(moduleKey, "module")
		if !ok {
			continue
		}
		set := make(map[int]bool, len(entry))
		for lessonKey, done := range entry {
			lessonID, ok := parsePrefixedID(lessonKey, "lesson")
			if !ok || !done {
				continue
			}
			set[lessonID] = true
		}
		rec[moduleID] = set
	}
	*r = rec
	return nil
}

func parsePrefixedID(key, prefix string) (int, bool) {
	if !strings.HasPrefix(key, prefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(key, prefix))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

type ModuleProgress struct {
	ModuleID       int    `json:"module_id"`
	CompletedCount int    `json:"completed_count"`
	LessonCount    int    `json:"lesson_count"`
	Percent        int    `json:"percent"`
	Status         string `json:"status"`
}

type OverallProgress struct {
	CompletedCount int              `json:"completed_count"`
	TotalCount     int              `json:"total_count"`
	Percent        int              `json:"percent"`
	Modules        []ModuleProgress `json:"modules"`
}
