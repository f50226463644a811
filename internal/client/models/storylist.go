package models

// StoryList is an ordered collection of stories, unique by story id. The
// order mirrors the server's (newest first); Prepend keeps a just-submitted
// story at the front the same way the server would return it.
type StoryList struct {
	Stories []*Story
}

// NewStoryList builds a list from stories, preserving order and dropping nil
// entries and duplicate ids (first occurrence wins).
func NewStoryList(stories []*Story) *StoryList {
	l := &StoryList{Stories: make([]*Story, 0, len(stories))}
	seen := make(map[string]struct{}, len(stories))
	for _, s := range stories {
		if s == nil {
			continue
		}
		if _, ok := seen[s.StoryID]; ok {
			continue
		}
		seen[s.StoryID] = struct{}{}
		l.Stories = append(l.Stories, s)
	}
	return l
}

// Prepend puts s at the front of the list. If a story with the same id is
// already present the list is left unchanged.
func (l *StoryList) Prepend(s *Story) {
	if s == nil || l.Contains(s.StoryID) {
		return
	}
	l.Stories = append([]*Story{s}, l.Stories...)
}

// RemoveByID removes the story with the given id and reports whether it was
// present.
func (l *StoryList) RemoveByID(id string) bool {
	for i, s := range l.Stories {
		if s.StoryID == id {
			l.Stories = append(l.Stories[:i], l.Stories[i+1:]...)
			return true
		}
	}
	return false
}

// ByID returns the story with the given id, or nil.
func (l *StoryList) ByID(id string) *Story {
	for _, s := range l.Stories {
		if s.StoryID == id {
			return s
		}
	}
	return nil
}

// Contains reports whether a story with the given id is in the list.
func (l *StoryList) Contains(id string) bool {
	return l.ByID(id) != nil
}

// Len returns the number of stories in the list.
func (l *StoryList) Len() int {
	return len(l.Stories)
}
