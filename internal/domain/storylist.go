package domain

// StoryList is an ordered collection of stories in the order the server
// returned them. No two entries ever share an ID; Add silently refuses
// duplicates so replaying a server response cannot double an entry.
type StoryList struct {
	stories []Story
}

func NewStoryList(stories []Story) *StoryList {
	l := &StoryList{}
	for _, s := range stories {
		l.Add(s)
	}
	return l
}

// Add appends the story to the backing collection and reports whether it was
// added. A story whose ID is already present is left alone.
func (l *StoryList) Add(s Story) bool {
	if l.Contains(s.ID) {
		return false
	}
	l.stories = append(l.stories, s)
	return true
}

// RemoveByID removes the story with the given ID and reports whether it was
// present.
func (l *StoryList) RemoveByID(id string) bool {
	for i, s := range l.stories {
		if s.ID == id {
			l.stories = append(l.stories[:i], l.stories[i+1:]...)
			return true
		}
	}
	return false
}

func (l *StoryList) ByID(id string) (Story, bool) {
	for _, s := range l.stories {
		if s.ID == id {
			return s, true
		}
	}
	return Story{}, false
}

func (l *StoryList) Contains(id string) bool {
	_, ok := l.ByID(id)
	return ok
}

func (l *StoryList) Len() int {
	return len(l.stories)
}

// Stories returns a copy of the backing collection, preserving order.
func (l *StoryList) Stories() []Story {
	out := make([]Story, len(l.stories))
	copy(out, l.stories)
	return out
}

// Replace rebuilds the collection wholesale from a fresh fetch, deduplicating
// by ID in case the server ever repeats itself.
func (l *StoryList) Replace(stories []Story) {
	l.stories = l.stories[:0]
	for _, s := range stories {
		l.Add(s)
	}
}
