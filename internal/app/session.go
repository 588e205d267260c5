package app

import "github.com/jwulff/recap/internal/transcript"

// Session is the fetched transcript list and the current selection. It is
// owned by the Model and mutated only from Update.
type Session struct {
	transcripts []transcript.Transcript
	selectedID  string
}

// Replace installs a freshly fetched list. A selection that no longer exists
// in the list is cleared.
func (s *Session) Replace(list []transcript.Transcript) {
	s.transcripts = list
	if _, ok := transcript.Find(list, s.selectedID); !ok {
		s.selectedID = ""
	}
}

// Select picks the transcript with id. Unknown ids are ignored.
func (s *Session) Select(id string) bool {
	if _, ok := transcript.Find(s.transcripts, id); !ok {
		return false
	}
	s.selectedID = id
	return true
}

// Selected returns the selected transcript, if any.
func (s Session) Selected() (transcript.Transcript, bool) {
	if s.selectedID == "" {
		return transcript.Transcript{}, false
	}
	return transcript.Find(s.transcripts, s.selectedID)
}

func (s Session) SelectedID() string                   { return s.selectedID }
func (s Session) Transcripts() []transcript.Transcript { return s.transcripts }
func (s Session) Len() int                             { return len(s.transcripts) }
