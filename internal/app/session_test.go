package app

import (
	"testing"

	"github.com/jwulff/recap/internal/transcript"
)

func TestSessionSelect(t *testing.T) {
	var s Session
	if _, ok := s.Selected(); ok {
		t.Error("empty session should have no selection")
	}

	s.Replace([]transcript.Transcript{{ID: "a"}, {ID: "b"}})
	if s.Select("missing") {
		t.Error("unknown id should not be selectable")
	}
	if !s.Select("b") {
		t.Fatal("select b")
	}
	got, ok := s.Selected()
	if !ok || got.ID != "b" {
		t.Errorf("selected = %+v, %v", got, ok)
	}
}

func TestSessionReplace(t *testing.T) {
	tests := []struct {
		name string
		next []transcript.Transcript
		want string
	}{
		{"kept", []transcript.Transcript{{ID: "c"}, {ID: "a"}}, "a"},
		{"dropped", []transcript.Transcript{{ID: "c"}}, ""},
		{"emptied", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Session
			s.Replace([]transcript.Transcript{{ID: "a"}})
			s.Select("a")

			s.Replace(tt.next)
			if s.SelectedID() != tt.want {
				t.Errorf("selected = %q, want %q", s.SelectedID(), tt.want)
			}
			if s.Len() != len(tt.next) {
				t.Errorf("len = %d", s.Len())
			}
		})
	}
}
