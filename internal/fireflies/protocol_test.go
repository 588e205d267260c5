package fireflies

import (
	"encoding/json"
	"testing"
)

func TestRequestMarshal(t *testing.T) {
	data, err := json.Marshal(Request{Query: "q", Variables: Variables{Limit: 10}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"query":"q","variables":{"limit":10}}` {
		t.Errorf("body = %s", data)
	}
}

func TestTranscriptRecordConversion(t *testing.T) {
	j := `{"id":"x","title":"Standup","date":1700000000123,"sentences":[{"text":"hi","speaker_name":"Bo"}]}`

	var r TranscriptRecord
	if err := json.Unmarshal([]byte(j), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	tr, err := r.Transcript()
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if tr.Date != 1700000000123 {
		t.Errorf("date = %d", tr.Date)
	}
	if tr.Sentences[0].SpeakerName != "Bo" {
		t.Errorf("speaker = %q", tr.Sentences[0].SpeakerName)
	}
}

func TestTranscriptRecordMissingDate(t *testing.T) {
	var r TranscriptRecord
	if err := json.Unmarshal([]byte(`{"id":"x","title":"t"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	tr, err := r.Transcript()
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if tr.Date != 0 {
		t.Errorf("date = %d, want 0", tr.Date)
	}
}

func TestTranscriptRecordDateRange(t *testing.T) {
	tests := []struct {
		date    string
		want    int64
		wantErr bool
	}{
		{"1700000000000", 1700000000000, false},
		{"1700000000000.9", 1700000000000, false},
		{"1e300", 0, true},
		{"-1e300", 0, true},
		{"9223372036854775808.0", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			var r TranscriptRecord
			if err := json.Unmarshal([]byte(`{"id":"x","date":`+tt.date+`}`), &r); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			tr, err := r.Transcript()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got date %d", tr.Date)
				}
				return
			}
			if err != nil {
				t.Fatalf("Transcript: %v", err)
			}
			if tr.Date != tt.want {
				t.Errorf("date = %d, want %d", tr.Date, tt.want)
			}
		})
	}
}
