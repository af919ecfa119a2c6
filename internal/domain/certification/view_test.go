package certification

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCertificateTemplateViewNullTrack(t *testing.T) {
	v := NewCertificateTemplateView(&CertificateTemplate{ID: 1, Name: "Generic", TemplateType: TemplateTypeStandard, CreatedAt: time.Unix(0, 0)})
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tid, ok := m["track_id"]; !ok || tid != nil {
		t.Fatalf("track_id: expected null, got %#v", tid)
	}
	if m["created_at"] != "1970-01-01T00:00:00Z" {
		t.Fatalf("created_at: got %v", m["created_at"])
	}
}

func TestCertificateBeforeCreateAssignsSerial(t *testing.T) {
	c := &Certificate{UserID: 1, TrackID: 1}
	if err := c.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if c.Serial == uuid.Nil {
		t.Fatalf("serial not assigned")
	}

	fixed := uuid.New()
	c2 := &Certificate{Serial: fixed}
	_ = c2.BeforeCreate(nil)
	if c2.Serial != fixed {
		t.Fatalf("existing serial overwritten")
	}
	if NewCertificateView(c2).Serial != fixed.String() {
		t.Fatalf("view serial mismatch")
	}
}
