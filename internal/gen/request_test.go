package gen

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildPayload(t *testing.T) {
	r := Request{
		Character1:  "a knight in rusted armor",
		Character2:  "a fox spirit",
		Composition: "moonlit forest clearing",
		Sketch:      []byte("sketch-png"),
		Reference1:  []byte("ref1-png"),
		// Reference2 and Background left empty on purpose.
	}

	data, err := BuildPayload("client-1", r)
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}

	var p generatePayload
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if p.ClientID != "client-1" {
		t.Errorf("ClientID = %q, want client-1", p.ClientID)
	}
	for _, want := range []string{"a knight in rusted armor", "a fox spirit", "moonlit forest clearing"} {
		if !strings.Contains(p.Prompt, want) {
			t.Errorf("prompt does not contain %q", want)
		}
	}

	// Sketch first, then only the slots that were filled.
	if len(p.Images) != 2 {
		t.Fatalf("payload has %d images, want 2", len(p.Images))
	}
	if p.Images[0].Name != "sketch" {
		t.Errorf("first image = %q, want sketch", p.Images[0].Name)
	}
	if p.Images[1].Name != "reference1" {
		t.Errorf("second image = %q, want reference1", p.Images[1].Name)
	}
	decoded, err := base64.StdEncoding.DecodeString(p.Images[0].Data)
	if err != nil || string(decoded) != "sketch-png" {
		t.Errorf("sketch payload round-trip = %q, %v", decoded, err)
	}
}

func TestBuildPayload_RequiresSketch(t *testing.T) {
	_, err := BuildPayload("client-1", Request{Character1: "x"})
	if err == nil {
		t.Error("BuildPayload accepted a request without a sketch")
	}
}

func TestExtractImage(t *testing.T) {
	t.Run("first image wins", func(t *testing.T) {
		body := []byte(`{"images":[{"data":"Zmlyc3Q="},{"data":"c2Vjb25k"}]}`)
		img, err := ExtractImage(body)
		if err != nil {
			t.Fatalf("ExtractImage: %v", err)
		}
		if string(img) != "first" {
			t.Errorf("ExtractImage = %q, want first", img)
		}
	})

	t.Run("no images", func(t *testing.T) {
		if _, err := ExtractImage([]byte(`{"images":[]}`)); err == nil {
			t.Error("ExtractImage accepted an empty image list")
		}
	})

	t.Run("service error", func(t *testing.T) {
		_, err := ExtractImage([]byte(`{"error":"out of VRAM"}`))
		if err == nil || !strings.Contains(err.Error(), "out of VRAM") {
			t.Errorf("ExtractImage error = %v, want service error surfaced", err)
		}
	})

	t.Run("garbage body", func(t *testing.T) {
		if _, err := ExtractImage([]byte("<html>")); err == nil {
			t.Error("ExtractImage accepted non-JSON body")
		}
	})
}
