// Package gen talks to the local generative-image service: it assembles the
// outbound request from the prompts, the reference images and the flattened
// sketch, submits it, and pulls the first returned image out of the response.
package gen

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Request is everything the surrounding app collects for one generation:
// three free-text prompts and up to four images. Sketch is required; the
// reference and background slots are optional and skipped when nil.
type Request struct {
	Character1  string
	Character2  string
	Composition string

	Sketch     []byte // flattened pose sketch PNG
	Reference1 []byte // character 1 reference, optional
	Reference2 []byte // character 2 reference, optional
	Background []byte // background image, optional
}

type imagePayload struct {
	Name string `json:"name"`
	Data string `json:"data"` // base64
}

type generatePayload struct {
	ClientID string         `json:"client_id"`
	Prompt   string         `json:"prompt"`
	Images   []imagePayload `json:"images"`
}

// instruction is the fixed natural-language block the prompts are spliced
// into. The sketch colors are called out so the model maps each pose to the
// right character.
const instruction = `Generate a single image with two characters. ` +
	`The attached pose sketch uses red lines for character 1 and blue lines for character 2; ` +
	`match each character's pose to its lines. ` +
	`Character 1: %s. Character 2: %s. Overall composition: %s.`

// BuildPayload serializes the request for the service. Prompts are forwarded
// verbatim inside the instruction block; images travel base64-encoded in a
// fixed order with the sketch first.
func BuildPayload(clientID string, r Request) ([]byte, error) {
	if len(r.Sketch) == 0 {
		return nil, fmt.Errorf("gen: request has no sketch")
	}
	p := generatePayload{
		ClientID: clientID,
		Prompt:   fmt.Sprintf(instruction, r.Character1, r.Character2, r.Composition),
	}
	add := func(name string, data []byte) {
		if len(data) == 0 {
			return
		}
		p.Images = append(p.Images, imagePayload{Name: name, Data: base64.StdEncoding.EncodeToString(data)})
	}
	add("sketch", r.Sketch)
	add("reference1", r.Reference1)
	add("reference2", r.Reference2)
	add("background", r.Background)
	return json.Marshal(p)
}

// ExtractImage pulls the first image payload out of a service response.
func ExtractImage(body []byte) ([]byte, error) {
	var result struct {
		Images []struct {
			Data string `json:"data"`
		} `json:"images"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("gen: bad response: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("gen: service error: %s", result.Error)
	}
	if len(result.Images) == 0 {
		return nil, fmt.Errorf("gen: response contains no images")
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(result.Images[0].Data))
	if err != nil {
		return nil, fmt.Errorf("gen: decoding image: %w", err)
	}
	return data, nil
}
