package documentai

import (
	"context"
	"encoding/base64"

	documentai "google.golang.org/api/documentai/v1"

	"realeagent/internal/extraction"
	"realeagent/internal/upstream"
)

// Processor implements extraction.DocumentProcessor.
type Processor struct {
	svc *documentai.Service
}

// NewProcessor wraps svc.
func NewProcessor(svc *documentai.Service) *Processor {
	return &Processor{svc: svc}
}

// Process sends raw document bytes to the named processor.
func (p *Processor) Process(ctx context.Context, req extraction.ProcessRequest) (*extraction.ProcessedDocument, error) {
	call := p.svc.Projects.Locations.Processors.Process(req.ProcessorName, &documentai.GoogleCloudDocumentaiV1ProcessRequest{
		RawDocument: &documentai.GoogleCloudDocumentaiV1RawDocument{
			Content:  base64.StdEncoding.EncodeToString(req.Content),
			MimeType: req.MimeType,
		},
	})
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, classify(err, "process document")
	}
	if resp.Document == nil {
		return nil, upstream.New(upstream.BadData, providerName, "response has no document", nil)
	}
	return toProcessed(resp.Document), nil
}

func toProcessed(doc *documentai.GoogleCloudDocumentaiV1Document) *extraction.ProcessedDocument {
	out := &extraction.ProcessedDocument{
		Text:       doc.Text,
		Entities:   make([]extraction.Entity, 0, len(doc.Entities)),
		FormFields: []extraction.FormField{},
		PageCount:  len(doc.Pages),
	}

	for _, e := range doc.Entities {
		if e == nil {
			continue
		}
		entity := extraction.Entity{Type: e.Type, Text: e.MentionText, Confidence: e.Confidence}
		if e.NormalizedValue != nil && e.NormalizedValue.Text != "" {
			v := e.NormalizedValue.Text
			entity.NormalizedValue = &v
		}
		out.Entities = append(out.Entities, entity)
	}

	for _, page := range doc.Pages {
		if page == nil {
			continue
		}
		for _, f := range page.FormFields {
			if f == nil {
				continue
			}
			field := extraction.FormField{
				Name:  layoutText(doc.Text, f.FieldName),
				Value: layoutText(doc.Text, f.FieldValue),
			}
			if f.FieldValue != nil {
				field.Confidence = f.FieldValue.Confidence
			}
			out.FormFields = append(out.FormFields, field)
		}
	}
	return out
}

// layoutText prefers the anchor's inline content and falls back to slicing
// the document text by its segments.
func layoutText(text string, l *documentai.GoogleCloudDocumentaiV1DocumentPageLayout) string {
	if l == nil || l.TextAnchor == nil {
		return ""
	}
	if l.TextAnchor.Content != "" {
		return l.TextAnchor.Content
	}
	var out []byte
	for _, seg := range l.TextAnchor.TextSegments {
		if seg == nil {
			continue
		}
		start, end := int(seg.StartIndex), int(seg.EndIndex)
		if start < 0 || end > len(text) || start >= end {
			continue
		}
		out = append(out, text[start:end]...)
	}
	return string(out)
}
