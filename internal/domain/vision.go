package domain

import "context"

// OCRResult is what the external vision model read off a scale photo.
// An unreadable display is reported as Success=false with Error set, not as
// a transport failure.
type OCRResult struct {
	Success    bool     `json:"success"`
	Weight     *float64 `json:"weight,omitempty"`
	Unit       Unit     `json:"unit,omitempty"`
	Confidence string   `json:"confidence,omitempty"`
	RawText    string   `json:"rawText,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// ScaleReader is the port for the external vision model that extracts a
// weight reading from a photographed scale display.
type ScaleReader interface {
	ReadScale(ctx context.Context, image []byte, mediaType string) (*OCRResult, error)
}
