package api

// TranscribeRequest is the body of POST /transcribe.
type TranscribeRequest struct {
	URLs        []string `json:"urls"`
	Language    string   `json:"language,omitempty"`
	CookiesPath string   `json:"cookies_path,omitempty"`
	ModelSize   string   `json:"model_size,omitempty"`
	ComputeType string   `json:"compute_type,omitempty"`
}

// Segment mirrors transcript.Segment on the wire.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscribeResult is the per-URL success record.
type TranscribeResult struct {
	URL      string    `json:"url"`
	Duration *float64  `json:"duration"`
	Language string    `json:"language"`
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
	SRTPath  string    `json:"srt_path"`
}

// BatchResponse is the body of a successful POST /transcribe.
type BatchResponse struct {
	Results []TranscribeResult `json:"results"`
}

// ErrorResponse carries a request-level failure description.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
