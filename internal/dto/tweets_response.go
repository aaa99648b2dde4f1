package dto

import "fmt"

type IngestResponse struct {
	Message string `json:"message"`
	Stored  int    `json:"stored"`
}

func NewIngestResponse(stored int) IngestResponse {
	return IngestResponse{
		Message: fmt.Sprintf("%d Tweets stored successfully.", stored),
		Stored:  stored,
	}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
