package dto

type SubmitRequest struct {
	FinalQuery string `json:"finalQuery"`
}
